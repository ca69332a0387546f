package handlers

import (
	"net/http"

	"proconnect_backend/internal/services"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/internal/storage"
	"proconnect_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	storage     storage.Storage
}

func NewUserHandler(base *BaseHandler, userService services.UserService, store storage.Storage) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		storage:     store,
	}
}

// RegisterRoutes регистрирует маршруты пользователя.
// public - группа без аутентификации, protected - за проверкой токена.
func (h *UserHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	users := public.Group("/users")
	{
		users.GET("/:id/profile", h.GetProfile)
		users.GET("/:id/skills", h.GetSkills)
		users.GET("/:id/certificates", h.GetCertificates)
	}

	usersGated := protected.Group("/users")
	{
		usersGated.PUT("/:id/profile", h.UpdateProfile)
		usersGated.PUT("/:id/skills", h.UpdateSkills)
		usersGated.PUT("/:id/experience", h.UpdateExperiencePayload)
		usersGated.POST("/:id/certificates", h.AddCertificates)
		usersGated.PUT("/:id/certificates/:certificateId", h.UpdateCertificate)
		usersGated.DELETE("/:id/certificates/:certificateId", h.DeleteCertificate)
	}
}

// GetProfile godoc
// @Summary Профиль пользователя
// @Tags users
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} models.User
// @Router /api/users/{id}/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile принимает multipart-форму с полями профиля и
// необязательной картинкой profilePicture
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	url, err := h.SaveUploadedFile(c, h.storage, "profile_pictures", "profilePicture")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	req.ProfilePictureURL = url

	user, err := h.userService.UpdateProfile(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetSkills(c *gin.Context) {
	skills, err := h.userService.GetSkills(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

func (h *UserHandler) UpdateSkills(c *gin.Context) {
	var req dto.SkillsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.UpdateSkills(c.Param("id"), req.Skills); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skills updated successfully!"})
}

func (h *UserHandler) UpdateExperiencePayload(c *gin.Context) {
	var req dto.ExperiencePayloadRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.UpdateExperiencePayload(c.Param("id"), req.Experience); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience updated successfully!"})
}

func (h *UserHandler) GetCertificates(c *gin.Context) {
	certs, err := h.userService.GetEmbeddedCertificates(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

func (h *UserHandler) AddCertificates(c *gin.Context) {
	var req dto.AddCertificatesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	certs, err := h.userService.AddEmbeddedCertificates(c.Param("id"), req.Certificates)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"certificates": certs})
}

func (h *UserHandler) UpdateCertificate(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	certs, err := h.userService.UpdateEmbeddedCertificate(c.Param("id"), c.Param("certificateId"), patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

func (h *UserHandler) DeleteCertificate(c *gin.Context) {
	certs, err := h.userService.DeleteEmbeddedCertificate(c.Param("id"), c.Param("certificateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}
