package handlers

import (
	"net/http"

	"proconnect_backend/internal/services"
	"proconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	*BaseHandler
	expService services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, expService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		BaseHandler: base,
		expService:  expService,
	}
}

func (h *ExperienceHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	exp := public.Group("/experience")
	{
		exp.GET("", h.GetAll)
		exp.GET("/user/:userId", h.GetByUserID)
	}

	expGated := protected.Group("/experience")
	{
		expGated.POST("", h.Create)
		expGated.PUT("/:id", h.Update)
		expGated.DELETE("/:id", h.Delete)
	}
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req dto.CreateExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	exp, err := h.expService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exp)
}

func (h *ExperienceHandler) GetAll(c *gin.Context) {
	exps, err := h.expService.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exps)
}

func (h *ExperienceHandler) GetByUserID(c *gin.Context) {
	exps, err := h.expService.GetByUserID(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exps)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req dto.UpdateExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	exp, err := h.expService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exp)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.expService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully!"})
}
