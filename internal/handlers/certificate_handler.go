package handlers

import (
	"net/http"

	"proconnect_backend/internal/services"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	*BaseHandler
	certService services.CertificateService
	storage     storage.Storage
}

func NewCertificateHandler(base *BaseHandler, certService services.CertificateService, store storage.Storage) *CertificateHandler {
	return &CertificateHandler{
		BaseHandler: base,
		certService: certService,
		storage:     store,
	}
}

func (h *CertificateHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	certs := public.Group("/certificates")
	{
		certs.GET("", h.GetAll)
		certs.GET("/user/:userId", h.GetByUserID)
	}

	certsGated := protected.Group("/certificates")
	{
		certsGated.POST("", h.Create)
		certsGated.PUT("/:id", h.Update)
		certsGated.DELETE("/:id", h.Delete)
	}
}

// Create принимает multipart-форму; картинка в поле image
func (h *CertificateHandler) Create(c *gin.Context) {
	var req dto.CreateCertificateRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	url, err := h.SaveUploadedFile(c, h.storage, "certificates", "image")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	req.ImageURL = url

	cert, err := h.certService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cert)
}

func (h *CertificateHandler) GetAll(c *gin.Context) {
	certs, err := h.certService.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, certs)
}

func (h *CertificateHandler) GetByUserID(c *gin.Context) {
	certs, err := h.certService.GetByUserID(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, certs)
}

func (h *CertificateHandler) Update(c *gin.Context) {
	var req dto.UpdateCertificateRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	url, err := h.SaveUploadedFile(c, h.storage, "certificates", "image")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	req.ImageURL = url

	cert, err := h.certService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cert)
}

func (h *CertificateHandler) Delete(c *gin.Context) {
	if err := h.certService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted successfully!"})
}
