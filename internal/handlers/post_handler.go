package handlers

import (
	"net/http"

	"proconnect_backend/internal/services"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
	storage     storage.Storage
}

func NewPostHandler(base *BaseHandler, postService services.PostService, store storage.Storage) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
		storage:     store,
	}
}

func (h *PostHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	posts := public.Group("/post")
	{
		posts.GET("", h.GetAll)
		posts.GET("/user/:userId", h.GetByUserID)
		posts.GET("/:id", h.GetByID)
	}

	postsGated := protected.Group("/post")
	{
		postsGated.POST("", h.Create)
		postsGated.PUT("/:id", h.Update)
		postsGated.DELETE("/:id", h.Delete)
	}
}

// Create принимает multipart-форму; вложение в поле file
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	url, err := h.SaveUploadedFile(c, h.storage, "uploads", "file")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	req.FileURL = url

	post, err := h.postService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetAll(c *gin.Context) {
	posts, err := h.postService.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.postService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) GetByUserID(c *gin.Context) {
	posts, err := h.postService.GetByUserID(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	url, err := h.SaveUploadedFile(c, h.storage, "uploads", "file")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	req.FileURL = url

	post, err := h.postService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully!"})
}
