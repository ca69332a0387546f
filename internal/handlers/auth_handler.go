package handlers

import (
	"net/http"

	"proconnect_backend/internal/services"
	"proconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации.
// Все они публичные: сессионный токен здесь еще не нужен.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/signin", h.Signin)
		auth.POST("/google-login", h.GoogleLogin)
		auth.POST("/complete-google-signup", h.CompleteGoogleSignup)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.GET("/render/:token", h.CheckResetToken)
		auth.POST("/resetpassword/:token", h.ResetPassword)
	}
}

// Signup godoc
// @Summary Регистрация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Данные регистрации"
// @Success 201 {object} dto.SignupResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "User registered successfully!",
		User:    *user,
	})
}

// Signin godoc
// @Summary Вход по email и паролю
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SigninRequest true "Учетные данные"
// @Success 200 {object} dto.AuthUserResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.Signin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GoogleLogin godoc
// @Summary Вход через Google ID-токен
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleLoginRequest true "Google credential"
// @Success 200 {object} dto.GoogleLoginResponse
// @Router /auth/google-login [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.GoogleLogin(c.Request.Context(), req.Credential)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CompleteGoogleSignup godoc
// @Summary Завершение регистрации после Google-входа
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CompleteGoogleSignupRequest true "Выбранная роль и атрибуты"
// @Success 201 {object} dto.AuthUserResponse
// @Router /auth/complete-google-signup [post]
func (h *AuthHandler) CompleteGoogleSignup(c *gin.Context) {
	var req dto.CompleteGoogleSignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.CompleteGoogleSignup(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ForgotPassword godoc
// @Summary Запрос ссылки сброса пароля
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Email"
// @Success 200 {object} map[string]string
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent!"})
}

// CheckResetToken godoc
// @Summary Проверка действительности токена сброса
// @Tags auth
// @Produce json
// @Param token path string true "Токен сброса"
// @Success 200 {object} map[string]string
// @Router /auth/render/{token} [get]
func (h *AuthHandler) CheckResetToken(c *gin.Context) {
	if err := h.authService.CheckResetToken(c.Param("token")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token is valid."})
}

// ResetPassword godoc
// @Summary Установка нового пароля по токену сброса
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Токен сброса"
// @Param request body dto.ResetPasswordRequest true "Новый пароль"
// @Success 200 {object} map[string]string
// @Router /auth/resetpassword/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	err := h.authService.ResetPassword(c.Param("token"), req.NewPassword, req.ConfirmPassword)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully!"})
}
