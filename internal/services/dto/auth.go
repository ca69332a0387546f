package dto

import "proconnect_backend/internal/models"

// SignupRequest - запрос регистрации с паролем
type SignupRequest struct {
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	Password       string          `json:"password" binding:"required,min=6"`
	Role           models.UserRole `json:"role" binding:"required" validate:"is-user-role"`
	ProfilePicture string          `json:"profilePicture"`
}

// SigninRequest - запрос входа
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest - ID-токен Google Sign-In
type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// CompleteGoogleSignupRequest - завершение регистрации через Google
type CompleteGoogleSignupRequest struct {
	Email          string          `json:"email" binding:"required,email"`
	Name           string          `json:"name" binding:"required"`
	ProfilePicture string          `json:"profilePicture"`
	Role           models.UserRole `json:"role" binding:"required"`
}

// ForgotPasswordRequest - запрос ссылки сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest - новый пароль по токену сброса
type ResetPasswordRequest struct {
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// AuthUserResponse - публичная проекция пользователя с токеном.
// PasswordHash сюда не попадает никогда.
type AuthUserResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	ProfilePicture string          `json:"profilePicture"`
	AccessToken    string          `json:"accessToken"`
}

// SignupResponse - ответ на успешную регистрацию
type SignupResponse struct {
	Message string           `json:"message"`
	User    AuthUserResponse `json:"user"`
}

// GoogleLoginResponse - результат Google-входа: либо существующий
// пользователь с токеном, либо приглашение завершить регистрацию
type GoogleLoginResponse struct {
	IsNewUser bool `json:"isNewUser,omitempty"`

	// Для нового пользователя - атрибуты из проверенного токена
	Email          string `json:"email,omitempty"`
	Name           string `json:"name,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`

	// Для существующего - как при обычном signin
	User *AuthUserResponse `json:"user,omitempty"`
}
