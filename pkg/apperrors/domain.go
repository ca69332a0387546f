package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки бизнес-логики и фабрики для их создания.
Сообщения auth-ошибок совпадают с тем, что ожидает фронтенд.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth ---

// ErrUserNotFound - пользователь с таким email не найден
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found!",
	http.StatusNotFound,
)

// ErrEmailAlreadyExists - email уже используется
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists!",
	http.StatusConflict,
)

// ErrInvalidPassword - пароль не совпал с хешем
var ErrInvalidPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid Password!",
	http.StatusUnauthorized,
)

// ErrInvalidRole - роль вне закрытого перечисления
var ErrInvalidRole = New(
	CodeValidationFailed,
	"auth",
	"Invalid role selected",
	http.StatusBadRequest,
)

// ErrGoogleTokenInvalid - подпись/аудитория Google-токена не прошли проверку
var ErrGoogleTokenInvalid = New(
	CodeUnauthorized,
	"auth",
	"Invalid Google credential",
	http.StatusUnauthorized,
)

// ErrPasswordMismatch - newPassword != confirmPassword при сбросе
var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"auth",
	"Passwords do not match!",
	http.StatusBadRequest,
)

// ErrResetTokenInvalid - reset-токен не найден или просрочен
var ErrResetTokenInvalid = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token!",
	http.StatusBadRequest,
)

// ErrMailDelivery - письмо не удалось отправить; reset-токен при этом
// остается в базе, повторный запрос перезапишет его
var ErrMailDelivery = New(
	CodeExternalServiceError,
	"email",
	"Error sending email.",
	http.StatusInternalServerError,
)

// --- Resources ---

// ErrCertificateNotFound - сертификат не найден
var ErrCertificateNotFound = New(
	CodeNotFound,
	"certificate",
	"Certificate not found",
	http.StatusNotFound,
)

// ErrExperienceNotFound - запись об опыте не найдена
var ErrExperienceNotFound = New(
	CodeNotFound,
	"experience",
	"Experience not found",
	http.StatusNotFound,
)

// ErrPostNotFound - объявление не найдено
var ErrPostNotFound = New(
	CodeNotFound,
	"post",
	"PostRequirement not found",
	http.StatusNotFound,
)
