package services

import (
	"context"
	"fmt"
	"time"

	"proconnect_backend/internal/auth"
	"proconnect_backend/internal/email"
	"proconnect_backend/internal/googleauth"
	"proconnect_backend/internal/logger"
	"proconnect_backend/internal/models"
	"proconnect_backend/internal/repositories"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/pkg/apperrors"
)

// Срок действия токена сброса пароля
const resetTokenTTL = 1 * time.Hour

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthUserResponse, error)
	Signin(req *dto.SigninRequest) (*dto.AuthUserResponse, error)
	GoogleLogin(ctx context.Context, credential string) (*dto.GoogleLoginResponse, error)
	CompleteGoogleSignup(req *dto.CompleteGoogleSignupRequest) (*dto.AuthUserResponse, error)
	ForgotPassword(ctx context.Context, userEmail string) error
	CheckResetToken(token string) error
	ResetPassword(token, newPassword, confirmPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenManager
	verifier      googleauth.Verifier
	emailProvider email.Provider

	// Единый TTL для всех сессионных токенов. Раньше signup выдавал
	// бессрочный токен, а signin - суточный; политика сведена к одной.
	sessionTTL time.Duration

	// База ссылки сброса пароля (адрес фронтенда)
	frontendURL string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	verifier googleauth.Verifier,
	emailProvider email.Provider,
	sessionTTL time.Duration,
	frontendURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		verifier:      verifier,
		emailProvider: emailProvider,
		sessionTTL:    sessionTTL,
		frontendURL:   frontendURL,
	}
}

// Signup - регистрация нового пользователя с паролем
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.AuthUserResponse, error) {
	// Роль проверяется на каждом пути создания пользователя,
	// не только при завершении Google-регистрации
	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hashedPassword,
		Role:           req.Role,
		ProfilePicture: req.ProfilePicture,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueSignupToken(user)
}

// Signin - вход по email и паролю
func (s *AuthServiceImpl) Signin(req *dto.SigninRequest) (*dto.AuthUserResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role), s.sessionTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Токен входа не персистится - в отличие от signup
	return buildAuthResponse(user, token), nil
}

// GoogleLogin - вход по проверенному Google ID-токену.
// Для незнакомого email аккаунт НЕ создается: возвращаются атрибуты
// личности, создание откладывается до CompleteGoogleSignup.
func (s *AuthServiceImpl) GoogleLogin(ctx context.Context, credential string) (*dto.GoogleLoginResponse, error) {
	identity, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		logger.CtxWarn(ctx, "google id token rejected", "error", err.Error())
		return nil, apperrors.ErrGoogleTokenInvalid
	}

	user, err := s.userRepo.FindByEmail(identity.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return &dto.GoogleLoginResponse{
				IsNewUser:      true,
				Email:          identity.Email,
				Name:           identity.Name,
				ProfilePicture: identity.Picture,
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role), s.sessionTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.GoogleLoginResponse{User: buildAuthResponse(user, token)}, nil
}

// CompleteGoogleSignup - явное создание аккаунта после Google-входа.
// Случайный пароль существует только ради NOT NULL на password_hash
// и пользователю не сообщается.
func (s *AuthServiceImpl) CompleteGoogleSignup(req *dto.CompleteGoogleSignupRequest) (*dto.AuthUserResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidRole
	}

	randomPassword, err := auth.GenerateRandomPassword()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	hashedPassword, err := auth.HashPassword(randomPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hashedPassword,
		Role:           req.Role,
		ProfilePicture: req.ProfilePicture,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueSignupToken(user)
}

// ForgotPassword - выпуск и отправка токена сброса пароля.
// Повторный запрос перезаписывает токен и срок свежими значениями.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, userEmail string) error {
	user, err := s.userRepo.FindByEmail(userEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	resetToken, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.SetResetToken(user.ID, resetToken, time.Now().Add(resetTokenTTL)); err != nil {
		return apperrors.InternalError(err)
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, resetToken)

	// Отправка синхронная: результат виден вызывающему. При сбое токен
	// остается в базе - повторный запрос выпустит новый.
	if err := s.emailProvider.SendPasswordReset(user.Email, resetLink); err != nil {
		logger.CtxWithError(ctx, "password reset email failed", err, "email", user.Email)
		return apperrors.ErrMailDelivery
	}

	return nil
}

// CheckResetToken - read-only проверка токена сброса: фронтенд
// решает, показывать ли форму нового пароля
func (s *AuthServiceImpl) CheckResetToken(token string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return apperrors.InternalError(err)
	}

	if user.ResetPasswordExpires == nil || !time.Now().Before(*user.ResetPasswordExpires) {
		return apperrors.ErrResetTokenInvalid
	}
	return nil
}

// ResetPassword - погашение токена сброса.
// Срок действия перепроверяется и здесь, а не только в CheckResetToken.
// Новый хеш и очистка пары (token, expires) - один UPDATE.
func (s *AuthServiceImpl) ResetPassword(token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return apperrors.InternalError(err)
	}

	if user.ResetPasswordExpires == nil || !time.Now().Before(*user.ResetPasswordExpires) {
		return apperrors.ErrResetTokenInvalid
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.ResetPassword(user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helper functions ---

// issueSignupToken выдает сессионный токен и персистит его
// как login_token (информативное поле)
func (s *AuthServiceImpl) issueSignupToken(user *models.User) (*dto.AuthUserResponse, error) {
	token, err := s.tokens.Generate(user.ID, string(user.Role), s.sessionTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateFields(user.ID, map[string]interface{}{
		"login_token": token,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.LoginToken = token

	return buildAuthResponse(user, token), nil
}

// buildAuthResponse строит публичную проекцию пользователя с токеном
func buildAuthResponse(user *models.User, token string) *dto.AuthUserResponse {
	return &dto.AuthUserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
		AccessToken:    token,
	}
}
