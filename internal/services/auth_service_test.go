package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"proconnect_backend/internal/auth"
	"proconnect_backend/internal/email"
	"proconnect_backend/internal/googleauth"
	"proconnect_backend/internal/models"
	"proconnect_backend/internal/repositories"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// ----------------------------------------------------------------------------
// In-memory фейки вместо БД, Google и SMTP
// ----------------------------------------------------------------------------

type fakeUserRepo struct {
	users map[string]*models.User // по ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	if token == "" {
		return nil, repositories.ErrUserNotFound
	}
	for _, u := range r.users {
		if u.ResetPasswordToken == token {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateFields(userID string, fields map[string]interface{}) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			u.Name = value.(string)
		case "email":
			u.Email = value.(string)
		case "location":
			u.Location = value.(string)
		case "phone_number":
			u.PhoneNumber = value.(string)
		case "designation":
			u.Designation = value.(string)
		case "experience_years":
			u.ExperienceYears = value.(int)
		case "profile_picture":
			u.ProfilePicture = value.(string)
		case "skills":
			u.Skills = value.(datatypes.JSON)
		case "certificates":
			u.Certificates = value.(datatypes.JSON)
		case "experience":
			u.Experience = value.(datatypes.JSON)
		case "login_token":
			u.LoginToken = value.(string)
		case "password_hash":
			u.PasswordHash = value.(string)
		case "reset_password_token":
			u.ResetPasswordToken = value.(string)
		case "reset_password_expires":
			if value == nil {
				u.ResetPasswordExpires = nil
			} else {
				u.ResetPasswordExpires = value.(*time.Time)
			}
		}
	}
	return nil
}

func (r *fakeUserRepo) SetResetToken(userID, token string, expires time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ResetPasswordToken = token
	u.ResetPasswordExpires = &expires
	return nil
}

func (r *fakeUserRepo) ResetPassword(userID, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetPasswordToken = ""
	u.ResetPasswordExpires = nil
	return nil
}

type fakeVerifier struct {
	identity *googleauth.Identity
	err      error
}

func (v *fakeVerifier) Verify(ctx context.Context, credential string) (*googleauth.Identity, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.identity, nil
}

type fakeMailer struct {
	sent     []string // адресаты
	links    []string
	failNext bool
}

func (m *fakeMailer) Send(e *email.Email) error { return nil }

func (m *fakeMailer) SendWithTemplate(name string, data email.TemplateData, e *email.Email) error {
	return nil
}

func (m *fakeMailer) SendPasswordReset(to, resetLink string) error {
	if m.failNext {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, to)
	m.links = append(m.links, resetLink)
	return nil
}

func newTestAuthService(repo *fakeUserRepo, verifier googleauth.Verifier, mailer email.Provider) AuthService {
	return NewAuthService(
		repo,
		auth.NewTokenManager("test-secret"),
		verifier,
		mailer,
		24*time.Hour,
		"http://localhost:3000",
	)
}

func seedUser(t *testing.T, repo *fakeUserRepo, emailAddr, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Name:         "Seeded User",
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         models.UserRoleServiceProvider,
	}
	require.NoError(t, repo.Create(user))
	return user
}

// ----------------------------------------------------------------------------
// Signup / Signin
// ----------------------------------------------------------------------------

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	resp, err := svc.Signup(&dto.SignupRequest{
		Name:     "Alice",
		Email:    "alice@test.com",
		Password: "super_password123",
		Role:     models.UserRoleStudentClient,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, models.UserRoleStudentClient, resp.Role)

	// Ровно одна строка, пароль сохранен хешем
	stored, err := repo.FindByEmail("alice@test.com")
	require.NoError(t, err)
	assert.Len(t, repo.users, 1)
	assert.NotEqual(t, "super_password123", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("super_password123", stored.PasswordHash))
	assert.Equal(t, resp.AccessToken, stored.LoginToken)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "alice@test.com", "whatever")
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	_, err := svc.Signup(&dto.SignupRequest{
		Name:     "Alice Again",
		Email:    "alice@test.com",
		Password: "super_password123",
		Role:     models.UserRoleStudentClient,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestSignup_InvalidRole(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	_, err := svc.Signup(&dto.SignupRequest{
		Name:     "Mallory",
		Email:    "mallory@test.com",
		Password: "super_password123",
		Role:     "Administrator",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	assert.Empty(t, repo.users)
}

func TestSignin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "bob@test.com", "super_password123")
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	resp, err := svc.Signin(&dto.SigninRequest{
		Email:    "bob@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestSignin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "bob@test.com", "super_password123")
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	_, err := svc.Signin(&dto.SigninRequest{
		Email:    "bob@test.com",
		Password: "not_the_password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestSignin_UnknownEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	_, err := svc.Signin(&dto.SigninRequest{
		Email:    "nobody@test.com",
		Password: "super_password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

// ----------------------------------------------------------------------------
// Google login
// ----------------------------------------------------------------------------

func TestGoogleLogin_NewUser(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	verifier := &fakeVerifier{identity: &googleauth.Identity{
		Email:   "new@gmail.com",
		Name:    "New Person",
		Picture: "https://example.com/p.png",
	}}
	svc := newTestAuthService(repo, verifier, &fakeMailer{})

	resp, err := svc.GoogleLogin(context.Background(), "valid-credential")
	require.NoError(t, err)
	assert.True(t, resp.IsNewUser)
	assert.Equal(t, "new@gmail.com", resp.Email)
	assert.Equal(t, "New Person", resp.Name)
	assert.Nil(t, resp.User)

	// Аккаунт не создается до завершения регистрации
	assert.Empty(t, repo.users)
}

func TestGoogleLogin_ExistingUser(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "known@gmail.com", "irrelevant")
	verifier := &fakeVerifier{identity: &googleauth.Identity{Email: "known@gmail.com"}}
	svc := newTestAuthService(repo, verifier, &fakeMailer{})

	resp, err := svc.GoogleLogin(context.Background(), "valid-credential")
	require.NoError(t, err)
	assert.False(t, resp.IsNewUser)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.User.AccessToken)
}

func TestGoogleLogin_BadCredential(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	verifier := &fakeVerifier{err: errors.New("audience mismatch")}
	svc := newTestAuthService(repo, verifier, &fakeMailer{})

	_, err := svc.GoogleLogin(context.Background(), "garbage")
	assert.ErrorIs(t, err, apperrors.ErrGoogleTokenInvalid)
}

func TestCompleteGoogleSignup(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	resp, err := svc.CompleteGoogleSignup(&dto.CompleteGoogleSignupRequest{
		Email: "new@gmail.com",
		Name:  "New Person",
		Role:  models.UserRoleServiceProvider,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// password_hash заполнен, хоть пароль никто не выбирал
	stored, err := repo.FindByEmail("new@gmail.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestCompleteGoogleSignup_InvalidRole(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	_, err := svc.CompleteGoogleSignup(&dto.CompleteGoogleSignupRequest{
		Email: "new@gmail.com",
		Name:  "New Person",
		Role:  "superuser",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	assert.Empty(t, repo.users)
}

// ----------------------------------------------------------------------------
// Password reset
// ----------------------------------------------------------------------------

func TestForgotPassword_SendsLink(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "carol@test.com", "old_password")
	mailer := &fakeMailer{}
	svc := newTestAuthService(repo, &fakeVerifier{}, mailer)

	require.NoError(t, svc.ForgotPassword(context.Background(), "carol@test.com"))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "carol@test.com", mailer.sent[0])

	stored, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ResetPasswordToken)
	require.NotNil(t, stored.ResetPasswordExpires)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *stored.ResetPasswordExpires, time.Minute)
	assert.Contains(t, mailer.links[0], stored.ResetPasswordToken)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	err := svc.ForgotPassword(context.Background(), "nobody@test.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestForgotPassword_MailFailureSurfaces(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "carol@test.com", "old_password")
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{failNext: true})

	err := svc.ForgotPassword(context.Background(), "carol@test.com")
	assert.ErrorIs(t, err, apperrors.ErrMailDelivery)
}

func TestResetPassword_FullFlow(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "dave@test.com", "old_password")
	mailer := &fakeMailer{}
	svc := newTestAuthService(repo, &fakeVerifier{}, mailer)

	require.NoError(t, svc.ForgotPassword(context.Background(), "dave@test.com"))
	token := repo.users[user.ID].ResetPasswordToken
	require.NotEmpty(t, token)

	require.NoError(t, svc.CheckResetToken(token))
	require.NoError(t, svc.ResetPassword(token, "new_password1", "new_password1"))

	// Новый пароль действует, токен погашен
	_, err := svc.Signin(&dto.SigninRequest{Email: "dave@test.com", Password: "new_password1"})
	assert.NoError(t, err)

	err = svc.ResetPassword(token, "другой", "другой")
	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
}

func TestResetPassword_Mismatch(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "dave@test.com", "old_password")
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	require.NoError(t, svc.ForgotPassword(context.Background(), "dave@test.com"))
	token := repo.users[user.ID].ResetPasswordToken

	err := svc.ResetPassword(token, "new_password1", "new_password2")
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	// Состояние не тронуто: старый пароль действует, токен жив
	_, err = svc.Signin(&dto.SigninRequest{Email: "dave@test.com", Password: "old_password"})
	assert.NoError(t, err)
	assert.NoError(t, svc.CheckResetToken(token))
}

func TestResetPassword_Expired(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "eve@test.com", "old_password")
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, repo.SetResetToken(user.ID, "stale-token", expired))

	assert.ErrorIs(t, svc.CheckResetToken("stale-token"), apperrors.ErrResetTokenInvalid)
	assert.ErrorIs(t, svc.ResetPassword("stale-token", "x1", "x1"), apperrors.ErrResetTokenInvalid)
}

func TestCheckResetToken_Unknown(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, &fakeVerifier{}, &fakeMailer{})

	assert.ErrorIs(t, svc.CheckResetToken("no-such-token"), apperrors.ErrResetTokenInvalid)
}
