package services

import (
	"testing"

	"proconnect_backend/internal/models"
	"proconnect_backend/internal/repositories"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertRepo struct {
	certs map[string]*models.Certificate
}

func newFakeCertRepo() *fakeCertRepo {
	return &fakeCertRepo{certs: map[string]*models.Certificate{}}
}

func (r *fakeCertRepo) Create(cert *models.Certificate) error {
	if cert.ID == "" {
		cert.ID = uuid.NewString()
	}
	copied := *cert
	r.certs[cert.ID] = &copied
	return nil
}

func (r *fakeCertRepo) FindByID(id string) (*models.Certificate, error) {
	if c, ok := r.certs[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, repositories.ErrCertificateNotFound
}

func (r *fakeCertRepo) FindAll() ([]models.Certificate, error) {
	var out []models.Certificate
	for _, c := range r.certs {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCertRepo) FindByUserID(userID string) ([]models.Certificate, error) {
	var out []models.Certificate
	for _, c := range r.certs {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCertRepo) Update(cert *models.Certificate) error {
	if _, ok := r.certs[cert.ID]; !ok {
		return repositories.ErrCertificateNotFound
	}
	copied := *cert
	r.certs[cert.ID] = &copied
	return nil
}

func (r *fakeCertRepo) Delete(id string) error {
	if _, ok := r.certs[id]; !ok {
		return repositories.ErrCertificateNotFound
	}
	delete(r.certs, id)
	return nil
}

func TestCertificateCreate(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	owner := seedProfileUser(t, userRepo)
	certRepo := newFakeCertRepo()
	svc := NewCertificateService(certRepo, userRepo)

	cert, err := svc.Create(&dto.CreateCertificateRequest{
		Name:         "AWS SAA",
		Organization: "Amazon",
		IssueDate:    "2024-03-01",
		UserID:       owner.ID,
		ImageURL:     "http://files/certificates/a.png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cert.ID)
	require.NotNil(t, cert.IssueDate)
	assert.Equal(t, "2024-03-01", cert.IssueDate.Format("2006-01-02"))
	assert.Nil(t, cert.ExpirationDate)
}

func TestCertificateCreate_BadDate(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	owner := seedProfileUser(t, userRepo)
	svc := NewCertificateService(newFakeCertRepo(), userRepo)

	_, err := svc.Create(&dto.CreateCertificateRequest{
		Name:         "AWS SAA",
		Organization: "Amazon",
		IssueDate:    "01/03/2024",
		UserID:       owner.ID,
	})
	assert.Error(t, err)
}

func TestCertificateCreate_UnknownOwner(t *testing.T) {
	t.Parallel()

	svc := NewCertificateService(newFakeCertRepo(), newFakeUserRepo())

	_, err := svc.Create(&dto.CreateCertificateRequest{
		Name:         "AWS SAA",
		Organization: "Amazon",
		UserID:       "ghost",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCertificateUpdate_PartialAndNotFound(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	owner := seedProfileUser(t, userRepo)
	certRepo := newFakeCertRepo()
	svc := NewCertificateService(certRepo, userRepo)

	cert, err := svc.Create(&dto.CreateCertificateRequest{
		Name:         "CKA",
		Organization: "CNCF",
		UserID:       owner.ID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(cert.ID, &dto.UpdateCertificateRequest{Name: "CKAD"})
	require.NoError(t, err)
	assert.Equal(t, "CKAD", updated.Name)
	assert.Equal(t, "CNCF", updated.Organization)

	_, err = svc.Update("missing", &dto.UpdateCertificateRequest{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrCertificateNotFound)
}

func TestCertificateDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewCertificateService(newFakeCertRepo(), newFakeUserRepo())
	assert.ErrorIs(t, svc.Delete("missing"), apperrors.ErrCertificateNotFound)
}
