package services

import (
	"time"

	"proconnect_backend/internal/models"
	"proconnect_backend/internal/repositories"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/pkg/apperrors"
)

// dateLayout - формат дат в формах (issueDate, startDate и т.д.)
const dateLayout = "2006-01-02"

// parseDate разбирает дату формы; пустая строка дает nil
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date format, expected YYYY-MM-DD")
	}
	return &t, nil
}

type CertificateService interface {
	Create(req *dto.CreateCertificateRequest) (*models.Certificate, error)
	GetByID(id string) (*models.Certificate, error)
	GetAll() ([]models.Certificate, error)
	GetByUserID(userID string) ([]models.Certificate, error)
	Update(id string, req *dto.UpdateCertificateRequest) (*models.Certificate, error)
	Delete(id string) error
}

type CertificateServiceImpl struct {
	certRepo repositories.CertificateRepository
	userRepo repositories.UserRepository
}

func NewCertificateService(certRepo repositories.CertificateRepository, userRepo repositories.UserRepository) CertificateService {
	return &CertificateServiceImpl{certRepo: certRepo, userRepo: userRepo}
}

func (s *CertificateServiceImpl) Create(req *dto.CreateCertificateRequest) (*models.Certificate, error) {
	// Владелец должен существовать
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		return nil, err
	}
	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	cert := &models.Certificate{
		Name:           req.Name,
		Organization:   req.Organization,
		IssueDate:      issueDate,
		ExpirationDate: expirationDate,
		Image:          req.ImageURL,
		UserID:         req.UserID,
	}
	if err := s.certRepo.Create(cert); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cert, nil
}

func (s *CertificateServiceImpl) GetByID(id string) (*models.Certificate, error) {
	cert, err := s.certRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCertificateNotFound) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return cert, nil
}

func (s *CertificateServiceImpl) GetAll() ([]models.Certificate, error) {
	certs, err := s.certRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return certs, nil
}

func (s *CertificateServiceImpl) GetByUserID(userID string) ([]models.Certificate, error) {
	certs, err := s.certRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return certs, nil
}

func (s *CertificateServiceImpl) Update(id string, req *dto.UpdateCertificateRequest) (*models.Certificate, error) {
	cert, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		cert.Name = req.Name
	}
	if req.Organization != "" {
		cert.Organization = req.Organization
	}
	if req.IssueDate != "" {
		issueDate, err := parseDate(req.IssueDate)
		if err != nil {
			return nil, err
		}
		cert.IssueDate = issueDate
	}
	if req.ExpirationDate != "" {
		expirationDate, err := parseDate(req.ExpirationDate)
		if err != nil {
			return nil, err
		}
		cert.ExpirationDate = expirationDate
	}
	if req.ImageURL != "" {
		cert.Image = req.ImageURL
	}

	if err := s.certRepo.Update(cert); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cert, nil
}

func (s *CertificateServiceImpl) Delete(id string) error {
	if err := s.certRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrCertificateNotFound) {
			return apperrors.ErrCertificateNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
