package repositories

import (
	"errors"

	"proconnect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateRepository interface {
	Create(cert *models.Certificate) error
	FindByID(id string) (*models.Certificate, error)
	FindAll() ([]models.Certificate, error)
	FindByUserID(userID string) ([]models.Certificate, error)
	Update(cert *models.Certificate) error
	Delete(id string) error
}

type CertificateRepositoryImpl struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &CertificateRepositoryImpl{db: db}
}

func (r *CertificateRepositoryImpl) Create(cert *models.Certificate) error {
	return r.db.Create(cert).Error
}

func (r *CertificateRepositoryImpl) FindByID(id string) (*models.Certificate, error) {
	var cert models.Certificate
	err := r.db.First(&cert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepositoryImpl) FindAll() ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := r.db.Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepositoryImpl) FindByUserID(userID string) ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := r.db.Where("user_id = ?", userID).Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepositoryImpl) Update(cert *models.Certificate) error {
	return r.db.Save(cert).Error
}

func (r *CertificateRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Certificate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCertificateNotFound
	}
	return nil
}
