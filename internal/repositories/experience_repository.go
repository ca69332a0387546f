package repositories

import (
	"errors"

	"proconnect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExperienceNotFound = errors.New("experience not found")

type ExperienceRepository interface {
	Create(exp *models.Experience) error
	FindByID(id string) (*models.Experience, error)
	FindAll() ([]models.Experience, error)
	FindByUserID(userID string) ([]models.Experience, error)
	Update(exp *models.Experience) error
	Delete(id string) error
}

type ExperienceRepositoryImpl struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &ExperienceRepositoryImpl{db: db}
}

func (r *ExperienceRepositoryImpl) Create(exp *models.Experience) error {
	return r.db.Create(exp).Error
}

func (r *ExperienceRepositoryImpl) FindByID(id string) (*models.Experience, error) {
	var exp models.Experience
	err := r.db.First(&exp, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &exp, nil
}

func (r *ExperienceRepositoryImpl) FindAll() ([]models.Experience, error) {
	var exps []models.Experience
	if err := r.db.Find(&exps).Error; err != nil {
		return nil, err
	}
	return exps, nil
}

func (r *ExperienceRepositoryImpl) FindByUserID(userID string) ([]models.Experience, error) {
	var exps []models.Experience
	if err := r.db.Where("user_id = ?", userID).Find(&exps).Error; err != nil {
		return nil, err
	}
	return exps, nil
}

func (r *ExperienceRepositoryImpl) Update(exp *models.Experience) error {
	return r.db.Save(exp).Error
}

func (r *ExperienceRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Experience{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExperienceNotFound
	}
	return nil
}
