package repositories

import (
	"errors"

	"proconnect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post requirement not found")

type PostRequirementRepository interface {
	Create(post *models.PostRequirement) error
	FindByID(id string) (*models.PostRequirement, error)
	FindAll() ([]models.PostRequirement, error)
	FindByUserID(userID string) ([]models.PostRequirement, error)
	Update(post *models.PostRequirement) error
	Delete(id string) error
}

type PostRequirementRepositoryImpl struct {
	db *gorm.DB
}

func NewPostRequirementRepository(db *gorm.DB) PostRequirementRepository {
	return &PostRequirementRepositoryImpl{db: db}
}

func (r *PostRequirementRepositoryImpl) Create(post *models.PostRequirement) error {
	return r.db.Create(post).Error
}

func (r *PostRequirementRepositoryImpl) FindByID(id string) (*models.PostRequirement, error) {
	var post models.PostRequirement
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRequirementRepositoryImpl) FindAll() ([]models.PostRequirement, error) {
	var posts []models.PostRequirement
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRequirementRepositoryImpl) FindByUserID(userID string) ([]models.PostRequirement, error) {
	var posts []models.PostRequirement
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRequirementRepositoryImpl) Update(post *models.PostRequirement) error {
	return r.db.Save(post).Error
}

func (r *PostRequirementRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.PostRequirement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
