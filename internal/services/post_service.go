package services

import (
	"proconnect_backend/internal/models"
	"proconnect_backend/internal/repositories"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/pkg/apperrors"
)

type PostService interface {
	Create(req *dto.CreatePostRequest) (*models.PostRequirement, error)
	GetByID(id string) (*models.PostRequirement, error)
	GetAll() ([]models.PostRequirement, error)
	GetByUserID(userID string) ([]models.PostRequirement, error)
	Update(id string, req *dto.UpdatePostRequest) (*models.PostRequirement, error)
	Delete(id string) error
}

type PostServiceImpl struct {
	postRepo repositories.PostRequirementRepository
	userRepo repositories.UserRepository
}

func NewPostService(postRepo repositories.PostRequirementRepository, userRepo repositories.UserRepository) PostService {
	return &PostServiceImpl{postRepo: postRepo, userRepo: userRepo}
}

func (s *PostServiceImpl) Create(req *dto.CreatePostRequest) (*models.PostRequirement, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	post := &models.PostRequirement{
		Location:               req.Location,
		PhoneNumber:            req.PhoneNumber,
		LookingFor:             req.LookingFor,
		Skills:                 req.Skills,
		RequirementDescription: req.RequirementDescription,
		MeetingPreference:      req.MeetingPreference,
		Budget:                 req.Budget,
		Currency:               req.Currency,
		PreferredGender:        req.PreferredGender,
		Language:               req.Language,
		File:                   req.FileURL,
		UserID:                 req.UserID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *PostServiceImpl) GetByID(id string) (*models.PostRequirement, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *PostServiceImpl) GetAll() ([]models.PostRequirement, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *PostServiceImpl) GetByUserID(userID string) ([]models.PostRequirement, error) {
	posts, err := s.postRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *PostServiceImpl) Update(id string, req *dto.UpdatePostRequest) (*models.PostRequirement, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Location != "" {
		post.Location = req.Location
	}
	if req.PhoneNumber != "" {
		post.PhoneNumber = req.PhoneNumber
	}
	if req.LookingFor != "" {
		post.LookingFor = req.LookingFor
	}
	if req.Skills != "" {
		post.Skills = req.Skills
	}
	if req.RequirementDescription != "" {
		post.RequirementDescription = req.RequirementDescription
	}
	if req.MeetingPreference != "" {
		post.MeetingPreference = req.MeetingPreference
	}
	if req.Budget != 0 {
		post.Budget = req.Budget
	}
	if req.Currency != "" {
		post.Currency = req.Currency
	}
	if req.PreferredGender != "" {
		post.PreferredGender = req.PreferredGender
	}
	if req.Language != "" {
		post.Language = req.Language
	}
	if req.FileURL != "" {
		post.File = req.FileURL
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *PostServiceImpl) Delete(id string) error {
	if err := s.postRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
