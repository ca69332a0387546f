package services

import (
	"proconnect_backend/internal/models"
	"proconnect_backend/internal/repositories"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/pkg/apperrors"
)

type ExperienceService interface {
	Create(req *dto.CreateExperienceRequest) (*models.Experience, error)
	GetByID(id string) (*models.Experience, error)
	GetAll() ([]models.Experience, error)
	GetByUserID(userID string) ([]models.Experience, error)
	Update(id string, req *dto.UpdateExperienceRequest) (*models.Experience, error)
	Delete(id string) error
}

type ExperienceServiceImpl struct {
	expRepo  repositories.ExperienceRepository
	userRepo repositories.UserRepository
}

func NewExperienceService(expRepo repositories.ExperienceRepository, userRepo repositories.UserRepository) ExperienceService {
	return &ExperienceServiceImpl{expRepo: expRepo, userRepo: userRepo}
}

func (s *ExperienceServiceImpl) Create(req *dto.CreateExperienceRequest) (*models.Experience, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		UserID:      req.UserID,
	}
	if err := s.expRepo.Create(exp); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exp, nil
}

func (s *ExperienceServiceImpl) GetByID(id string) (*models.Experience, error) {
	exp, err := s.expRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return exp, nil
}

func (s *ExperienceServiceImpl) GetAll() ([]models.Experience, error) {
	exps, err := s.expRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exps, nil
}

func (s *ExperienceServiceImpl) GetByUserID(userID string) ([]models.Experience, error) {
	exps, err := s.expRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exps, nil
}

func (s *ExperienceServiceImpl) Update(id string, req *dto.UpdateExperienceRequest) (*models.Experience, error) {
	exp, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.JobTitle != "" {
		exp.JobTitle = req.JobTitle
	}
	if req.Company != "" {
		exp.Company = req.Company
	}
	if req.Description != "" {
		exp.Description = req.Description
	}
	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		exp.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		exp.EndDate = endDate
	}

	if err := s.expRepo.Update(exp); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exp, nil
}

func (s *ExperienceServiceImpl) Delete(id string) error {
	if err := s.expRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrExperienceNotFound) {
			return apperrors.ErrExperienceNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
