package services

import (
	"encoding/json"

	"proconnect_backend/internal/models"
	"proconnect_backend/internal/repositories"
	"proconnect_backend/internal/services/dto"
	"proconnect_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserService interface {
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)

	GetSkills(userID string) (datatypes.JSON, error)
	UpdateSkills(userID string, skills json.RawMessage) error
	UpdateExperiencePayload(userID string, experience json.RawMessage) error

	// Операции над встроенным JSON-полем certificates
	GetEmbeddedCertificates(userID string) (datatypes.JSON, error)
	AddEmbeddedCertificates(userID string, certs []map[string]interface{}) ([]map[string]interface{}, error)
	UpdateEmbeddedCertificate(userID, certID string, patch map[string]interface{}) ([]map[string]interface{}, error)
	DeleteEmbeddedCertificate(userID, certID string) ([]map[string]interface{}, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetProfile возвращает пользователя по id
func (s *UserServiceImpl) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile обновляет профильные поля. Пустые значения
// не затирают существующие.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.PhoneNumber != "" {
		fields["phone_number"] = req.PhoneNumber
	}
	if req.Designation != "" {
		fields["designation"] = req.Designation
	}
	if req.ExperienceYears != 0 {
		fields["experience_years"] = req.ExperienceYears
	}
	if req.ProfilePictureURL != "" {
		fields["profile_picture"] = req.ProfilePictureURL
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(user.ID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetProfile(userID)
}

// GetSkills возвращает JSON-массив навыков
func (s *UserServiceImpl) GetSkills(userID string) (datatypes.JSON, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return user.Skills, nil
}

// UpdateSkills заменяет JSON-массив навыков целиком
func (s *UserServiceImpl) UpdateSkills(userID string, skills json.RawMessage) error {
	if _, err := s.GetProfile(userID); err != nil {
		return err
	}
	if err := s.userRepo.UpdateFields(userID, map[string]interface{}{
		"skills": datatypes.JSON(skills),
	}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateExperiencePayload заменяет встроенный JSON-блок опыта
func (s *UserServiceImpl) UpdateExperiencePayload(userID string, experience json.RawMessage) error {
	if _, err := s.GetProfile(userID); err != nil {
		return err
	}
	if err := s.userRepo.UpdateFields(userID, map[string]interface{}{
		"experience": datatypes.JSON(experience),
	}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetEmbeddedCertificates возвращает JSON-поле certificates как есть
func (s *UserServiceImpl) GetEmbeddedCertificates(userID string) (datatypes.JSON, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return user.Certificates, nil
}

// AddEmbeddedCertificates дописывает записи к JSON-полю, присваивая
// каждой uuid
func (s *UserServiceImpl) AddEmbeddedCertificates(userID string, certs []map[string]interface{}) ([]map[string]interface{}, error) {
	existing, err := s.decodeEmbedded(userID)
	if err != nil {
		return nil, err
	}

	for _, cert := range certs {
		cert["id"] = uuid.NewString()
		existing = append(existing, cert)
	}

	if err := s.saveEmbedded(userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateEmbeddedCertificate сливает patch в запись с данным id
func (s *UserServiceImpl) UpdateEmbeddedCertificate(userID, certID string, patch map[string]interface{}) ([]map[string]interface{}, error) {
	existing, err := s.decodeEmbedded(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, cert := range existing {
		if cert["id"] == certID {
			for k, v := range patch {
				if k == "id" {
					continue
				}
				cert[k] = v
			}
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.ErrCertificateNotFound
	}

	if err := s.saveEmbedded(userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteEmbeddedCertificate убирает запись с данным id
func (s *UserServiceImpl) DeleteEmbeddedCertificate(userID, certID string) ([]map[string]interface{}, error) {
	existing, err := s.decodeEmbedded(userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]map[string]interface{}, 0, len(existing))
	for _, cert := range existing {
		if cert["id"] != certID {
			filtered = append(filtered, cert)
		}
	}

	if err := s.saveEmbedded(userID, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

func (s *UserServiceImpl) decodeEmbedded(userID string) ([]map[string]interface{}, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	var certs []map[string]interface{}
	if len(user.Certificates) > 0 {
		if err := json.Unmarshal(user.Certificates, &certs); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return certs, nil
}

func (s *UserServiceImpl) saveEmbedded(userID string, certs []map[string]interface{}) error {
	raw, err := json.Marshal(certs)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.UpdateFields(userID, map[string]interface{}{
		"certificates": datatypes.JSON(raw),
	}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
