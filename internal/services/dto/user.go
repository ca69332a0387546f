package dto

import "encoding/json"

// UpdateProfileRequest - поля профиля из multipart-формы.
// Файл profilePicture обрабатывается хендлером отдельно.
type UpdateProfileRequest struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Location        string `form:"location"`
	PhoneNumber     string `form:"phoneNumber"`
	Designation     string `form:"designation"`
	ExperienceYears int    `form:"experienceYears"`

	// URL загруженной картинки; пустая строка - оставить прежнюю
	ProfilePictureURL string `form:"-"`
}

// SkillsRequest - произвольный JSON-массив навыков
type SkillsRequest struct {
	Skills json.RawMessage `json:"skills" binding:"required"`
}

// ExperiencePayloadRequest - встроенный JSON-блок опыта на пользователе
type ExperiencePayloadRequest struct {
	Experience json.RawMessage `json:"experience" binding:"required"`
}

// AddCertificatesRequest - пачка сертификатов для встроенного
// JSON-поля пользователя
type AddCertificatesRequest struct {
	Certificates []map[string]interface{} `json:"certificates" binding:"required,min=1"`
}
