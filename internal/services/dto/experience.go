package dto

// CreateExperienceRequest - запись об опыте работы
type CreateExperienceRequest struct {
	JobTitle    string `json:"jobtitle" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Description string `json:"description" binding:"required"`
	StartDate   string `json:"startDate"` // YYYY-MM-DD
	EndDate     string `json:"endDate"`   // YYYY-MM-DD
	UserID      string `json:"userId" binding:"required"`
}

// UpdateExperienceRequest - частичное обновление записи
type UpdateExperienceRequest struct {
	JobTitle    string `json:"jobtitle"`
	Company     string `json:"company"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}
