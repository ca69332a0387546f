package models

import "time"

// Experience - запись об опыте работы провайдера
type Experience struct {
	BaseModel
	JobTitle    string     `gorm:"not null" json:"jobtitle"`
	Company     string     `gorm:"not null" json:"company"`
	Description string     `gorm:"not null" json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	UserID      string     `gorm:"not null;index" json:"userId"`
}
