package models

import "time"

// Certificate - выданный сертификат провайдера услуг.
// Image хранит URL файла в объектном хранилище.
type Certificate struct {
	BaseModel
	Name           string     `gorm:"not null" json:"name"`
	Organization   string     `gorm:"not null" json:"organization"`
	IssueDate      *time.Time `json:"issueDate"`
	ExpirationDate *time.Time `json:"expirationDate"`
	Image          string     `gorm:"type:text" json:"image"`
	UserID         string     `gorm:"not null;index" json:"userId"`
}
