package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name           string   `gorm:"not null" json:"name"`
	Email          string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string   `gorm:"not null" json:"-"`
	Role           UserRole `gorm:"type:varchar(32);not null" json:"role"`
	ProfilePicture string   `json:"profilePicture"`

	// Сброс пароля: одноразовый токен и абсолютный срок действия.
	// Очищаются вместе одним UPDATE при успешном сбросе.
	ResetPasswordToken   string     `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	// Последний токен, выданный при регистрации. Хранится информативно,
	// при последующих логинах не перепроверяется.
	LoginToken string `json:"-"`

	// Профильные поля (аутентификация их не трогает)
	Location        string         `json:"location"`
	PhoneNumber     string         `json:"phoneNumber"`
	Designation     string         `json:"designation"`
	ExperienceYears int            `json:"experienceYears"`
	Skills          datatypes.JSON `json:"skills"`
	Certificates    datatypes.JSON `json:"certificates"`
	Education       datatypes.JSON `json:"education"`
	Experience      datatypes.JSON `json:"experience"`
}
