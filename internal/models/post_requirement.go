package models

// PostRequirement - объявление клиента о том, какая услуга ему нужна.
// File хранит URL приложенного файла в объектном хранилище.
type PostRequirement struct {
	BaseModel
	Location               string  `gorm:"not null" json:"location"`
	PhoneNumber            string  `gorm:"not null" json:"phoneNumber"`
	LookingFor             string  `json:"lookingFor"`
	Skills                 string  `gorm:"type:text" json:"skills"`
	RequirementDescription string  `gorm:"type:text" json:"requirementDescription"`
	MeetingPreference      string  `json:"meetingPreference"`
	Budget                 float64 `gorm:"type:decimal(10,2)" json:"budget"`
	Currency               string  `json:"currency"`
	PreferredGender        string  `json:"preferredGender"`
	Language               string  `json:"language"`
	File                   string  `gorm:"type:text" json:"file"`
	UserID                 string  `gorm:"not null;index" json:"userId"`
}
