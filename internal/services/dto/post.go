package dto

// CreatePostRequest - multipart-форма объявления об услуге.
// Приложенный файл приходит сюда уже как URL.
type CreatePostRequest struct {
	Location               string  `form:"location" binding:"required"`
	PhoneNumber            string  `form:"phoneNumber" binding:"required"`
	LookingFor             string  `form:"lookingFor"`
	Skills                 string  `form:"skills"`
	RequirementDescription string  `form:"requirementDescription"`
	MeetingPreference      string  `form:"meetingPreference"`
	Budget                 float64 `form:"budget"`
	Currency               string  `form:"currency"`
	PreferredGender        string  `form:"preferredGender"`
	Language               string  `form:"language"`
	UserID                 string  `form:"userId" binding:"required"`

	FileURL string `form:"-"`
}

// UpdatePostRequest - частичное обновление объявления
type UpdatePostRequest struct {
	Location               string  `form:"location"`
	PhoneNumber            string  `form:"phoneNumber"`
	LookingFor             string  `form:"lookingFor"`
	Skills                 string  `form:"skills"`
	RequirementDescription string  `form:"requirementDescription"`
	MeetingPreference      string  `form:"meetingPreference"`
	Budget                 float64 `form:"budget"`
	Currency               string  `form:"currency"`
	PreferredGender        string  `form:"preferredGender"`
	Language               string  `form:"language"`

	FileURL string `form:"-"`
}
