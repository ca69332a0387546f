package dto

// CreateCertificateRequest - multipart-форма создания сертификата.
// Картинка обрабатывается хендлером и приходит сюда уже как URL.
type CreateCertificateRequest struct {
	Name           string `form:"name" binding:"required"`
	Organization   string `form:"organization" binding:"required"`
	IssueDate      string `form:"issueDate"`      // YYYY-MM-DD
	ExpirationDate string `form:"expirationDate"` // YYYY-MM-DD
	UserID         string `form:"userId" binding:"required"`

	ImageURL string `form:"-"`
}

// UpdateCertificateRequest - частичное обновление сертификата
type UpdateCertificateRequest struct {
	Name           string `form:"name"`
	Organization   string `form:"organization"`
	IssueDate      string `form:"issueDate"`
	ExpirationDate string `form:"expirationDate"`

	ImageURL string `form:"-"`
}
