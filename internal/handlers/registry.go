package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	CertificateHandler *CertificateHandler
	ExperienceHandler  *ExperienceHandler
	PostHandler        *PostHandler
}
