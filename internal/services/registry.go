package services

import (
	"proconnect_backend/internal/email"
	"proconnect_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	CertificateService CertificateService
	ExperienceService  ExperienceService
	PostService        PostService
	EmailService       email.Provider
	Storage            storage.Storage
}
