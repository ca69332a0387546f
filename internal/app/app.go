package app

import (
	"fmt"
	"time"

	"proconnect_backend/database"
	"proconnect_backend/internal/auth"
	"proconnect_backend/internal/config"
	"proconnect_backend/internal/email"
	"proconnect_backend/internal/googleauth"
	"proconnect_backend/internal/handlers"
	"proconnect_backend/internal/logger"
	"proconnect_backend/internal/middleware"
	"proconnect_backend/internal/repositories"
	"proconnect_backend/internal/routes"
	"proconnect_backend/internal/services"
	"proconnect_backend/internal/storage"
	"proconnect_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development")
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokens := auth.NewTokenManager(cfg.JWT.Secret)
	sessionTTL := time.Duration(cfg.JWT.TTLHours) * time.Hour

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, tokens, sessionTTL)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()

	// Локальное хранилище отдается самим сервером
	if cfg.Storage.Type == "local" {
		ginRouter.Static("/files", cfg.Storage.BasePath)
	}

	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	tokens *auth.TokenManager,
	sessionTTL time.Duration,
) *services.ServiceContainer {
	emailService := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, email.NewTemplateManager())

	verifier := googleauth.NewGoogleVerifier(cfg.Google.ClientID)

	userRepo := repositories.NewUserRepository(gormDB)
	certRepo := repositories.NewCertificateRepository(gormDB)
	expRepo := repositories.NewExperienceRepository(gormDB)
	postRepo := repositories.NewPostRequirementRepository(gormDB)

	authService := services.NewAuthService(userRepo, tokens, verifier, emailService, sessionTTL, cfg.Email.FrontendURL)
	userService := services.NewUserService(userRepo)
	certService := services.NewCertificateService(certRepo, userRepo)
	expService := services.NewExperienceService(expRepo, userRepo)
	postService := services.NewPostService(postRepo, userRepo)

	return &services.ServiceContainer{
		AuthService:        authService,
		UserService:        userService,
		CertificateService: certService,
		ExperienceService:  expService,
		PostService:        postService,
		EmailService:       emailService,
		Storage:            storageInstance,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService, container.Storage),
		CertificateHandler: handlers.NewCertificateHandler(baseHandler, container.CertificateService, container.Storage),
		ExperienceHandler:  handlers.NewExperienceHandler(baseHandler, container.ExperienceService),
		PostHandler:        handlers.NewPostHandler(baseHandler, container.PostService, container.Storage),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
