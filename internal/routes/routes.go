package routes

import (
	"net/http"

	"proconnect_backend/internal/auth"
	"proconnect_backend/internal/handlers"
	"proconnect_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Маршруты /auth публичные; под /api чтение открыто,
// а мутации требуют валидный x-access-token.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	root := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(root)
	}

	api := ginRouter.Group("/api")
	apiGated := ginRouter.Group("/api")
	apiGated.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.UserHandler.RegisterRoutes(api, apiGated)
		appHandlers.CertificateHandler.RegisterRoutes(api, apiGated)
		appHandlers.ExperienceHandler.RegisterRoutes(api, apiGated)
		appHandlers.PostHandler.RegisterRoutes(api, apiGated)
	}

	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
