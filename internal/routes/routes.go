package routes

import (
	"legalvault_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ClientHandler.RegisterRoutes(api)
		appHandlers.BranchHandler.RegisterRoutes(api)
		appHandlers.CaseHandler.RegisterRoutes(api)
		appHandlers.CaseTagHandler.RegisterRoutes(api)
		appHandlers.DocumentHandler.RegisterRoutes(api)
		appHandlers.PaymentHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}
}
