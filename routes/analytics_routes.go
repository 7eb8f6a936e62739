package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alerta-vecinal/api-go/controllers"
	"github.com/alerta-vecinal/api-go/middleware"
	"github.com/alerta-vecinal/api-go/models"
)

func SetupAnalyticsRoutes(protected *gin.RouterGroup, analyticsController *controllers.AnalyticsController, chatController *controllers.ChatController) {
	analytics := protected.Group("/analytics")
	analytics.Use(middleware.RequireRole(models.RolAdmin))
	{
		analytics.GET("/resumen", analyticsController.Resumen)
		analytics.GET("/export", analyticsController.ExportarDenuncias)
		analytics.GET("/narrativa", chatController.NarrarAnalytics)
	}

	chat := protected.Group("/chat")
	chat.Use(middleware.RequireRole(models.RolAdmin))
	{
		chat.POST("", chatController.Chat)
	}
}
