package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alerta-vecinal/api-go/controllers"
)

func SetupInteractionRoutes(public *gin.RouterGroup, interactionController *controllers.InteractionController) {
	denuncias := public.Group("/portal/denuncias")
	{
		denuncias.POST("/:id/me-importa", interactionController.ToggleMeImporta)
		denuncias.POST("/:id/comentarios", interactionController.Comentar)
		denuncias.POST("/:id/compartir", interactionController.Compartir)
	}
}
