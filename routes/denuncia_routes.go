package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alerta-vecinal/api-go/controllers"
	"github.com/alerta-vecinal/api-go/middleware"
	"github.com/alerta-vecinal/api-go/models"
)

func SetupDenunciaPublicRoutes(public *gin.RouterGroup, denunciaController *controllers.DenunciaController, evidenciaController *controllers.EvidenciaController) {
	denuncias := public.Group("/denuncias")
	{
		denuncias.POST("", denunciaController.CrearDenuncia)
		denuncias.POST("/:id/evidencias", evidenciaController.SubirEvidencias)
	}
}

func SetupDenunciaAdminRoutes(protected *gin.RouterGroup, denunciaController *controllers.DenunciaController, chatController *controllers.ChatController) {
	denuncias := protected.Group("/denuncias")
	denuncias.Use(middleware.RequireRole(models.RolAdmin))
	{
		denuncias.PUT("/:id/estado", denunciaController.ActualizarEstado)
		denuncias.DELETE("/:id", denunciaController.EliminarDenuncia)
		denuncias.POST("/:id/informe", chatController.GenerarInforme)
	}
}
