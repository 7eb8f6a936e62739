package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alerta-vecinal/api-go/controllers"
	"github.com/alerta-vecinal/api-go/middleware"
	"github.com/alerta-vecinal/api-go/models"
)

func SetupComunidadRoutes(protected *gin.RouterGroup, comunidadController *controllers.ComunidadController) {
	comunidades := protected.Group("/comunidades")
	{
		comunidades.GET("/:id", comunidadController.ObtenerComunidad)
		comunidades.GET("/:id/miembros", comunidadController.ListarMiembros)
		comunidades.GET("/:id/internas", comunidadController.ListarInternas)
		comunidades.POST("/:id/internas", comunidadController.CrearInterna)
	}

	admin := protected.Group("/comunidades")
	admin.Use(middleware.RequireRole(models.RolAdmin))
	{
		admin.POST("/:id/miembros", comunidadController.AgregarMiembro)
		admin.DELETE("/:id/miembros/:userId", comunidadController.EliminarMiembro)
		admin.GET("/:id/miembros/export", comunidadController.ExportarMiembros)
		admin.PUT("/:id/internas/:internaId/estado", comunidadController.ActualizarEstadoInterna)
	}
}
