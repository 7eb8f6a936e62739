package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alerta-vecinal/api-go/controllers"
)

func SetupPortalRoutes(public *gin.RouterGroup, portalController *controllers.PortalController) {
	portal := public.Group("/portal")
	{
		portal.GET("/denuncias", portalController.ListarDenuncias)
		portal.GET("/denuncias/:id", portalController.ObtenerDenuncia)
	}
}
