package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/controllers"
	"github.com/alerta-vecinal/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	evidenciaController := controllers.NewEvidenciaController(db)
	denunciaController := controllers.NewDenunciaController(db, evidenciaController)
	portalController := controllers.NewPortalController(db)
	interactionController := controllers.NewInteractionController(db)
	analyticsController := controllers.NewAnalyticsController(db)
	comunidadController := controllers.NewComunidadController(db)
	chatController := controllers.NewChatController(db)
	geocodeController := controllers.NewGeocodeController()
	validationController := controllers.NewValidationController(db)

	// Public routes: the citizen side needs no account.
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/refresh-token", authController.RefreshToken)
		public.POST("/comunidades", comunidadController.CrearComunidad)
		public.GET("/geocode/reverse", geocodeController.ReverseGeocode)

		SetupDenunciaPublicRoutes(public, denunciaController, evidenciaController)
		SetupPortalRoutes(public, portalController)
		SetupInteractionRoutes(public, interactionController)
		SetupValidationRoutes(public, validationController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupComunidadRoutes(protected, comunidadController)
		SetupDenunciaAdminRoutes(protected, denunciaController, chatController)
		SetupAnalyticsRoutes(protected, analyticsController, chatController)
	}
}
