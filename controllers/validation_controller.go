package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/models"
)

// ValidationController backs the registration wizard's availability checks.
type ValidationController struct {
	DB *gorm.DB
}

func NewValidationController(db *gorm.DB) *ValidationController {
	return &ValidationController{DB: db}
}

func (vc *ValidationController) ValidateUsername(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	result := vc.DB.Where("username = ?", username).First(&user)

	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"exists": true})
	} else if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"exists": false})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
	}
}

func (vc *ValidationController) ValidateEmail(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	result := vc.DB.Where("email = ?", email).First(&user)

	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"exists": true})
	} else if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"exists": false})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
	}
}

// ValidateCodigoAcceso checks a community join code before the last wizard
// step so the form can show the community's name.
func (vc *ValidationController) ValidateCodigoAcceso(c *gin.Context) {
	codigo := strings.ToUpper(c.Param("codigo"))

	var comunidad models.Comunidad
	result := vc.DB.Where("codigo_acceso = ?", codigo).First(&comunidad)

	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"valid": true, "comunidad": comunidad.Nombre})
	} else if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"valid": false})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access code"})
	}
}
