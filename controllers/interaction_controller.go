package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/models"
)

// InteractionController handles the portal's social affordances. Visitor ids
// are client-generated and unverified: any visitor can toggle or comment.
// Updates are whole-document read-then-write round trips with no concurrency
// guard; concurrent togglers race last-write-wins.
type InteractionController struct {
	DB *gorm.DB
}

type MeImportaRequest struct {
	VisitanteID string `json:"visitante_id" binding:"required"`
}

type ComentarRequest struct {
	Autor     string `json:"autor"`
	Contenido string `json:"contenido" binding:"required,min=1"`
	Anonimo   bool   `json:"anonimo"`
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// ToggleMeImporta godoc
// @Summary Toggle "me importa" for a visitor
// @Description Flips the visitor's membership in the complaint's cares-about set
// @Tags interacciones
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} map[string]interface{}
// @Router /portal/denuncias/{id}/me-importa [post]
func (ic *InteractionController) ToggleMeImporta(c *gin.Context) {
	denunciaID := c.Param("id")

	var req MeImportaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var denuncia models.Denuncia
	if err := ic.DB.First(&denuncia, denunciaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denuncia not found"})
		return
	}

	actualizado, activo := ToggleVisitante(denuncia.MeImporta, req.VisitanteID)

	if err := ic.DB.Model(&denuncia).Update("me_importa", pq.StringArray(actualizado)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update me_importa"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"me_importa": activo,
		"total":      len(actualizado),
	})
}

// Comentar godoc
// @Summary Append a comment to a complaint
// @Tags interacciones
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param comentario body ComentarRequest true "Comment"
// @Success 201 {object} models.Comentario
// @Router /portal/denuncias/{id}/comentarios [post]
func (ic *InteractionController) Comentar(c *gin.Context) {
	denunciaID := c.Param("id")

	var req ComentarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var denuncia models.Denuncia
	if err := ic.DB.First(&denuncia, denunciaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denuncia not found"})
		return
	}

	autor := req.Autor
	if req.Anonimo || autor == "" {
		autor = models.NombreAnonimo
	}

	comentario := models.Comentario{
		DenunciaID: denuncia.ID,
		Autor:      autor,
		Contenido:  req.Contenido,
		Anonimo:    req.Anonimo,
		CreatedAt:  time.Now(),
	}

	if err := ic.DB.Create(&comentario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comentario"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    comentario,
	})
}

// Compartir godoc
// @Summary Increment the share counter
// @Tags interacciones
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} map[string]interface{}
// @Router /portal/denuncias/{id}/compartir [post]
func (ic *InteractionController) Compartir(c *gin.Context) {
	denunciaID := c.Param("id")

	var denuncia models.Denuncia
	if err := ic.DB.First(&denuncia, denunciaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denuncia not found"})
		return
	}

	// Read-increment-write, same race caveat as the toggle.
	compartidos := denuncia.Compartidos + 1
	if err := ic.DB.Model(&denuncia).Update("compartidos", compartidos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update compartidos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"compartidos": compartidos})
}

// ToggleVisitante flips the visitor's membership in the cares-about set and
// reports whether the visitor is a member afterwards. Toggling twice with the
// same id restores the original set.
func ToggleVisitante(set []string, visitanteID string) ([]string, bool) {
	for i, v := range set {
		if v == visitanteID {
			return append(set[:i:i], set[i+1:]...), false
		}
	}
	return append(set, visitanteID), true
}
