package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/models"
	"github.com/alerta-vecinal/api-go/utils"
)

type DenunciaController struct {
	DB                  *gorm.DB
	EvidenciaController *EvidenciaController
}

type EvidenciaURLInput struct {
	URL    string `json:"url" binding:"required,url"`
	Tipo   string `json:"tipo" binding:"omitempty,oneof=imagen video audio documento otro"`
	Nombre string `json:"nombre"`
}

type DenuncianteInput struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email" binding:"omitempty,email"`
	Telefono string `json:"telefono"`
	Anonimo  bool   `json:"anonimo"`
}

type CrearDenunciaRequest struct {
	Titulo         string              `json:"titulo" binding:"required,min=5"`
	Descripcion    string              `json:"descripcion" binding:"required,min=20"`
	Categoria      string              `json:"categoria" binding:"required,oneof=ruido seguridad basura trafico infraestructura servicios vandalismo animales convivencia emergencia otro"`
	FechaIncidente string              `json:"fecha_incidente"`
	Ubicacion      string              `json:"ubicacion"`
	Latitud        float64             `json:"latitud"`
	Longitud       float64             `json:"longitud"`
	Evidencias     []EvidenciaURLInput `json:"evidencias" binding:"omitempty,dive"`
	Denunciante    DenuncianteInput    `json:"denunciante"`
}

type ActualizarEstadoRequest struct {
	// Free-form on purpose: legacy records carry unnormalized values and the
	// read path re-normalizes, so the write boundary does not enforce the enum.
	Estado string `json:"estado" binding:"required"`
}

func NewDenunciaController(db *gorm.DB, evidenciaController *EvidenciaController) *DenunciaController {
	return &DenunciaController{
		DB:                  db,
		EvidenciaController: evidenciaController,
	}
}

// CrearDenuncia godoc
// @Summary Submit a public complaint
// @Description Final step of the intake wizard: persists the accumulated complaint in one write
// @Tags denuncias
// @Accept json
// @Produce json
// @Param denuncia body CrearDenunciaRequest true "Complaint submission"
// @Success 201 {object} models.Denuncia
// @Router /denuncias [post]
func (dc *DenunciaController) CrearDenuncia(c *gin.Context) {
	var req CrearDenunciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	denuncia, err := ConstruirDenuncia(req, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.DB.Create(&denuncia).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create denuncia"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    denuncia,
		Message: "Denuncia registrada",
	})
}

// ConstruirDenuncia builds the record to persist from a validated submission.
// The intake defaults live here: estado starts as pendiente, fecha_incidente
// falls back to the submission time, pasted-URL evidence without a tipo gets
// it inferred from the extension, and anonymous submissions carry the fixed
// placeholders no matter what was typed in the wizard.
func ConstruirDenuncia(req CrearDenunciaRequest, ahora time.Time) (models.Denuncia, error) {
	fechaIncidente := ahora
	if req.FechaIncidente != "" {
		parsed, err := time.Parse("2006-01-02", req.FechaIncidente)
		if err != nil {
			return models.Denuncia{}, errors.New("fecha_incidente must be YYYY-MM-DD")
		}
		fechaIncidente = parsed
	}

	denunciante := models.Denunciante{
		Nombre:   req.Denunciante.Nombre,
		Apellido: req.Denunciante.Apellido,
		Email:    req.Denunciante.Email,
		Telefono: req.Denunciante.Telefono,
		Anonimo:  req.Denunciante.Anonimo,
	}
	if denunciante.Anonimo {
		denunciante.Anonimizar()
	}

	var evidencias []models.Evidencia
	for _, ev := range req.Evidencias {
		tipo := ev.Tipo
		if tipo == "" {
			tipo = utils.InferirTipoPorURL(ev.URL)
		}
		evidencias = append(evidencias, models.Evidencia{
			Tipo:   tipo,
			URL:    ev.URL,
			Nombre: ev.Nombre,
		})
	}

	return models.Denuncia{
		Titulo:         req.Titulo,
		Descripcion:    req.Descripcion,
		Categoria:      req.Categoria,
		Estado:         models.EstadoPendiente,
		FechaIncidente: fechaIncidente,
		Ubicacion:      req.Ubicacion,
		Latitud:        req.Latitud,
		Longitud:       req.Longitud,
		Denunciante:    denunciante,
		Evidencias:     evidencias,
		MeImporta:      []string{},
		CreatedAt:      ahora,
	}, nil
}

// ActualizarEstado godoc
// @Summary Change the lifecycle status of a complaint
// @Tags denuncias
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param estado body ActualizarEstadoRequest true "New status"
// @Success 200 {object} StandardResponse
// @Router /denuncias/{id}/estado [put]
func (dc *DenunciaController) ActualizarEstado(c *gin.Context) {
	denunciaID := c.Param("id")

	var req ActualizarEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var denuncia models.Denuncia
	if err := dc.DB.First(&denuncia, denunciaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denuncia not found"})
		return
	}

	if err := dc.DB.Model(&denuncia).Updates(map[string]interface{}{
		"estado":     req.Estado,
		"updated_at": time.Now(),
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update estado"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"id":     denuncia.ID,
			"estado": req.Estado,
		},
		Message: "Estado actualizado",
	})
}

// EliminarDenuncia godoc
// @Summary Delete a complaint and its evidence
// @Description Removes the record, its comments and evidence rows, then every stored evidence object
// @Tags denuncias
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} StandardResponse
// @Router /denuncias/{id} [delete]
func (dc *DenunciaController) EliminarDenuncia(c *gin.Context) {
	denunciaID := c.Param("id")

	var denuncia models.Denuncia
	if err := dc.DB.First(&denuncia, denunciaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denuncia not found"})
		return
	}

	tx := dc.DB.Begin()

	if err := tx.Where("denuncia_id = ?", denuncia.ID).Delete(&models.Comentario{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comentarios"})
		return
	}

	if err := tx.Where("denuncia_id = ?", denuncia.ID).Delete(&models.Evidencia{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete evidencias"})
		return
	}

	if err := tx.Delete(&denuncia).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete denuncia"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	// Storage cleanup happens after the record is gone; a partial cleanup
	// only leaves orphaned objects, never an inconsistent record.
	if err := dc.EvidenciaController.EliminarObjetosDenuncia(denuncia.ID); err != nil {
		log.Printf("Evidence cleanup for denuncia %d failed: %v", denuncia.ID, err)
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Denuncia eliminada",
	})
}
