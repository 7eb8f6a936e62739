package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/models"
	"github.com/alerta-vecinal/api-go/utils"
)

type PortalController struct {
	DB *gorm.DB
}

type PortalQuery struct {
	Texto     string `form:"texto"`
	Categoria string `form:"categoria"`
	Limit     int    `form:"limit,default=0" binding:"omitempty,min=1,max=500"`
}

func NewPortalController(db *gorm.DB) *PortalController {
	return &PortalController{DB: db}
}

// ListarDenuncias godoc
// @Summary Public complaint feed
// @Description Full collection ordered by creation time desc, then filtered in memory by free text and category
// @Tags portal
// @Produce json
// @Param texto query string false "Substring filter over titulo/descripcion/ubicacion"
// @Param categoria query string false "Category filter; 'todas' returns everything"
// @Param limit query integer false "Cap on fetched records"
// @Success 200 {object} StandardResponse
// @Router /portal/denuncias [get]
func (pc *PortalController) ListarDenuncias(c *gin.Context) {
	var query PortalQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if query.Categoria != "" && query.Categoria != "todas" && !models.CategoriaValida(query.Categoria) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown categoria"})
		return
	}

	db := pc.DB.Model(&models.Denuncia{}).
		Preload("Evidencias").
		Preload("Comentarios").
		Order("created_at DESC")

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var denuncias []models.Denuncia
	if err := db.Find(&denuncias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching denuncias"})
		return
	}

	filtradas := FiltrarDenuncias(denuncias, query.Texto, query.Categoria)
	for i := range filtradas {
		filtradas[i].Estado = models.NormalizarEstado(filtradas[i].Estado)
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    filtradas,
		Meta: gin.H{
			"total":     len(filtradas),
			"texto":     query.Texto,
			"categoria": query.Categoria,
		},
	})
}

// ObtenerDenuncia godoc
// @Summary Complaint detail
// @Tags portal
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} models.Denuncia
// @Router /portal/denuncias/{id} [get]
func (pc *PortalController) ObtenerDenuncia(c *gin.Context) {
	denunciaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid denuncia id"})
		return
	}

	var denuncia models.Denuncia
	result := pc.DB.
		Preload("Evidencias").
		Preload("Comentarios", func(db *gorm.DB) *gorm.DB {
			return db.Order("comentarios.created_at ASC")
		}).
		First(&denuncia, denunciaID)

	if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "Denuncia not found",
			"denuncia": denunciaID,
		})
		return
	} else if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching denuncia"})
		return
	}

	denuncia.Estado = models.NormalizarEstado(denuncia.Estado)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    denuncia,
	})
}

// FiltrarDenuncias applies the portal's free-text and category filters to an
// already fetched collection. The original filters client-side, so this is a
// plain in-memory pass rather than a query.
func FiltrarDenuncias(denuncias []models.Denuncia, texto, categoria string) []models.Denuncia {
	filtradas := make([]models.Denuncia, 0, len(denuncias))
	for _, d := range denuncias {
		if categoria != "" && categoria != "todas" && d.Categoria != categoria {
			continue
		}
		if !utils.ContieneTexto(texto, d.Titulo, d.Descripcion, d.Ubicacion) {
			continue
		}
		filtradas = append(filtradas, d)
	}
	return filtradas
}
