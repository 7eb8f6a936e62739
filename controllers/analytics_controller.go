package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/models"
)

type AnalyticsController struct {
	DB *gorm.DB
}

// ResumenDenuncia is the minimal shape the aggregation pass needs, so public
// and community-internal complaints feed the same reduction.
type ResumenDenuncia struct {
	Categoria string
	Estado    string
	CreatedAt time.Time
}

type ConteoMes struct {
	Mes   string `json:"mes"` // YYYY-MM
	Total int    `json:"total"`
}

var diasSemana = [...]string{"domingo", "lunes", "martes", "miercoles", "jueves", "viernes", "sabado"}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// Resumen godoc
// @Summary Aggregate counts over the complaint collection
// @Description Fetches the full set (or a community's internal set) and reduces it in one pass; nothing is persisted
// @Tags analytics
// @Produce json
// @Param comunidad query integer false "Community ID: aggregate internal complaints instead"
// @Success 200 {object} StandardResponse
// @Router /analytics/resumen [get]
func (ac *AnalyticsController) Resumen(c *gin.Context) {
	resumen, err := ac.cargarResumen(c.Query("comunidad"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching denuncias"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"total":           len(resumen),
			"por_estado":      ContarPorEstado(resumen),
			"por_categoria":   ContarPorCategoria(resumen),
			"tendencia":       TendenciaMensual(resumen),
			"por_dia_semana":  ConteoPorDiaSemana(resumen),
			"tasa_resolucion": TasaResolucion(resumen),
		},
	})
}

// ExportarDenuncias godoc
// @Summary Export the complaint collection as a spreadsheet
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /analytics/export [get]
func (ac *AnalyticsController) ExportarDenuncias(c *gin.Context) {
	var denuncias []models.Denuncia
	if err := ac.DB.Order("created_at DESC").Find(&denuncias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching denuncias"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Denuncias"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Título", "Categoría", "Estado", "Fecha incidente", "Ubicación", "Denunciante", "Me importa", "Compartidos", "Creada"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, d := range denuncias {
		values := []interface{}{
			d.ID,
			d.Titulo,
			d.Categoria,
			models.NormalizarEstado(d.Estado),
			d.FechaIncidente.Format("2006-01-02"),
			d.Ubicacion,
			d.Denunciante.Nombre,
			len(d.MeImporta),
			d.Compartidos,
			d.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=denuncias_%s.xlsx", time.Now().Format("20060102")))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write spreadsheet"})
	}
}

func (ac *AnalyticsController) cargarResumen(comunidadID string) ([]ResumenDenuncia, error) {
	if comunidadID != "" {
		var internas []models.DenunciaInterna
		if err := ac.DB.Where("comunidad_id = ?", comunidadID).Find(&internas).Error; err != nil {
			return nil, err
		}
		resumen := make([]ResumenDenuncia, len(internas))
		for i, d := range internas {
			resumen[i] = ResumenDenuncia{Categoria: d.Categoria, Estado: d.Estado, CreatedAt: d.CreatedAt}
		}
		return resumen, nil
	}

	var denuncias []models.Denuncia
	if err := ac.DB.Find(&denuncias).Error; err != nil {
		return nil, err
	}
	resumen := make([]ResumenDenuncia, len(denuncias))
	for i, d := range denuncias {
		resumen[i] = ResumenDenuncia{Categoria: d.Categoria, Estado: d.Estado, CreatedAt: d.CreatedAt}
	}
	return resumen, nil
}

// ContarPorEstado buckets by the normalized estado. The per-bucket counts
// always sum to the input length.
func ContarPorEstado(denuncias []ResumenDenuncia) map[string]int {
	conteo := make(map[string]int)
	for _, d := range denuncias {
		conteo[models.NormalizarEstado(d.Estado)]++
	}
	return conteo
}

func ContarPorCategoria(denuncias []ResumenDenuncia) map[string]int {
	conteo := make(map[string]int)
	for _, d := range denuncias {
		categoria := d.Categoria
		if categoria == "" {
			categoria = "otro"
		}
		conteo[categoria]++
	}
	return conteo
}

// TendenciaMensual buckets by calendar month, oldest first.
func TendenciaMensual(denuncias []ResumenDenuncia) []ConteoMes {
	porMes := make(map[string]int)
	for _, d := range denuncias {
		porMes[d.CreatedAt.Format("2006-01")]++
	}

	meses := make([]string, 0, len(porMes))
	for mes := range porMes {
		meses = append(meses, mes)
	}
	sort.Strings(meses)

	tendencia := make([]ConteoMes, len(meses))
	for i, mes := range meses {
		tendencia[i] = ConteoMes{Mes: mes, Total: porMes[mes]}
	}
	return tendencia
}

func ConteoPorDiaSemana(denuncias []ResumenDenuncia) map[string]int {
	conteo := make(map[string]int)
	for _, d := range denuncias {
		conteo[diasSemana[int(d.CreatedAt.Weekday())]]++
	}
	return conteo
}

// TasaResolucion is resolved / total × 100; zero for an empty collection.
func TasaResolucion(denuncias []ResumenDenuncia) float64 {
	if len(denuncias) == 0 {
		return 0
	}
	resueltas := 0
	for _, d := range denuncias {
		if models.NormalizarEstado(d.Estado) == models.EstadoResuelta {
			resueltas++
		}
	}
	return float64(resueltas) / float64(len(denuncias)) * 100
}
