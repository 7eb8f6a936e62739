package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/config"
	"github.com/alerta-vecinal/api-go/models"
)

type ChatController struct {
	DB     *gorm.DB
	Client *openai.Client
	Config *config.OpenAIConfig
}

type ChatRequest struct {
	Mensaje string `json:"mensaje" binding:"required,min=1"`
}

func NewChatController(db *gorm.DB) *ChatController {
	cfg := config.GetOpenAIConfig()
	return &ChatController{
		DB:     db,
		Client: cfg.NewClient(),
		Config: cfg,
	}
}

// Chat godoc
// @Summary Ask the assistant about the stored complaints
// @Description Builds a context block from recent complaints and forwards the question to the chat-completions API
// @Tags chat
// @Accept json
// @Produce json
// @Param chat body ChatRequest true "Question"
// @Success 200 {object} StandardResponse
// @Router /chat [post]
func (cc *ChatController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var denuncias []models.Denuncia
	if err := cc.DB.Order("created_at DESC").Limit(50).Find(&denuncias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching denuncias"})
		return
	}

	system := "Eres un asistente del portal vecinal de denuncias. Responde en español, " +
		"de forma breve y basándote únicamente en las denuncias listadas a continuación.\n\n" +
		resumirDenuncias(denuncias)

	resp, err := cc.Client.CreateChatCompletion(c.Request.Context(), openai.ChatCompletionRequest{
		Model: cc.Config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: req.Mensaje},
		},
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Chat service unavailable"})
		return
	}

	respuesta, err := PrimeraRespuesta(resp)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Chat service unavailable"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"respuesta": respuesta},
	})
}

// GenerarInforme godoc
// @Summary Generate a legal-style report for one complaint
// @Tags chat
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} StandardResponse
// @Router /denuncias/{id}/informe [post]
func (cc *ChatController) GenerarInforme(c *gin.Context) {
	denunciaID := c.Param("id")

	var denuncia models.Denuncia
	if err := cc.DB.Preload("Evidencias").Preload("Comentarios").First(&denuncia, denunciaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denuncia not found"})
		return
	}

	prompt := fmt.Sprintf(
		"Redacta un informe formal de la siguiente denuncia ciudadana para su presentación "+
			"ante la administración. Incluye antecedentes, hechos y recomendación.\n\n"+
			"Título: %s\nCategoría: %s\nEstado: %s\nFecha del incidente: %s\nUbicación: %s\n"+
			"Descripción: %s\nEvidencias adjuntas: %d\nComentarios vecinales: %d",
		denuncia.Titulo, denuncia.Categoria, models.NormalizarEstado(denuncia.Estado),
		denuncia.FechaIncidente.Format("2006-01-02"), denuncia.Ubicacion,
		denuncia.Descripcion, len(denuncia.Evidencias), len(denuncia.Comentarios),
	)

	resp, err := cc.Client.CreateChatCompletion(c.Request.Context(), openai.ChatCompletionRequest{
		Model: cc.Config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "Eres un redactor jurídico municipal. Respondes en español formal."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Report service unavailable"})
		return
	}

	informe, err := PrimeraRespuesta(resp)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Report service unavailable"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"denuncia_id": denuncia.ID,
			"informe":     informe,
		},
	})
}

// NarrarAnalytics godoc
// @Summary Narrate the current aggregates in plain language
// @Tags chat
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /analytics/narrativa [get]
func (cc *ChatController) NarrarAnalytics(c *gin.Context) {
	var denuncias []models.Denuncia
	if err := cc.DB.Find(&denuncias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching denuncias"})
		return
	}

	resumen := make([]ResumenDenuncia, len(denuncias))
	for i, d := range denuncias {
		resumen[i] = ResumenDenuncia{Categoria: d.Categoria, Estado: d.Estado, CreatedAt: d.CreatedAt}
	}

	prompt := fmt.Sprintf(
		"Resume en un párrafo, en español y para un panel de administración, estas métricas "+
			"del portal de denuncias:\nTotal: %d\nPor estado: %v\nPor categoría: %v\nTasa de resolución: %.1f%%",
		len(resumen), ContarPorEstado(resumen), ContarPorCategoria(resumen), TasaResolucion(resumen),
	)

	resp, err := cc.Client.CreateChatCompletion(c.Request.Context(), openai.ChatCompletionRequest{
		Model: cc.Config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Narration service unavailable"})
		return
	}

	narrativa, err := PrimeraRespuesta(resp)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Narration service unavailable"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"narrativa": narrativa},
	})
}

// PrimeraRespuesta extracts the assistant content of the first choice. The
// completions API can answer 200 with an empty choice list.
func PrimeraRespuesta(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func resumirDenuncias(denuncias []models.Denuncia) string {
	var b strings.Builder
	b.WriteString("Denuncias recientes:\n")
	for _, d := range denuncias {
		fmt.Fprintf(&b, "- [%s/%s] %s (%s): %s\n",
			d.Categoria, models.NormalizarEstado(d.Estado), d.Titulo,
			d.CreatedAt.Format("2006-01-02"), recortar(d.Descripcion, 160))
	}
	return b.String()
}

func recortar(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
