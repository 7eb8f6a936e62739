package controllers_test

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/controllers"
)

func TestPrimeraRespuesta(t *testing.T) {
	resp := openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "Hay tres denuncias pendientes."}},
		},
	}

	contenido, err := controllers.PrimeraRespuesta(resp)
	assert.NoError(t, err)
	assert.Equal(t, "Hay tres denuncias pendientes.", contenido)
}

func TestPrimeraRespuestaSinOpciones(t *testing.T) {
	_, err := controllers.PrimeraRespuesta(openai.ChatCompletionResponse{})
	assert.Error(t, err)
}
