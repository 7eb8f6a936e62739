package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/utils"
)

func TestGenerarCodigoAcceso(t *testing.T) {
	codigo := utils.GenerarCodigoAcceso()

	assert.Len(t, codigo, 8)
	assert.Equal(t, strings.ToUpper(codigo), codigo)

	// Codes are effectively unique across calls.
	otro := utils.GenerarCodigoAcceso()
	assert.NotEqual(t, codigo, otro)
}

func TestContieneTexto(t *testing.T) {
	assert.True(t, utils.ContieneTexto("", "cualquier", "cosa"), "empty needle matches everything")
	assert.True(t, utils.ContieneTexto("ruido", "Ruido excesivo en las noches", ""))
	assert.True(t, utils.ContieneTexto("RUIDO", "hay mucho ruido", ""))
	assert.True(t, utils.ContieneTexto("plaza", "titulo", "cerca de la Plaza Mayor"))
	assert.False(t, utils.ContieneTexto("basura", "Ruido excesivo", "calle falsa"))
}
