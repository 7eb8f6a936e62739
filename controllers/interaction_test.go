package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/controllers"
)

func TestToggleVisitanteAgrega(t *testing.T) {
	set, activo := controllers.ToggleVisitante([]string{"v1"}, "v2")

	assert.True(t, activo)
	assert.ElementsMatch(t, []string{"v1", "v2"}, set)
}

func TestToggleVisitanteQuita(t *testing.T) {
	set, activo := controllers.ToggleVisitante([]string{"v1", "v2", "v3"}, "v2")

	assert.False(t, activo)
	assert.Equal(t, []string{"v1", "v3"}, set)
}

// Toggling twice with the same visitor id restores the original membership.
func TestToggleVisitanteDobleEsIdentidad(t *testing.T) {
	original := []string{"v1", "v2"}

	set, activo := controllers.ToggleVisitante(original, "v9")
	assert.True(t, activo)

	set, activo = controllers.ToggleVisitante(set, "v9")
	assert.False(t, activo)
	assert.ElementsMatch(t, original, set)
}

func TestToggleVisitanteDesdeVacio(t *testing.T) {
	set, activo := controllers.ToggleVisitante(nil, "v1")

	assert.True(t, activo)
	assert.Equal(t, []string{"v1"}, set)
}
