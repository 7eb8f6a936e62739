package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/models"
)

func TestNormalizarEstado(t *testing.T) {
	cases := []struct {
		entrada  string
		esperado string
	}{
		{"pendiente", models.EstadoPendiente},
		{"Pendiente", models.EstadoPendiente},
		{" PENDIENTE ", models.EstadoPendiente},
		{"pending", models.EstadoPendiente},
		{"en_revision", models.EstadoEnRevision},
		{"en revisión", models.EstadoEnRevision},
		{"En-Revision", models.EstadoEnRevision},
		{"in_review", models.EstadoEnRevision},
		{"resuelta", models.EstadoResuelta},
		{"Resuelto", models.EstadoResuelta},
		{"resolved", models.EstadoResuelta},
		{"cerrada", models.EstadoCerrada},
		{"closed", models.EstadoCerrada},
		{"archivada", models.EstadoCerrada},
		// Free-form legacy values fall back to pendiente.
		{"quien sabe", models.EstadoPendiente},
		{"", models.EstadoPendiente},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.esperado, models.NormalizarEstado(tc.entrada), "estado %q", tc.entrada)
	}
}

func TestAnonimizarDenunciante(t *testing.T) {
	d := models.Denunciante{
		Nombre:   "Juana",
		Apellido: "Pérez",
		Email:    "juana@example.com",
		Telefono: "+34600000000",
		Anonimo:  true,
	}

	d.Anonimizar()

	assert.Equal(t, models.NombreAnonimo, d.Nombre)
	assert.Empty(t, d.Apellido)
	assert.Empty(t, d.Email)
	assert.Empty(t, d.Telefono)
	assert.True(t, d.Anonimo)
}

func TestCategoriaValida(t *testing.T) {
	for _, categoria := range models.Categorias {
		assert.True(t, models.CategoriaValida(categoria), "categoria %q", categoria)
	}

	assert.False(t, models.CategoriaValida("inexistente"))
	assert.False(t, models.CategoriaValida(""))
	assert.False(t, models.CategoriaValida("Ruido"))
}
