package controllers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/controllers"
	"github.com/alerta-vecinal/api-go/models"
)

func solicitudValida() controllers.CrearDenunciaRequest {
	return controllers.CrearDenunciaRequest{
		Titulo:      "Ruido excesivo en las noches",
		Descripcion: "Fiestas hasta la madrugada todos los fines de semana",
		Categoria:   "ruido",
		Ubicacion:   "Calle Mayor 3",
	}
}

func TestConstruirDenunciaValoresPorDefecto(t *testing.T) {
	ahora := fecha("2026-08-30")

	denuncia, err := controllers.ConstruirDenuncia(solicitudValida(), ahora)
	assert.NoError(t, err)

	assert.Equal(t, models.EstadoPendiente, denuncia.Estado)
	assert.Equal(t, ahora, denuncia.CreatedAt, "server timestamp, not client supplied")
	assert.Equal(t, ahora, denuncia.FechaIncidente, "fecha_incidente defaults to the submission time")
	assert.NotNil(t, denuncia.MeImporta)
	assert.Empty(t, denuncia.MeImporta)
}

func TestConstruirDenunciaFechaIncidente(t *testing.T) {
	req := solicitudValida()
	req.FechaIncidente = "2026-05-01"

	denuncia, err := controllers.ConstruirDenuncia(req, fecha("2026-08-30"))
	assert.NoError(t, err)
	assert.Equal(t, fecha("2026-05-01"), denuncia.FechaIncidente)

	req.FechaIncidente = "01/05/2026"
	_, err = controllers.ConstruirDenuncia(req, time.Now())
	assert.Error(t, err)
}

func TestConstruirDenunciaAnonimaGuardaPlaceholders(t *testing.T) {
	req := solicitudValida()
	req.Denunciante = controllers.DenuncianteInput{
		Nombre:   "Laura",
		Apellido: "Gómez",
		Email:    "laura@example.com",
		Telefono: "600123456",
		Anonimo:  true,
	}

	denuncia, err := controllers.ConstruirDenuncia(req, time.Now())
	assert.NoError(t, err)

	assert.Equal(t, models.NombreAnonimo, denuncia.Denunciante.Nombre)
	assert.Empty(t, denuncia.Denunciante.Apellido)
	assert.Empty(t, denuncia.Denunciante.Email)
	assert.Empty(t, denuncia.Denunciante.Telefono)
	assert.True(t, denuncia.Denunciante.Anonimo)
}

func TestConstruirDenunciaNoAnonimaConservaDatos(t *testing.T) {
	req := solicitudValida()
	req.Denunciante = controllers.DenuncianteInput{
		Nombre:   "Laura",
		Apellido: "Gómez",
		Email:    "laura@example.com",
		Telefono: "600123456",
	}

	denuncia, err := controllers.ConstruirDenuncia(req, time.Now())
	assert.NoError(t, err)

	assert.Equal(t, "Laura", denuncia.Denunciante.Nombre)
	assert.Equal(t, "Gómez", denuncia.Denunciante.Apellido)
	assert.Equal(t, "laura@example.com", denuncia.Denunciante.Email)
	assert.False(t, denuncia.Denunciante.Anonimo)
}

func TestConstruirDenunciaInfiereTipoDeEvidencias(t *testing.T) {
	req := solicitudValida()
	req.Evidencias = []controllers.EvidenciaURLInput{
		{URL: "https://cdn.example.com/foto.jpg"},
		{URL: "https://cdn.example.com/captura.mp4", Tipo: models.EvidenciaVideo},
		{URL: "https://cdn.example.com/descarga"},
	}

	denuncia, err := controllers.ConstruirDenuncia(req, time.Now())
	assert.NoError(t, err)
	assert.Len(t, denuncia.Evidencias, 3)

	assert.Equal(t, models.EvidenciaImagen, denuncia.Evidencias[0].Tipo, "empty tipo is inferred from the URL")
	assert.Equal(t, models.EvidenciaVideo, denuncia.Evidencias[1].Tipo, "explicit tipo wins")
	assert.Equal(t, models.EvidenciaOtro, denuncia.Evidencias[2].Tipo)
}
