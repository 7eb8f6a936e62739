package controllers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/controllers"
	"github.com/alerta-vecinal/api-go/models"
)

func fecha(valor string) time.Time {
	t, _ := time.Parse("2006-01-02", valor)
	return t
}

func coleccionDePrueba() []controllers.ResumenDenuncia {
	return []controllers.ResumenDenuncia{
		{Categoria: "ruido", Estado: "pendiente", CreatedAt: fecha("2026-01-05")},
		{Categoria: "ruido", Estado: "Resuelta", CreatedAt: fecha("2026-01-12")},
		{Categoria: "basura", Estado: "en revisión", CreatedAt: fecha("2026-02-03")},
		{Categoria: "seguridad", Estado: "resolved", CreatedAt: fecha("2026-02-10")},
		{Categoria: "", Estado: "cerrada", CreatedAt: fecha("2026-03-01")},
	}
}

func TestContarPorEstadoSumaTotal(t *testing.T) {
	resumen := coleccionDePrueba()
	conteo := controllers.ContarPorEstado(resumen)

	total := 0
	for _, n := range conteo {
		total += n
	}
	assert.Equal(t, len(resumen), total, "per-estado counts must sum to the total")

	assert.Equal(t, 1, conteo[models.EstadoPendiente])
	assert.Equal(t, 1, conteo[models.EstadoEnRevision])
	assert.Equal(t, 2, conteo[models.EstadoResuelta], "variants normalize into one bucket")
	assert.Equal(t, 1, conteo[models.EstadoCerrada])
}

func TestContarPorCategoriaSumaTotal(t *testing.T) {
	resumen := coleccionDePrueba()
	conteo := controllers.ContarPorCategoria(resumen)

	total := 0
	for _, n := range conteo {
		total += n
	}
	assert.Equal(t, len(resumen), total, "per-categoria counts must sum to the total")

	assert.Equal(t, 2, conteo["ruido"])
	assert.Equal(t, 1, conteo["basura"])
	assert.Equal(t, 1, conteo["otro"], "empty categoria buckets as otro")
}

func TestTendenciaMensual(t *testing.T) {
	tendencia := controllers.TendenciaMensual(coleccionDePrueba())

	assert.Equal(t, []controllers.ConteoMes{
		{Mes: "2026-01", Total: 2},
		{Mes: "2026-02", Total: 2},
		{Mes: "2026-03", Total: 1},
	}, tendencia)
}

func TestConteoPorDiaSemana(t *testing.T) {
	conteo := controllers.ConteoPorDiaSemana([]controllers.ResumenDenuncia{
		{CreatedAt: fecha("2026-01-05")}, // lunes
		{CreatedAt: fecha("2026-01-06")}, // martes
		{CreatedAt: fecha("2026-01-12")}, // lunes
	})

	assert.Equal(t, 2, conteo["lunes"])
	assert.Equal(t, 1, conteo["martes"])
}

func TestTasaResolucion(t *testing.T) {
	assert.Equal(t, 40.0, controllers.TasaResolucion(coleccionDePrueba()))
	assert.Equal(t, 0.0, controllers.TasaResolucion(nil), "empty collection has zero rate")

	todas := []controllers.ResumenDenuncia{
		{Estado: "resuelta"}, {Estado: "resuelta"},
	}
	assert.Equal(t, 100.0, controllers.TasaResolucion(todas))
}
