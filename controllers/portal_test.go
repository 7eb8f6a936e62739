package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/controllers"
	"github.com/alerta-vecinal/api-go/models"
)

func denunciasDePrueba() []models.Denuncia {
	return []models.Denuncia{
		{Titulo: "Ruido excesivo en las noches", Descripcion: "Fiestas hasta la madrugada todos los fines de semana", Categoria: "ruido", Ubicacion: "Calle Mayor 3"},
		{Titulo: "Contenedores desbordados", Descripcion: "La basura lleva una semana sin recogerse", Categoria: "basura", Ubicacion: "Plaza Norte"},
		{Titulo: "Farola rota", Descripcion: "La farola de la esquina lleva un mes apagada", Categoria: "infraestructura", Ubicacion: "Avenida Sur"},
	}
}

func TestFiltrarDenunciasPorCategoria(t *testing.T) {
	denuncias := denunciasDePrueba()

	filtradas := controllers.FiltrarDenuncias(denuncias, "", "ruido")
	assert.Len(t, filtradas, 1)
	assert.Equal(t, "ruido", filtradas[0].Categoria)

	// "todas" means unfiltered.
	assert.Len(t, controllers.FiltrarDenuncias(denuncias, "", "todas"), len(denuncias))
	assert.Len(t, controllers.FiltrarDenuncias(denuncias, "", ""), len(denuncias))

	assert.Empty(t, controllers.FiltrarDenuncias(denuncias, "", "emergencia"))
}

func TestFiltrarDenunciasPorTexto(t *testing.T) {
	denuncias := denunciasDePrueba()

	assert.Len(t, controllers.FiltrarDenuncias(denuncias, "farola", ""), 1)
	assert.Len(t, controllers.FiltrarDenuncias(denuncias, "plaza", ""), 1, "matches ubicacion too")
	assert.Len(t, controllers.FiltrarDenuncias(denuncias, "LLEVA", ""), 2, "case-insensitive over descripcion")
	assert.Empty(t, controllers.FiltrarDenuncias(denuncias, "inexistente", ""))
}

func TestFiltrarDenunciasTextoYCategoria(t *testing.T) {
	denuncias := denunciasDePrueba()

	filtradas := controllers.FiltrarDenuncias(denuncias, "lleva", "basura")
	assert.Len(t, filtradas, 1)
	assert.Equal(t, "Contenedores desbordados", filtradas[0].Titulo)
}

func TestListarDenunciasRechazaCategoriaDesconocida(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pc := &controllers.PortalController{}
	r := gin.New()
	r.GET("/api/portal/denuncias", pc.ListarDenuncias)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/portal/denuncias?categoria=fiestas", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
