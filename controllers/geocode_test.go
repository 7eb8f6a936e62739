package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/controllers"
)

func TestReverseGeocode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"place_id":1,"display_name":"Calle Mayor 3, Madrid, España","address":{"road":"Calle Mayor","city":"Madrid","country":"España"}}`))
	}))
	defer upstream.Close()

	gc := &controllers.GeocodeController{
		HTTPClient: &http.Client{Timeout: time.Second},
		BaseURL:    upstream.URL,
	}

	r := gin.New()
	r.GET("/api/geocode/reverse", gc.ReverseGeocode)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/geocode/reverse?lat=40.4168&lon=-3.7038", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Direccion string `json:"direccion"`
			Ciudad    string `json:"ciudad"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Calle Mayor 3, Madrid, España", body.Data.Direccion)
	assert.Equal(t, "Madrid", body.Data.Ciudad)
}

func TestReverseGeocodeRequiresCoordinates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gc := controllers.NewGeocodeController()

	r := gin.New()
	r.GET("/api/geocode/reverse", gc.ReverseGeocode)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/geocode/reverse", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
