package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alerta-vecinal/api-go/types"
)

// GeocodeController proxies the public reverse-geocoding endpoint so the
// intake form can prefill the location field from browser coordinates.
type GeocodeController struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewGeocodeController() *GeocodeController {
	baseURL := os.Getenv("GEOCODE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	return &GeocodeController{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// ReverseGeocode godoc
// @Summary Resolve coordinates to a display address
// @Tags geocode
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} types.ReverseGeocodeResponse
// @Router /geocode/reverse [get]
func (gc *GeocodeController) ReverseGeocode(c *gin.Context) {
	var req types.ReverseGeocodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%f&lon=%f", gc.BaseURL, req.Latitude, req.Longitude)

	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build geocode request"})
		return
	}
	// Nominatim's usage policy requires an identifying agent.
	httpReq.Header.Set("User-Agent", "alerta-vecinal/1.0")

	resp, err := gc.HTTPClient.Do(httpReq)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Geocode service unavailable"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Geocode service returned an error"})
		return
	}

	var nominatim types.NominatimReverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&nominatim); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid geocode response"})
		return
	}

	ciudad := nominatim.Address.City
	if ciudad == "" {
		ciudad = nominatim.Address.Town
	}
	if ciudad == "" {
		ciudad = nominatim.Address.Village
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: types.ReverseGeocodeResponse{
			Direccion: nominatim.DisplayName,
			Ciudad:    ciudad,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
	})
}
