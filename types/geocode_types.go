package types

type ReverseGeocodeRequest struct {
	Latitude  float64 `form:"lat" binding:"required"`
	Longitude float64 `form:"lon" binding:"required"`
}

// NominatimReverseResponse mirrors the fields we consume from the public
// reverse-geocoding endpoint (format=jsonv2).
type NominatimReverseResponse struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Address     struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		Suburb      string `json:"suburb"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Postcode    string `json:"postcode"`
		Country     string `json:"country"`
	} `json:"address"`
}

type ReverseGeocodeResponse struct {
	Direccion string  `json:"direccion"`
	Ciudad    string  `json:"ciudad"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
