package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/models"
	"github.com/alerta-vecinal/api-go/utils"
)

func TestInferirTipoEvidencia(t *testing.T) {
	cases := []struct {
		contentType string
		esperado    string
	}{
		{"image/png", models.EvidenciaImagen},
		{"image/jpeg", models.EvidenciaImagen},
		{"IMAGE/JPEG", models.EvidenciaImagen},
		{"video/mp4", models.EvidenciaVideo},
		{"video/quicktime", models.EvidenciaVideo},
		{"audio/mpeg", models.EvidenciaAudio},
		{"application/pdf", models.EvidenciaDocumento},
		{"text/plain", models.EvidenciaDocumento},
		{"text/plain; charset=utf-8", models.EvidenciaDocumento},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", models.EvidenciaDocumento},
		{"application/msword", models.EvidenciaDocumento},
		{"application/zip", models.EvidenciaOtro},
		{"", models.EvidenciaOtro},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.esperado, utils.InferirTipoEvidencia(tc.contentType), "content type %q", tc.contentType)
	}
}

func TestInferirTipoPorURL(t *testing.T) {
	cases := []struct {
		url      string
		esperado string
	}{
		{"https://example.com/foto.jpg", models.EvidenciaImagen},
		{"https://example.com/foto.PNG", models.EvidenciaImagen},
		{"https://example.com/clip.mp4", models.EvidenciaVideo},
		{"https://example.com/nota.mp3", models.EvidenciaAudio},
		{"https://example.com/acta.pdf", models.EvidenciaDocumento},
		{"https://example.com/acta.pdf?token=abc", models.EvidenciaDocumento},
		{"https://example.com/descarga", models.EvidenciaOtro},
		{"https://example.com/archivo.xyz", models.EvidenciaOtro},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.esperado, utils.InferirTipoPorURL(tc.url), "url %q", tc.url)
	}
}
