package utils

import (
	"path"
	"strings"

	"github.com/alerta-vecinal/api-go/models"
)

// InferirTipoEvidencia maps a MIME content type to an evidence tipo.
// Anything textual or office-like counts as documento, unknown types as otro.
func InferirTipoEvidencia(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	switch {
	case strings.HasPrefix(ct, "image/"):
		return models.EvidenciaImagen
	case strings.HasPrefix(ct, "video/"):
		return models.EvidenciaVideo
	case strings.HasPrefix(ct, "audio/"):
		return models.EvidenciaAudio
	case ct == "application/pdf",
		strings.HasPrefix(ct, "text/"),
		strings.Contains(ct, "msword"),
		strings.Contains(ct, "wordprocessingml"),
		strings.Contains(ct, "spreadsheetml"),
		strings.Contains(ct, "ms-excel"):
		return models.EvidenciaDocumento
	default:
		return models.EvidenciaOtro
	}
}

// InferirTipoPorURL is the fallback for pasted links where no MIME type is
// available: it only has the URL extension to go on.
func InferirTipoPorURL(url string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(stripQuery(url)), "."))

	switch ext {
	case "jpg", "jpeg", "png", "gif", "webp", "heic", "bmp":
		return models.EvidenciaImagen
	case "mp4", "mov", "avi", "webm", "mkv":
		return models.EvidenciaVideo
	case "mp3", "wav", "ogg", "m4a", "aac":
		return models.EvidenciaAudio
	case "pdf", "txt", "doc", "docx", "xls", "xlsx", "csv":
		return models.EvidenciaDocumento
	default:
		return models.EvidenciaOtro
	}
}

func stripQuery(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		return url[:i]
	}
	return url
}
