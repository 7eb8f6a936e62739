package models

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de evidencia, inferidos del MIME type o la extensión de la URL.
const (
	EvidenciaImagen    = "imagen"
	EvidenciaVideo     = "video"
	EvidenciaAudio     = "audio"
	EvidenciaDocumento = "documento"
	EvidenciaOtro      = "otro"
)

// Evidencia references an uploaded object or an externally pasted URL.
type Evidencia struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	DenunciaID uint           `gorm:"not null;index" json:"denuncia_id"`
	Tipo       string         `gorm:"size:50;not null" json:"tipo"`
	URL        string         `gorm:"not null" json:"url"`
	Nombre     string         `gorm:"size:255" json:"nombre"`
	Extension  string         `gorm:"size:20" json:"extension"`
	Subida     bool           `gorm:"default:false" json:"subida"` // true when the bytes live in our bucket
}
