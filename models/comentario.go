package models

import (
	"time"
)

// Comentario is append-only from the portal; no edits, no deletes.
type Comentario struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DenunciaID uint      `gorm:"not null;index" json:"denuncia_id"`
	Autor      string    `gorm:"size:100" json:"autor"`
	Contenido  string    `gorm:"not null;type:text" json:"contenido"`
	Anonimo    bool      `gorm:"default:false" json:"anonimo"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
