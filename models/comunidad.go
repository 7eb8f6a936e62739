package models

import (
	"time"

	"gorm.io/gorm"
)

type Comunidad struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Nombre       string         `gorm:"not null;size:150" json:"nombre"`
	Direccion    string         `gorm:"type:text" json:"direccion"`
	CodigoAcceso string         `gorm:"uniqueIndex;size:20" json:"codigo_acceso"`

	Miembros []User            `json:"miembros" gorm:"foreignKey:ComunidadID"`
	Internas []DenunciaInterna `json:"internas" gorm:"foreignKey:ComunidadID"`
}

func (Comunidad) TableName() string {
	return "comunidades"
}
