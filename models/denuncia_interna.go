package models

import (
	"time"

	"gorm.io/gorm"
)

// DenunciaInterna is a complaint scoped to one community, filed by an
// authenticated member. It shares the estado lifecycle with Denuncia.
type DenunciaInterna struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	ComunidadID uint           `gorm:"not null;index" json:"comunidad_id"`
	Comunidad   Comunidad      `json:"-" gorm:"foreignKey:ComunidadID"`
	AutorID     uint           `gorm:"not null" json:"autor_id"`
	Autor       User           `json:"autor" gorm:"foreignKey:AutorID"`
	Titulo      string         `gorm:"not null;size:200" json:"titulo"`
	Descripcion string         `gorm:"not null;type:text" json:"descripcion"`
	Categoria   string         `gorm:"not null;size:50" json:"categoria"`
	Estado      string         `gorm:"not null;default:'pendiente';size:50" json:"estado"`
}

func (DenunciaInterna) TableName() string {
	return "denuncias_internas"
}
