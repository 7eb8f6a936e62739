package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles are plain strings checked by the middleware, nothing fancier.
const (
	RolAdmin   = "admin"
	RolMiembro = "miembro"
)

type User struct {
	ID            uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"deleted_at"`
	Username      string            `gorm:"unique;not null" json:"username"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	Email         string            `gorm:"unique;not null" json:"email"`
	Phone         string            `json:"phone"`
	Password      string            `gorm:"not null" json:"-"` // Don't expose password in JSON
	Role          string            `gorm:"not null;default:'miembro';size:20" json:"role"`
	ComunidadID   *uint             `json:"comunidad_id"`
	RefreshTokens []RefreshToken    `json:"-" gorm:"foreignKey:UserID"`
	Internas      []DenunciaInterna `json:"-" gorm:"foreignKey:AutorID"`
}
