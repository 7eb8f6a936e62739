package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Estados canónicos de una denuncia. El campo es texto libre en la base
// (registros legados pueden traer variantes), se normaliza al leer.
const (
	EstadoPendiente  = "pendiente"
	EstadoEnRevision = "en_revision"
	EstadoResuelta   = "resuelta"
	EstadoCerrada    = "cerrada"
)

// Categorías de denuncia aceptadas por el portal.
var Categorias = []string{
	"ruido", "seguridad", "basura", "trafico", "infraestructura",
	"servicios", "vandalismo", "animales", "convivencia", "emergencia", "otro",
}

// Denunciante is embedded on the complaint row. When Anonimo is set the
// identifying fields hold the fixed placeholders, never the typed values.
type Denunciante struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Anonimo  bool   `json:"anonimo" gorm:"default:false"`
}

const NombreAnonimo = "Anónimo"

// Anonimizar clears the identifying fields and substitutes the placeholders.
func (d *Denunciante) Anonimizar() {
	d.Nombre = NombreAnonimo
	d.Apellido = ""
	d.Email = ""
	d.Telefono = ""
	d.Anonimo = true
}

type Denuncia struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Titulo         string         `json:"titulo" gorm:"not null;type:varchar(200)"`
	Descripcion    string         `json:"descripcion" gorm:"not null;type:text"`
	Categoria      string         `json:"categoria" gorm:"not null;type:varchar(50)"`
	Estado         string         `json:"estado" gorm:"not null;default:'pendiente';type:varchar(50)"`
	FechaIncidente time.Time      `json:"fecha_incidente"`
	Ubicacion      string         `json:"ubicacion" gorm:"type:text"`
	Latitud        float64        `json:"latitud" gorm:"type:decimal(10,8)"`
	Longitud       float64        `json:"longitud" gorm:"type:decimal(11,8)"`
	Denunciante    Denunciante    `json:"denunciante" gorm:"embedded;embeddedPrefix:denunciante_"`
	Evidencias     []Evidencia    `json:"evidencias" gorm:"foreignKey:DenunciaID"`
	Comentarios    []Comentario   `json:"comentarios" gorm:"foreignKey:DenunciaID"`
	MeImporta      pq.StringArray `json:"me_importa" gorm:"type:text[]"` // visitor ids, toggled membership
	Compartidos    int            `json:"compartidos" gorm:"default:0"`
}

func (Denuncia) TableName() string {
	return "denuncias_publicas"
}

// NormalizarEstado folds case, spacing and accented legacy variants into the
// canonical estado values. Unknown values fall back to "pendiente" so the
// portal dropdowns always have a bucket to show.
func NormalizarEstado(estado string) string {
	s := strings.ToLower(strings.TrimSpace(estado))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u").Replace(s)

	switch s {
	case EstadoPendiente, "pending", "nueva", "abierta":
		return EstadoPendiente
	case EstadoEnRevision, "in_review", "revision", "en_proceso", "proceso":
		return EstadoEnRevision
	case EstadoResuelta, "resolved", "resuelto", "solucionada":
		return EstadoResuelta
	case EstadoCerrada, "closed", "cerrado", "archivada":
		return EstadoCerrada
	default:
		return EstadoPendiente
	}
}

// CategoriaValida reports whether the value belongs to the fixed enumeration.
func CategoriaValida(categoria string) bool {
	for _, c := range Categorias {
		if c == categoria {
			return true
		}
	}
	return false
}
