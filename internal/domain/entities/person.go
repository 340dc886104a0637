package entities

import (
	"time"
)

// People representa un usuario registrado (o administrador) de la aplicación
type People struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nombre    string    `json:"nombre" gorm:"column:nombre"`
	Email     string    `json:"email" gorm:"column:email;uniqueIndex:idx_people_email"`
	Pais      string    `json:"pais" gorm:"column:pais"`
	Whatsapp  string    `json:"whatsapp" gorm:"column:whatsapp"`
	Password  *string   `json:"-" gorm:"column:password"`
	IsAdmin   bool      `json:"is_admin" gorm:"column:is_admin;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relaciones
	Respuestas    []Respuesta    `json:"respuestas,omitempty" gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE"`
	BibleReadings []BibleReading `json:"bible_readings,omitempty" gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE"`
	Oraciones     []OracionUsuario `json:"-" gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE"`
}

func (People) TableName() string {
	return "people"
}

// PublicProfile es la proyección del usuario que se devuelve en las respuestas de auth
type PublicProfile struct {
	ID      uint   `json:"id"`
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Pais    string `json:"pais"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// Public devuelve la proyección pública del usuario
func (p *People) Public() PublicProfile {
	return PublicProfile{
		ID:      p.ID,
		Nombre:  p.Nombre,
		Email:   p.Email,
		Pais:    p.Pais,
		IsAdmin: p.IsAdmin,
	}
}

// TienePassword indica si la cuenta puede usar login con contraseña.
// Cuentas creadas por el admin pueden no tener password.
func (p *People) TienePassword() bool {
	return p.Password != nil && *p.Password != ""
}
