package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Encuesta representa una pregunta de encuesta de texto libre
type Encuesta struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Pregunta  string    `json:"pregunta" gorm:"column:pregunta"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// La tabla original es singular
func (Encuesta) TableName() string {
	return "encuesta"
}

// Respuesta es el documento de respuestas de un usuario a una encuesta.
// Respuestas es un documento JSON clave→valor (clave = id de pregunta,
// valor = string o lista de strings); se guarda opaco.
type Respuesta struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	EncuestaID uint           `json:"encuesta_id" gorm:"column:encuesta_id;index"`
	PeopleID   uint           `json:"people_id" gorm:"column:people_id;index"`
	Respuestas datatypes.JSON `json:"respuestas" gorm:"column:respuestas"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	Encuesta Encuesta `json:"encuesta,omitempty" gorm:"foreignKey:EncuestaID"`
}

func (Respuesta) TableName() string {
	return "respuestas"
}
