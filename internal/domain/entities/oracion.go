package entities

import (
	"time"
)

// Oracion es una entrada del catálogo de oraciones guiadas
type Oracion struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Titulo         string    `json:"titulo" gorm:"column:titulo"`
	Categoria      string    `json:"categoria" gorm:"column:categoria;index:idx_oraciones_categoria"`
	Descripcion    *string   `json:"descripcion" gorm:"column:descripcion"`
	ContenidoTexto string    `json:"contenido_texto" gorm:"column:contenido_texto;type:text"`
	AudioURL       *string   `json:"audio_url" gorm:"column:audio_url"`
	Duracion       *int      `json:"duracion" gorm:"column:duracion"`
	EsPremium      bool      `json:"es_premium" gorm:"column:es_premium;default:false;index:idx_oraciones_es_premium"`
	Orden          int       `json:"orden" gorm:"column:orden;default:0;index:idx_oraciones_orden"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Oracion) TableName() string {
	return "oraciones"
}

// OracionUsuario es el registro de progreso de un usuario sobre una oración.
// Única por (people_id, oracion_id); la restricción la garantiza el índice,
// no la lógica de aplicación.
type OracionUsuario struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	PeopleID     uint       `json:"people_id" gorm:"column:people_id;uniqueIndex:idx_oracion_usuario_unico"`
	OracionID    uint       `json:"oracion_id" gorm:"column:oracion_id;uniqueIndex:idx_oracion_usuario_unico"`
	CompletadaAt *time.Time `json:"completada_at" gorm:"column:completada_at;index:idx_oracion_usuario_completada_at"`
	Progreso     int        `json:"progreso" gorm:"column:progreso;default:0"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (OracionUsuario) TableName() string {
	return "oracion_usuario"
}

// ProgresoUsuario es la anotación de progreso que acompaña a cada oración
// en las respuestas del catálogo
type ProgresoUsuario struct {
	Progreso     int        `json:"progreso"`
	CompletadaAt *time.Time `json:"completada_at"`
}

// OracionConProgreso es una oración del catálogo anotada con el progreso del
// usuario que consulta (null si nunca la inició)
type OracionConProgreso struct {
	Oracion
	UserProgress *ProgresoUsuario `json:"user_progress"`
}
