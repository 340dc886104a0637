package repositories

import (
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"gorm.io/gorm"
)

type IEncuestaRepository interface {
	GetEncuestas() ([]entities.Encuesta, error)
	Create(encuesta *entities.Encuesta) error
	Exists(id uint) (bool, error)
	CreateRespuesta(respuesta *entities.Respuesta) error
}

type EncuestaRepository struct {
	db *gorm.DB
}

func NewEncuestaRepository(db *gorm.DB) *EncuestaRepository {
	return &EncuestaRepository{
		db: db,
	}
}

// GetEncuestas retorna todas las preguntas, la más reciente primero
func (r *EncuestaRepository) GetEncuestas() ([]entities.Encuesta, error) {
	var encuestas []entities.Encuesta
	err := r.db.Order("created_at DESC, id DESC").Find(&encuestas).Error
	return encuestas, err
}

func (r *EncuestaRepository) Create(encuesta *entities.Encuesta) error {
	return r.db.Create(encuesta).Error
}

func (r *EncuestaRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Encuesta{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateRespuesta inserta siempre una fila nueva; envíos repetidos crean
// filas repetidas (sin upsert)
func (r *EncuestaRepository) CreateRespuesta(respuesta *entities.Respuesta) error {
	return r.db.Create(respuesta).Error
}
