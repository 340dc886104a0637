package repositories

import (
	"time"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"gorm.io/gorm"
)

type IBibleReadingRepository interface {
	ExisteLecturaEntre(peopleID uint, book string, chapter int, desde, hasta time.Time) (bool, error)
	Create(reading *entities.BibleReading) error
}

type BibleReadingRepository struct {
	db *gorm.DB
}

func NewBibleReadingRepository(db *gorm.DB) *BibleReadingRepository {
	return &BibleReadingRepository{
		db: db,
	}
}

// ExisteLecturaEntre verifica si ya hay un registro de (persona, libro,
// capítulo) dentro de la ventana dada; se usa para deduplicar por día
func (r *BibleReadingRepository) ExisteLecturaEntre(peopleID uint, book string, chapter int, desde, hasta time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&entities.BibleReading{}).
		Where("people_id = ? AND book = ? AND chapter = ?", peopleID, book, chapter).
		Where("created_at >= ? AND created_at < ?", desde, hasta).
		Count(&count).Error
	return count > 0, err
}

func (r *BibleReadingRepository) Create(reading *entities.BibleReading) error {
	return r.db.Create(reading).Error
}
