package repositories

import (
	"time"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"gorm.io/gorm"
)

type IDashboardRepository interface {
	CountPeople() (int64, error)
	CountPeopleSince(t time.Time) (int64, error)
	CountPeopleBetween(desde, hasta time.Time) (int64, error)
	CountDistinctResponders() (int64, error)
	CountBibleReaders() (int64, error)
	CountBibleReadings() (int64, error)
	CountBibleReadingsSince(t time.Time) (int64, error)
	TopBooks(limit int) ([]entities.TopBook, error)
}

// DashboardRepository agrupa las consultas de solo lectura del panel admin;
// lee las mismas tablas que mutan los paths de escritura, sin aislamiento
// extra más allá del que da el motor
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{
		db: db,
	}
}

func (r *DashboardRepository) CountPeople() (int64, error) {
	var count int64
	err := r.db.Model(&entities.People{}).Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountPeopleSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&entities.People{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountPeopleBetween(desde, hasta time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&entities.People{}).
		Where("created_at >= ? AND created_at < ?", desde, hasta).
		Count(&count).Error
	return count, err
}

// CountDistinctResponders cuenta personas con al menos una respuesta de
// encuesta (personas, no respuestas)
func (r *DashboardRepository) CountDistinctResponders() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Respuesta{}).Distinct("people_id").Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountBibleReaders() (int64, error) {
	var count int64
	err := r.db.Model(&entities.BibleReading{}).Distinct("people_id").Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountBibleReadings() (int64, error) {
	var count int64
	err := r.db.Model(&entities.BibleReading{}).Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountBibleReadingsSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&entities.BibleReading{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

// TopBooks retorna los pares (libro, total) más leídos en orden descendente
func (r *DashboardRepository) TopBooks(limit int) ([]entities.TopBook, error) {
	var topBooks []entities.TopBook
	err := r.db.Model(&entities.BibleReading{}).
		Select("book, COUNT(*) as total").
		Group("book").
		Order("total DESC").
		Limit(limit).
		Scan(&topBooks).Error
	return topBooks, err
}
