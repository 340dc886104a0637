package repositories

import (
	"errors"
	"strings"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"gorm.io/gorm"
)

type IPersonRepository interface {
	Create(person *entities.People) error
	FindByID(id uint) (*entities.People, error)
	FindByEmail(email string) (*entities.People, error)
	FindAdminByEmail(email string) (*entities.People, error)
	EmailEnUso(email string, excludeID uint) (bool, error)
	Update(person *entities.People) error
	Delete(id uint) error
	Search(page, limit int, search, filter string) ([]entities.People, int64, error)
}

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{
		db: db,
	}
}

func (r *PersonRepository) Create(person *entities.People) error {
	if err := r.db.Create(person).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *PersonRepository) FindByID(id uint) (*entities.People, error) {
	var person entities.People
	if err := r.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) FindByEmail(email string) (*entities.People, error) {
	var person entities.People
	if err := r.db.Where("email = ?", email).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

// FindAdminByEmail busca un usuario con flag de administrador; es el único
// lookup que usa la vía de login sin contraseña
func (r *PersonRepository) FindAdminByEmail(email string) (*entities.People, error) {
	var person entities.People
	err := r.db.Where("email = ? AND is_admin = ?", email, true).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

// EmailEnUso verifica unicidad de email; excludeID > 0 excluye a la propia
// persona (para updates)
func (r *PersonRepository) EmailEnUso(email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&entities.People{}).Where("email = ?", email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PersonRepository) Update(person *entities.People) error {
	if err := r.db.Save(person).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *PersonRepository) Delete(id uint) error {
	result := r.db.Delete(&entities.People{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Search retorna usuarios paginados con búsqueda libre sobre nombre/email y
// filtros con nombre (admin, active, premium)
func (r *PersonRepository) Search(page, limit int, search, filter string) ([]entities.People, int64, error) {
	var people []entities.People
	var total int64

	offset := (page - 1) * limit

	query := r.db.Model(&entities.People{})

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(nombre) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	switch filter {
	case "admin":
		query = query.Where("is_admin = ?", true)
	case "active":
		query = query.Where("EXISTS (SELECT 1 FROM respuestas WHERE respuestas.people_id = people.id)")
	case "premium":
		// TODO: filtrar por usuarios premium cuando exista el sistema de suscripciones
	}

	// Contagem separada antes de aplicar paginación
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&people).Error
	if err != nil {
		return nil, 0, err
	}

	return people, total, nil
}
