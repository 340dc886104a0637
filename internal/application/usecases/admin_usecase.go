package usecases

import (
	"errors"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
)

// Tamaño de página fijo del listado de usuarios del panel
const UsersPerPage = 20

// AdminUserInput son los datos de alta/edición de una persona desde el panel
type AdminUserInput struct {
	Nombre   string
	Email    string
	Pais     string
	Whatsapp string
	IsAdmin  bool
}

// AdminUseCase implementa el CRUD de personas del panel de administración
type AdminUseCase struct {
	personRepo repositories.IPersonRepository
}

func NewAdminUseCase(personRepo repositories.IPersonRepository) *AdminUseCase {
	return &AdminUseCase{
		personRepo: personRepo,
	}
}

// ListUsers retorna usuarios paginados (20 por página), orden de creación
// descendente, con búsqueda libre y filtros con nombre
func (u *AdminUseCase) ListUsers(page int, search, filter string) ([]entities.People, int64, error) {
	if page < 1 {
		page = 1
	}
	return u.personRepo.Search(page, UsersPerPage, search, filter)
}

// CreateUser crea una persona desde el panel (puede quedar sin password; esa
// cuenta no podrá usar login con contraseña)
func (u *AdminUseCase) CreateUser(input AdminUserInput) (*entities.People, error) {
	enUso, err := u.personRepo.EmailEnUso(input.Email, 0)
	if err != nil {
		return nil, err
	}
	if enUso {
		return nil, apperr.NewValidationError("email", "El email ya está registrado.")
	}

	person := &entities.People{
		Nombre:   input.Nombre,
		Email:    input.Email,
		Pais:     input.Pais,
		Whatsapp: input.Whatsapp,
		IsAdmin:  input.IsAdmin,
	}
	if err := u.personRepo.Create(person); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.NewValidationError("email", "El email ya está registrado.")
		}
		return nil, err
	}
	return person, nil
}

// UpdateUser actualiza una persona; la unicidad del email excluye a la propia
// persona
func (u *AdminUseCase) UpdateUser(id uint, input AdminUserInput) (*entities.People, error) {
	person, err := u.personRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	enUso, err := u.personRepo.EmailEnUso(input.Email, id)
	if err != nil {
		return nil, err
	}
	if enUso {
		return nil, apperr.NewValidationError("email", "El email ya está registrado.")
	}

	person.Nombre = input.Nombre
	person.Email = input.Email
	person.Pais = input.Pais
	person.Whatsapp = input.Whatsapp
	person.IsAdmin = input.IsAdmin

	if err := u.personRepo.Update(person); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.NewValidationError("email", "El email ya está registrado.")
		}
		return nil, err
	}
	return person, nil
}

// DeleteUser elimina una persona; las lecturas, respuestas y progresos
// asociados caen en cascada por las FKs
func (u *AdminUseCase) DeleteUser(id uint) error {
	return u.personRepo.Delete(id)
}
