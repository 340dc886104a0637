package usecases

import (
	"errors"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Credential es el tipo suma de las credenciales aceptadas. La variante de
// capacidad admin (solo email, sin contraseña) queda separada a propósito:
// es una vía de confianza más estrecha y debe poder auditarse o retirarse de
// forma independiente.
type Credential interface {
	credential()
}

// PasswordCredential autentica con email + contraseña
type PasswordCredential struct {
	Email    string
	Password string
}

// AdminCapabilityCredential autentica administradores solo con email
type AdminCapabilityCredential struct {
	Email string
}

func (PasswordCredential) credential()        {}
func (AdminCapabilityCredential) credential() {}

// RegisterInput son los datos de registro de una persona
type RegisterInput struct {
	Nombre   string
	Email    string
	Pais     string
	Whatsapp string
	Password string
}

// AuthUseCase implementa registro, login y proyección del usuario autenticado
type AuthUseCase struct {
	personRepo repositories.IPersonRepository
}

func NewAuthUseCase(personRepo repositories.IPersonRepository) *AuthUseCase {
	return &AuthUseCase{
		personRepo: personRepo,
	}
}

// Register crea la persona y la deja lista para auto-autenticarse.
// Falla con error de validación a nivel de campo si el email ya está en uso.
func (u *AuthUseCase) Register(input RegisterInput) (*entities.People, error) {
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
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		person.Password = &hashed
	}

	if err := u.personRepo.Create(person); err != nil {
		// Carrera entre el chequeo de unicidad y el insert: la violación del
		// índice único se traduce al mismo error de campo
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.NewValidationError("email", "El email ya está registrado.")
		}
		return nil, err
	}

	return person, nil
}

// Authenticate verifica una credencial y retorna la persona autenticada
func (u *AuthUseCase) Authenticate(cred Credential) (*entities.People, error) {
	switch c := cred.(type) {
	case PasswordCredential:
		return u.authenticatePassword(c)
	case AdminCapabilityCredential:
		return u.authenticateAdmin(c)
	default:
		return nil, apperr.ErrInvalidCredentials
	}
}

// authenticatePassword nunca distingue "email inexistente" de "contraseña
// incorrecta" para no permitir enumeración de cuentas. Personas sin password
// (creadas por admin) no pueden entrar por esta vía.
func (u *AuthUseCase) authenticatePassword(cred PasswordCredential) (*entities.People, error) {
	person, err := u.personRepo.FindByEmail(cred.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if !person.TienePassword() {
		return nil, apperr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*person.Password), []byte(cred.Password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return person, nil
}

func (u *AuthUseCase) authenticateAdmin(cred AdminCapabilityCredential) (*entities.People, error) {
	person, err := u.personRepo.FindAdminByEmail(cred.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrForbidden
		}
		return nil, err
	}
	return person, nil
}

// Me retorna la persona autenticada por id
func (u *AuthUseCase) Me(id uint) (*entities.People, error) {
	return u.personRepo.FindByID(id)
}
