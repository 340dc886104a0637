package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
)

func TestAuthUseCase_RegisterYLogin(t *testing.T) {
	db := newTestDB(t)
	uc := NewAuthUseCase(repositories.NewPersonRepository(db))

	person, err := uc.Register(RegisterInput{
		Nombre:   "Ana",
		Email:    "ana@test.com",
		Pais:     "México",
		Whatsapp: "+5210000000",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotZero(t, person.ID)
	// El hash nunca es la contraseña en claro
	require.NotNil(t, person.Password)
	assert.NotEqual(t, "secreto123", *person.Password)

	logueada, err := uc.Authenticate(PasswordCredential{Email: "ana@test.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, person.ID, logueada.ID)
}

func TestAuthUseCase_RegisterEmailDuplicado(t *testing.T) {
	db := newTestDB(t)
	uc := NewAuthUseCase(repositories.NewPersonRepository(db))

	_, err := uc.Register(RegisterInput{Nombre: "Ana", Email: "ana@test.com", Pais: "México", Whatsapp: "+52", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(RegisterInput{Nombre: "Otra", Email: "ana@test.com", Pais: "Perú", Whatsapp: "+51", Password: "otraclave1"})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors["email"], "El email ya está registrado.")
}

func TestAuthUseCase_LoginFallas(t *testing.T) {
	db := newTestDB(t)
	uc := NewAuthUseCase(repositories.NewPersonRepository(db))

	_, err := uc.Register(RegisterInput{Nombre: "Ana", Email: "ana@test.com", Pais: "México", Whatsapp: "+52", Password: "secreto123"})
	require.NoError(t, err)

	// Email inexistente y contraseña incorrecta fallan igual: sin enumeración
	_, err = uc.Authenticate(PasswordCredential{Email: "nadie@test.com", Password: "secreto123"})
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = uc.Authenticate(PasswordCredential{Email: "ana@test.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthUseCase_LoginSinPassword(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPersonRepository(db)
	uc := NewAuthUseCase(repo)

	// Cuenta creada por admin, sin contraseña
	require.NoError(t, repo.Create(&entities.People{Nombre: "Sin Clave", Email: "sin@test.com"}))

	_, err := uc.Authenticate(PasswordCredential{Email: "sin@test.com", Password: "loquesea"})
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthUseCase_AdminLogin(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPersonRepository(db)
	uc := NewAuthUseCase(repo)

	require.NoError(t, repo.Create(&entities.People{Nombre: "Admin", Email: "admin@test.com", IsAdmin: true}))
	require.NoError(t, repo.Create(&entities.People{Nombre: "Común", Email: "comun@test.com"}))

	admin, err := uc.Authenticate(AdminCapabilityCredential{Email: "admin@test.com"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	// Un usuario común no entra por la vía de capacidad admin
	_, err = uc.Authenticate(AdminCapabilityCredential{Email: "comun@test.com"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = uc.Authenticate(AdminCapabilityCredential{Email: "nadie@test.com"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
