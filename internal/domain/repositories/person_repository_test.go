package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"gorm.io/datatypes"
)

func TestPersonRepository_CreateEmailDuplicado(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	require.NoError(t, repo.Create(&entities.People{Nombre: "Ana", Email: "ana@test.com"}))

	err := repo.Create(&entities.People{Nombre: "Otra Ana", Email: "ana@test.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestPersonRepository_FindAdminByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	crearPersona(t, db, "Común", "comun@test.com")
	admin := &entities.People{Nombre: "Admin", Email: "admin@test.com", IsAdmin: true}
	require.NoError(t, db.Create(admin).Error)

	found, err := repo.FindAdminByEmail("admin@test.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)

	// Un no-admin no aparece por esta vía aunque el email exista
	_, err = repo.FindAdminByEmail("comun@test.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPersonRepository_EmailEnUso(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	person := crearPersona(t, db, "Ana", "ana@test.com")

	enUso, err := repo.EmailEnUso("ana@test.com", 0)
	require.NoError(t, err)
	assert.True(t, enUso)

	// Excluyendo a la propia persona el email queda libre (caso update)
	enUso, err = repo.EmailEnUso("ana@test.com", person.ID)
	require.NoError(t, err)
	assert.False(t, enUso)

	enUso, err = repo.EmailEnUso("libre@test.com", 0)
	require.NoError(t, err)
	assert.False(t, enUso)
}

func TestPersonRepository_DeleteInexistente(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	err := repo.Delete(999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPersonRepository_SearchPorNombreYEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	crearPersona(t, db, "María López", "maria@test.com")
	crearPersona(t, db, "Juan Pérez", "juan@test.com")
	crearPersona(t, db, "Pedro Marín", "pedro@otra.com")

	// Case-insensitive sobre nombre y email
	people, total, err := repo.Search(1, 20, "MAR", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, people, 2)

	people, total, err = repo.Search(1, 20, "juan@", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Juan Pérez", people[0].Nombre)
}

func TestPersonRepository_SearchFiltros(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	admin := &entities.People{Nombre: "Admin", Email: "admin@test.com", IsAdmin: true}
	require.NoError(t, db.Create(admin).Error)
	activa := crearPersona(t, db, "Activa", "activa@test.com")
	crearPersona(t, db, "Pasiva", "pasiva@test.com")

	encuesta := &entities.Encuesta{Pregunta: "¿Oras a diario?"}
	require.NoError(t, db.Create(encuesta).Error)
	require.NoError(t, db.Create(&entities.Respuesta{
		EncuestaID: encuesta.ID,
		PeopleID:   activa.ID,
		Respuestas: datatypes.JSON([]byte(`{"1":"sí"}`)),
	}).Error)

	people, total, err := repo.Search(1, 20, "", "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Admin", people[0].Nombre)

	// "active" = tiene al menos una respuesta de encuesta
	people, total, err = repo.Search(1, 20, "", "active")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Activa", people[0].Nombre)

	// "premium" todavía no filtra nada
	_, total, err = repo.Search(1, 20, "", "premium")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestPersonRepository_SearchPaginacion(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	for i := 0; i < 25; i++ {
		crearPersona(t, db, "Persona", fmt.Sprintf("persona%d@test.com", i))
	}

	people, total, err := repo.Search(1, 20, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, people, 20)

	people, total, err = repo.Search(2, 20, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, people, 5)
}
