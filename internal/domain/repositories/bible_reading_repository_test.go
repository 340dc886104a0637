package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
)

func TestBibleReadingRepository_ExisteLecturaEntre(t *testing.T) {
	db := newTestDB(t)
	repo := NewBibleReadingRepository(db)

	person := crearPersona(t, db, "Ana", "ana@test.com")

	hoy := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	manana := hoy.AddDate(0, 0, 1)

	require.NoError(t, db.Create(&entities.BibleReading{
		PeopleID:  person.ID,
		Book:      "Salmos",
		Chapter:   23,
		CreatedAt: hoy.Add(9 * time.Hour),
	}).Error)

	existe, err := repo.ExisteLecturaEntre(person.ID, "Salmos", 23, hoy, manana)
	require.NoError(t, err)
	assert.True(t, existe)

	// Otro capítulo del mismo libro no cuenta
	existe, err = repo.ExisteLecturaEntre(person.ID, "Salmos", 24, hoy, manana)
	require.NoError(t, err)
	assert.False(t, existe)

	// La misma lectura fuera de la ventana tampoco
	existe, err = repo.ExisteLecturaEntre(person.ID, "Salmos", 23, manana, manana.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, existe)

	// Ni la de otra persona
	otro := crearPersona(t, db, "Otro", "otro@test.com")
	existe, err = repo.ExisteLecturaEntre(otro.ID, "Salmos", 23, hoy, manana)
	require.NoError(t, err)
	assert.False(t, existe)
}
