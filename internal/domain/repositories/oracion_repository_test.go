package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
)

func TestOracionRepository_ListarFiltros(t *testing.T) {
	db := newTestDB(t)
	repo := NewOracionRepository(db)

	crearOracion(t, db, "Padre Nuestro", "Tradicional", false, 1)
	crearOracion(t, db, "Oración de la Noche", "Noche", false, 4)
	crearOracion(t, db, "Oración por Sanación", "Sanación", true, 6)

	todas, err := repo.Listar("", nil)
	require.NoError(t, err)
	require.Len(t, todas, 3)
	// Orden por campo orden asc
	assert.Equal(t, "Padre Nuestro", todas[0].Titulo)
	assert.Equal(t, "Oración por Sanación", todas[2].Titulo)

	premium := true
	soloPremium, err := repo.Listar("", &premium)
	require.NoError(t, err)
	require.Len(t, soloPremium, 1)
	assert.Equal(t, "Oración por Sanación", soloPremium[0].Titulo)

	porCategoria, err := repo.Listar("Noche", nil)
	require.NoError(t, err)
	require.Len(t, porCategoria, 1)
	assert.Equal(t, "Oración de la Noche", porCategoria[0].Titulo)
}

func TestOracionRepository_FindByIDInexistente(t *testing.T) {
	db := newTestDB(t)
	repo := NewOracionRepository(db)

	_, err := repo.FindByID(42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOracionRepository_Categorias(t *testing.T) {
	db := newTestDB(t)
	repo := NewOracionRepository(db)

	crearOracion(t, db, "Uno", "Noche", false, 1)
	crearOracion(t, db, "Dos", "Mañana", false, 2)
	crearOracion(t, db, "Tres", "Noche", true, 3)

	categorias, err := repo.Categorias()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mañana", "Noche"}, categorias)
}

func TestOracionRepository_CompletarCreaYResella(t *testing.T) {
	db := newTestDB(t)
	repo := NewOracionRepository(db)

	person := crearPersona(t, db, "Ana", "ana@test.com")
	oracion := crearOracion(t, db, "Padre Nuestro", "Tradicional", false, 1)

	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	registro, err := repo.Completar(person.ID, oracion.ID, t1)
	require.NoError(t, err)
	assert.Equal(t, 100, registro.Progreso)
	require.NotNil(t, registro.CompletadaAt)
	assert.True(t, registro.CompletadaAt.Equal(t1))

	// Completar otra vez mueve el timestamp: el estado es idempotente, el
	// sello no
	t2 := t1.Add(48 * time.Hour)
	registro, err = repo.Completar(person.ID, oracion.ID, t2)
	require.NoError(t, err)
	assert.Equal(t, 100, registro.Progreso)
	require.NotNil(t, registro.CompletadaAt)
	assert.True(t, registro.CompletadaAt.Equal(t2))

	// Sigue habiendo una sola fila
	var count int64
	require.NoError(t, db.Table("oracion_usuario").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOracionRepository_ActualizarProgresoSobrescribe(t *testing.T) {
	db := newTestDB(t)
	repo := NewOracionRepository(db)

	person := crearPersona(t, db, "Ana", "ana@test.com")
	oracion := crearOracion(t, db, "Padre Nuestro", "Tradicional", false, 1)

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	registro, err := repo.ActualizarProgreso(person.ID, oracion.ID, 60, now)
	require.NoError(t, err)
	assert.Equal(t, 60, registro.Progreso)
	assert.Nil(t, registro.CompletadaAt)

	// No es monótono: bajar el progreso también sobrescribe
	registro, err = repo.ActualizarProgreso(person.ID, oracion.ID, 30, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 30, registro.Progreso)
	assert.Nil(t, registro.CompletadaAt)
}

func TestOracionRepository_ActualizarProgresoPrimerCruceSella(t *testing.T) {
	db := newTestDB(t)
	repo := NewOracionRepository(db)

	person := crearPersona(t, db, "Ana", "ana@test.com")
	oracion := crearOracion(t, db, "Padre Nuestro", "Tradicional", false, 1)

	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	registro, err := repo.ActualizarProgreso(person.ID, oracion.ID, 100, t1)
	require.NoError(t, err)
	require.NotNil(t, registro.CompletadaAt)
	assert.True(t, registro.CompletadaAt.Equal(t1))

	// Volver a 100 más tarde no mueve el sello del primer cruce
	t2 := t1.Add(time.Hour)
	registro, err = repo.ActualizarProgreso(person.ID, oracion.ID, 100, t2)
	require.NoError(t, err)
	require.NotNil(t, registro.CompletadaAt)
	assert.True(t, registro.CompletadaAt.Equal(t1))

	// Bajar el progreso tampoco limpia el sello
	registro, err = repo.ActualizarProgreso(person.ID, oracion.ID, 20, t2)
	require.NoError(t, err)
	assert.Equal(t, 20, registro.Progreso)
	require.NotNil(t, registro.CompletadaAt)
	assert.True(t, registro.CompletadaAt.Equal(t1))
}

func TestOracionRepository_ProgresosDe(t *testing.T) {
	db := newTestDB(t)
	repo := NewOracionRepository(db)

	ana := crearPersona(t, db, "Ana", "ana@test.com")
	otro := crearPersona(t, db, "Otro", "otro@test.com")
	o1 := crearOracion(t, db, "Uno", "Noche", false, 1)
	o2 := crearOracion(t, db, "Dos", "Mañana", false, 2)

	now := time.Now()
	_, err := repo.ActualizarProgreso(ana.ID, o1.ID, 50, now)
	require.NoError(t, err)
	_, err = repo.ActualizarProgreso(otro.ID, o2.ID, 80, now)
	require.NoError(t, err)

	progresos, err := repo.ProgresosDe(ana.ID)
	require.NoError(t, err)
	require.Len(t, progresos, 1)
	assert.Equal(t, 50, progresos[o1.ID].Progreso)

	// Sin registros retorna nil sin error
	sinIniciar, err := repo.ProgresoDe(ana.ID, o2.ID)
	require.NoError(t, err)
	assert.Nil(t, sinIniciar)
}
