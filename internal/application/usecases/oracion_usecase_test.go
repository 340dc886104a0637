package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
)

func TestOracionUseCase_ListarAnotaProgreso(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewOracionRepository(db)
	uc := NewOracionUseCase(repo)

	person := entities.People{Nombre: "Ana", Email: "ana@test.com"}
	require.NoError(t, db.Create(&person).Error)

	gratuita := entities.Oracion{Titulo: "Padre Nuestro", Categoria: "Tradicional", ContenidoTexto: "...", Orden: 1}
	premium := entities.Oracion{Titulo: "Por Sanación", Categoria: "Sanación", ContenidoTexto: "...", EsPremium: true, Orden: 6}
	require.NoError(t, db.Create(&gratuita).Error)
	require.NoError(t, db.Create(&premium).Error)

	_, err := uc.ActualizarProgreso(person.ID, gratuita.ID, 40)
	require.NoError(t, err)

	oraciones, err := uc.Listar(person.ID, "", "")
	require.NoError(t, err)
	require.Len(t, oraciones, 2)
	require.NotNil(t, oraciones[0].UserProgress)
	assert.Equal(t, 40, oraciones[0].UserProgress.Progreso)
	assert.Nil(t, oraciones[1].UserProgress)

	soloPremium, err := uc.Listar(person.ID, "", "premium")
	require.NoError(t, err)
	require.Len(t, soloPremium, 1)
	assert.Equal(t, "Por Sanación", soloPremium[0].Titulo)
}

func TestOracionUseCase_ActualizarProgresoFueraDeRango(t *testing.T) {
	db := newTestDB(t)
	uc := NewOracionUseCase(repositories.NewOracionRepository(db))

	_, err := uc.ActualizarProgreso(1, 1, 101)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors["progreso"], "El progreso debe estar entre 0 y 100.")

	_, err = uc.ActualizarProgreso(1, 1, -1)
	require.ErrorAs(t, err, &ve)
}

func TestOracionUseCase_CompletarOracionInexistente(t *testing.T) {
	db := newTestDB(t)
	uc := NewOracionUseCase(repositories.NewOracionRepository(db))

	_, err := uc.Completar(1, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOracionUseCase_Recomendadas(t *testing.T) {
	db := newTestDB(t)
	uc := NewOracionUseCase(repositories.NewOracionRepository(db))

	for i := 1; i <= 7; i++ {
		oracion := entities.Oracion{Titulo: "Gratuita", Categoria: "Mañana", ContenidoTexto: "...", Orden: i}
		require.NoError(t, db.Create(&oracion).Error)
	}
	premium := entities.Oracion{Titulo: "Premium", Categoria: "Paz", ContenidoTexto: "...", EsPremium: true, Orden: 8}
	require.NoError(t, db.Create(&premium).Error)

	oraciones, err := uc.Recomendadas()
	require.NoError(t, err)
	// Tope de 5 y solo gratuitas
	require.Len(t, oraciones, 5)
	for _, o := range oraciones {
		assert.False(t, o.EsPremium)
	}
}
