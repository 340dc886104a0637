package usecases

import (
	"time"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
)

// Las recomendadas son hoy una política fija: las primeras oraciones
// gratuitas en orden de catálogo. No hay personalización.
const recomendadasLimit = 5

// OracionUseCase implementa el catálogo de oraciones y el progreso por usuario
type OracionUseCase struct {
	oracionRepo repositories.IOracionRepository
}

func NewOracionUseCase(oracionRepo repositories.IOracionRepository) *OracionUseCase {
	return &OracionUseCase{
		oracionRepo: oracionRepo,
	}
}

// Listar retorna el catálogo filtrado por categoría exacta y/o tipo
// (gratuitas|premium), cada entrada anotada con el progreso del que consulta
func (u *OracionUseCase) Listar(peopleID uint, categoria, tipo string) ([]entities.OracionConProgreso, error) {
	var esPremium *bool
	switch tipo {
	case "gratuitas":
		v := false
		esPremium = &v
	case "premium":
		v := true
		esPremium = &v
	}

	oraciones, err := u.oracionRepo.Listar(categoria, esPremium)
	if err != nil {
		return nil, err
	}

	progresos, err := u.oracionRepo.ProgresosDe(peopleID)
	if err != nil {
		return nil, err
	}

	result := make([]entities.OracionConProgreso, 0, len(oraciones))
	for _, oracion := range oraciones {
		anotada := entities.OracionConProgreso{Oracion: oracion}
		if progreso, ok := progresos[oracion.ID]; ok {
			anotada.UserProgress = &entities.ProgresoUsuario{
				Progreso:     progreso.Progreso,
				CompletadaAt: progreso.CompletadaAt,
			}
		}
		result = append(result, anotada)
	}
	return result, nil
}

// Obtener retorna una oración con la anotación de progreso del que consulta
func (u *OracionUseCase) Obtener(peopleID, oracionID uint) (*entities.OracionConProgreso, error) {
	oracion, err := u.oracionRepo.FindByID(oracionID)
	if err != nil {
		return nil, err
	}

	anotada := &entities.OracionConProgreso{Oracion: *oracion}

	progreso, err := u.oracionRepo.ProgresoDe(peopleID, oracionID)
	if err != nil {
		return nil, err
	}
	if progreso != nil {
		anotada.UserProgress = &entities.ProgresoUsuario{
			Progreso:     progreso.Progreso,
			CompletadaAt: progreso.CompletadaAt,
		}
	}
	return anotada, nil
}

// Completar marca la oración como completada: progreso=100 y completada_at=
// ahora, siempre, aunque ya estuviera completada (estado final idempotente,
// timestamp no idempotente). Contrato distinto al de ActualizarProgreso.
func (u *OracionUseCase) Completar(peopleID, oracionID uint) (*entities.OracionUsuario, error) {
	if _, err := u.oracionRepo.FindByID(oracionID); err != nil {
		return nil, err
	}
	return u.oracionRepo.Completar(peopleID, oracionID, time.Now())
}

// ActualizarProgreso sobrescribe el porcentaje (no es un máximo). Al cruzar
// el umbral de 100 por primera vez fija completada_at; un timestamp ya puesto
// no se toca ni se limpia.
func (u *OracionUseCase) ActualizarProgreso(peopleID, oracionID uint, progreso int) (*entities.OracionUsuario, error) {
	if progreso < 0 || progreso > 100 {
		return nil, apperr.NewValidationError("progreso", "El progreso debe estar entre 0 y 100.")
	}
	if _, err := u.oracionRepo.FindByID(oracionID); err != nil {
		return nil, err
	}
	return u.oracionRepo.ActualizarProgreso(peopleID, oracionID, progreso, time.Now())
}

// Categorias retorna las categorías distintas del catálogo
func (u *OracionUseCase) Categorias() ([]string, error) {
	return u.oracionRepo.Categorias()
}

// Recomendadas retorna las primeras oraciones gratuitas en orden de catálogo
func (u *OracionUseCase) Recomendadas() ([]entities.Oracion, error) {
	return u.oracionRepo.Gratuitas(recomendadasLimit)
}
