package usecases

import (
	"encoding/json"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
	"gorm.io/datatypes"
)

// EncuestaUseCase implementa los casos de uso de encuestas y respuestas
type EncuestaUseCase struct {
	encuestaRepo repositories.IEncuestaRepository

	// La creación de preguntas hoy solo exige sesión, igual que el sistema
	// original; el requisito de admin queda como parámetro explícito para
	// poder endurecerlo sin tocar el caso de uso
	requireAdminParaCrear bool
}

func NewEncuestaUseCase(encuestaRepo repositories.IEncuestaRepository, requireAdminParaCrear bool) *EncuestaUseCase {
	return &EncuestaUseCase{
		encuestaRepo:          encuestaRepo,
		requireAdminParaCrear: requireAdminParaCrear,
	}
}

// GetEncuestas retorna todas las preguntas, la más reciente primero
func (u *EncuestaUseCase) GetEncuestas() ([]entities.Encuesta, error) {
	return u.encuestaRepo.GetEncuestas()
}

// CrearEncuesta crea una pregunta nueva
func (u *EncuestaUseCase) CrearEncuesta(actor *entities.People, pregunta string) (*entities.Encuesta, error) {
	if u.requireAdminParaCrear && !actor.IsAdmin {
		return nil, apperr.ErrForbidden
	}

	encuesta := &entities.Encuesta{Pregunta: pregunta}
	if err := u.encuestaRepo.Create(encuesta); err != nil {
		return nil, err
	}
	return encuesta, nil
}

// GuardarRespuesta inserta el documento de respuestas del actor. Cada envío
// crea una fila nueva; no hay idempotencia.
func (u *EncuestaUseCase) GuardarRespuesta(actor *entities.People, encuestaID uint, respuestas map[string]interface{}) (*entities.Respuesta, error) {
	existe, err := u.encuestaRepo.Exists(encuestaID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, apperr.NewValidationError("encuesta_id", "La encuesta seleccionada no existe.")
	}

	doc, err := json.Marshal(respuestas)
	if err != nil {
		return nil, apperr.NewValidationError("respuestas", "El campo respuestas debe ser un objeto.")
	}

	respuesta := &entities.Respuesta{
		EncuestaID: encuestaID,
		PeopleID:   actor.ID,
		Respuestas: datatypes.JSON(doc),
	}
	if err := u.encuestaRepo.CreateRespuesta(respuesta); err != nil {
		return nil, err
	}
	return respuesta, nil
}
