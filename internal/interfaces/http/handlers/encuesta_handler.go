package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/richardGonza/orasLocal/internal/application/usecases"
	"github.com/richardGonza/orasLocal/internal/interfaces/http/middleware"
)

type EncuestaHandler struct {
	encuestaUseCase *usecases.EncuestaUseCase
}

func NewEncuestaHandler(encuestaUseCase *usecases.EncuestaUseCase) *EncuestaHandler {
	return &EncuestaHandler{encuestaUseCase: encuestaUseCase}
}

type crearEncuestaRequest struct {
	Pregunta string `json:"pregunta" validate:"required,max=500"`
}

type guardarRespuestaRequest struct {
	EncuestaID uint                   `json:"encuesta_id" validate:"required"`
	Respuestas map[string]interface{} `json:"respuestas" validate:"required"`
}

// Index lista todas las preguntas, la más reciente primero
func (h *EncuestaHandler) Index(c *fiber.Ctx) error {
	encuestas, err := h.encuestaUseCase.GetEncuestas()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    encuestas,
	})
}

// Store crea una pregunta nueva
func (h *EncuestaHandler) Store(c *fiber.Ctx) error {
	var req crearEncuestaRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	encuesta, err := h.encuestaUseCase.CrearEncuesta(middleware.CurrentPerson(c), req.Pregunta)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "¡Encuesta creada exitosamente!",
		"data":    encuesta,
	})
}

// StoreRespuesta guarda el documento de respuestas del usuario autenticado
func (h *EncuestaHandler) StoreRespuesta(c *fiber.Ctx) error {
	var req guardarRespuestaRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	respuesta, err := h.encuestaUseCase.GuardarRespuesta(middleware.CurrentPerson(c), req.EncuestaID, req.Respuestas)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Respuesta guardada exitosamente",
		"data":    respuesta,
	})
}
