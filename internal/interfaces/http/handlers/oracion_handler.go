package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/richardGonza/orasLocal/internal/application/usecases"
	"github.com/richardGonza/orasLocal/internal/domain/apperr"
	"github.com/richardGonza/orasLocal/internal/interfaces/http/middleware"
)

type OracionHandler struct {
	oracionUseCase *usecases.OracionUseCase
}

func NewOracionHandler(oracionUseCase *usecases.OracionUseCase) *OracionHandler {
	return &OracionHandler{oracionUseCase: oracionUseCase}
}

type actualizarProgresoRequest struct {
	Progreso *int `json:"progreso" validate:"required"`
}

// Index lista el catálogo, filtrable por ?categoria= y ?tipo=gratuitas|premium,
// con el progreso del usuario anotado en cada oración
func (h *OracionHandler) Index(c *fiber.Ctx) error {
	person := middleware.CurrentPerson(c)
	oraciones, err := h.oracionUseCase.Listar(person.ID, c.Query("categoria"), c.Query("tipo"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"oraciones": oraciones,
	})
}

// Show retorna una oración con el progreso del usuario
func (h *OracionHandler) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return oracionNoEncontrada(c)
	}

	person := middleware.CurrentPerson(c)
	oracion, err := h.oracionUseCase.Obtener(person.ID, uint(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return oracionNoEncontrada(c)
		}
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"oracion": oracion,
	})
}

// Completar marca la oración como completada para el usuario
func (h *OracionHandler) Completar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return oracionNoEncontrada(c)
	}

	person := middleware.CurrentPerson(c)
	progreso, err := h.oracionUseCase.Completar(person.ID, uint(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return oracionNoEncontrada(c)
		}
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Oración completada",
		"oracion_usuario": progreso,
	})
}

// Progreso sobrescribe el porcentaje de avance del usuario en la oración
func (h *OracionHandler) Progreso(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return oracionNoEncontrada(c)
	}

	var req actualizarProgresoRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	person := middleware.CurrentPerson(c)
	progreso, err := h.oracionUseCase.ActualizarProgreso(person.ID, uint(id), *req.Progreso)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return oracionNoEncontrada(c)
		}
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Progreso actualizado",
		"oracion_usuario": progreso,
	})
}

// Categorias retorna las categorías distintas del catálogo
func (h *OracionHandler) Categorias(c *fiber.Ctx) error {
	categorias, err := h.oracionUseCase.Categorias()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categorias": categorias,
	})
}

// Recomendadas retorna las oraciones sugeridas para el usuario
func (h *OracionHandler) Recomendadas(c *fiber.Ctx) error {
	oraciones, err := h.oracionUseCase.Recomendadas()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"oraciones": oraciones,
	})
}

func oracionNoEncontrada(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Oración no encontrada",
	})
}
