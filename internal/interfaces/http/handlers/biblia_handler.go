package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/richardGonza/orasLocal/internal/application/usecases"
	"github.com/richardGonza/orasLocal/internal/interfaces/http/middleware"
)

type BibliaHandler struct {
	bibliaUseCase *usecases.BibliaUseCase
}

func NewBibliaHandler(bibliaUseCase *usecases.BibliaUseCase) *BibliaHandler {
	return &BibliaHandler{bibliaUseCase: bibliaUseCase}
}

type registrarLecturaRequest struct {
	Book    string `json:"book" validate:"required,max=100"`
	Chapter int    `json:"chapter" validate:"required,gte=1"`
}

// Store registra la lectura de un capítulo; repetir el mismo capítulo el
// mismo día responde 200 sin insertar
func (h *BibliaHandler) Store(c *fiber.Ctx) error {
	var req registrarLecturaRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	person := middleware.CurrentPerson(c)
	yaRegistrada, err := h.bibliaUseCase.RegistrarLectura(person.ID, req.Book, req.Chapter)
	if err != nil {
		return renderError(c, err)
	}

	if yaRegistrada {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Lectura ya registrada hoy",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Lectura registrada correctamente",
	})
}
