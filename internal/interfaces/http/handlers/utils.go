package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/richardGonza/orasLocal/internal/domain/apperr"
)

var validate = newValidator()

// newValidator configura el validador para reportar errores con el nombre del
// campo del JSON, no el del struct de Go
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodifica el body y corre las validaciones del struct. Retorna
// un *apperr.ValidationError listo para renderError.
func parseBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		ve := &apperr.ValidationError{}
		ve.Add("body", "El cuerpo de la petición no es válido.")
		return ve
	}
	if err := validate.Struct(dest); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}
		ve := &apperr.ValidationError{}
		for _, fe := range err.(validator.ValidationErrors) {
			ve.Add(fe.Field(), mensajeValidacion(fe))
		}
		return ve
	}
	return nil
}

// mensajeValidacion traduce cada tag de validación a un mensaje en español
func mensajeValidacion(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", fe.Field())
	case "email":
		return fmt.Sprintf("El campo %s debe ser un email válido.", fe.Field())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("El campo %s no puede superar %s caracteres.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s.", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("El campo %s debe ser menor o igual a %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("El campo %s no es válido.", fe.Field())
	}
}

// renderError traduce los errores de aplicación al status y shape HTTP.
// Todos los handlers terminan acá sus caminos de error.
func renderError(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors":  ve.Errors,
		})
	}

	switch {
	case errors.Is(err, apperr.ErrInvalidCredentials):
		// Mismo shape que una falla de validación para no filtrar si el email
		// existe
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors": fiber.Map{
				"email": []string{"Las credenciales proporcionadas son incorrectas."},
			},
		})
	case errors.Is(err, apperr.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "No autenticado",
		})
	case errors.Is(err, apperr.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "No tienes permisos de administrador",
		})
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Recurso no encontrado",
		})
	case errors.Is(err, apperr.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "El recurso ya existe",
		})
	case errors.Is(err, apperr.ErrNotImplemented):
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
			"success": false,
			"message": "Funcionalidad no disponible todavía",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error interno del servidor",
		})
	}
}
