package apperr

import "errors"

// Errores de aplicación; los handlers los traducen al status HTTP en el borde
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("sin permisos")
	ErrConflict           = errors.New("conflicto de unicidad")
	ErrNotImplemented     = errors.New("no implementado")
)

// ValidationError agrupa mensajes de validación por campo (HTTP 422)
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	return "validación fallida"
}

// NewValidationError crea un error de validación para un único campo
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: map[string][]string{field: {message}}}
}

// Add agrega un mensaje a un campo
func (e *ValidationError) Add(field, message string) {
	if e.Errors == nil {
		e.Errors = make(map[string][]string)
	}
	e.Errors[field] = append(e.Errors[field], message)
}

// HasErrors indica si hay algún mensaje acumulado
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}
