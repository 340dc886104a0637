package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/richardGonza/orasLocal/internal/application/usecases"
	"github.com/richardGonza/orasLocal/internal/interfaces/http/middleware"
)

type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

type registerRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Pais     string `json:"pais" validate:"required,max=255"`
	Whatsapp string `json:"whatsapp" validate:"omitempty,max=255"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Register crea la persona y abre sesión en la misma respuesta
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	person, err := h.authUseCase.Register(usecases.RegisterInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Pais:     req.Pais,
		Whatsapp: req.Whatsapp,
		Password: req.Password,
	})
	if err != nil {
		return renderError(c, err)
	}

	token, err := middleware.IssueSessionToken(person)
	if err != nil {
		return renderError(c, err)
	}
	middleware.SetSessionCookie(c, token)
	middleware.IssueCsrfCookie(c)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "¡Registro exitoso!",
		"user":    person.Public(),
		"token":   token,
	})
}

// Login autentica con email y contraseña
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	person, err := h.authUseCase.Authenticate(usecases.PasswordCredential{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return renderError(c, err)
	}

	token, err := middleware.IssueSessionToken(person)
	if err != nil {
		return renderError(c, err)
	}
	middleware.SetSessionCookie(c, token)
	middleware.IssueCsrfCookie(c)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inicio de sesión exitoso",
		"user":    person.Public(),
		"token":   token,
	})
}

// AdminLogin abre sesión de panel solo con el email de un administrador
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	person, err := h.authUseCase.Authenticate(usecases.AdminCapabilityCredential{Email: req.Email})
	if err != nil {
		return renderError(c, err)
	}

	token, err := middleware.IssueSessionToken(person)
	if err != nil {
		return renderError(c, err)
	}
	middleware.SetSessionCookie(c, token)
	middleware.IssueCsrfCookie(c)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inicio de sesión exitoso",
		"user":    person.Public(),
		"token":   token,
	})
}

// Logout cierra la sesión y rota el token CSRF
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	middleware.IssueCsrfCookie(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sesión cerrada correctamente",
	})
}

// Me retorna la persona autenticada
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	person := middleware.CurrentPerson(c)
	return c.JSON(fiber.Map{
		"success": true,
		"user":    person.Public(),
	})
}

// CsrfCookie emite la cookie CSRF para clientes que aún no la tienen
func (h *AuthHandler) CsrfCookie(c *fiber.Ctx) error {
	token := middleware.IssueCsrfCookie(c)
	return c.JSON(fiber.Map{
		"success":    true,
		"csrf_token": token,
	})
}
