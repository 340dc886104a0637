package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/richardGonza/orasLocal/internal/application/usecases"
	"github.com/richardGonza/orasLocal/internal/domain/entities"
)

type AdminHandler struct {
	adminUseCase     *usecases.AdminUseCase
	dashboardUseCase *usecases.DashboardUseCase
}

func NewAdminHandler(adminUseCase *usecases.AdminUseCase, dashboardUseCase *usecases.DashboardUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase:     adminUseCase,
		dashboardUseCase: dashboardUseCase,
	}
}

type adminUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Pais     string `json:"pais" validate:"omitempty,max=255"`
	Whatsapp string `json:"whatsapp" validate:"omitempty,max=20"`
	IsAdmin  bool   `json:"is_admin"`
}

// Dashboard retorna las métricas agregadas del panel
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	metrics, err := h.dashboardUseCase.GetMetrics()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"metrics": metrics,
	})
}

// Funnel retorna las etapas del funnel de conversión
func (h *AdminHandler) Funnel(c *fiber.Ctx) error {
	funnel, err := h.dashboardUseCase.GetFunnel()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"funnel":  funnel.Steps,
	})
}

// Users lista usuarios paginados con ?page=, ?search= y ?filter=
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	users, total, err := h.adminUseCase.ListUsers(page, c.Query("search"), c.Query("filter"))
	if err != nil {
		return renderError(c, err)
	}

	data := make([]entities.PublicProfile, 0, len(users))
	for i := range users {
		data = append(data, users[i].Public())
	}

	lastPage := int(math.Ceil(float64(total) / float64(usecases.UsersPerPage)))
	if lastPage < 1 {
		lastPage = 1
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   data,
		"meta": fiber.Map{
			"total":     total,
			"page":      page,
			"per_page":  usecases.UsersPerPage,
			"last_page": lastPage,
		},
	})
}

// StoreUser crea un usuario desde el panel
func (h *AdminHandler) StoreUser(c *fiber.Ctx) error {
	var req adminUserRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	person, err := h.adminUseCase.CreateUser(usecases.AdminUserInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Pais:     req.Pais,
		Whatsapp: req.Whatsapp,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Usuario creado correctamente",
		"user":    person.Public(),
	})
}

// UpdateUser edita un usuario desde el panel
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return usuarioNoEncontrado(c)
	}

	var req adminUserRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}

	person, err := h.adminUseCase.UpdateUser(uint(id), usecases.AdminUserInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Pais:     req.Pais,
		Whatsapp: req.Whatsapp,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Usuario actualizado correctamente",
		"user":    person.Public(),
	})
}

// DeleteUser elimina un usuario y sus datos asociados
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return usuarioNoEncontrado(c)
	}

	if err := h.adminUseCase.DeleteUser(uint(id)); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Usuario eliminado correctamente",
	})
}

func usuarioNoEncontrado(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Recurso no encontrado",
	})
}
