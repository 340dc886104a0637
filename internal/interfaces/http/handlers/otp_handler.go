package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/richardGonza/orasLocal/internal/application/usecases"
)

type OtpHandler struct {
	otpUseCase *usecases.OtpUseCase
}

func NewOtpHandler(otpUseCase *usecases.OtpUseCase) *OtpHandler {
	return &OtpHandler{otpUseCase: otpUseCase}
}

type sendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// SendCode valida la entrada y delega; hoy responde 501
func (h *OtpHandler) SendCode(c *fiber.Ctx) error {
	var req sendCodeRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}
	if err := h.otpUseCase.SendCode(req.Email); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Código enviado",
	})
}

// VerifyCode valida la entrada y delega; hoy responde 501
func (h *OtpHandler) VerifyCode(c *fiber.Ctx) error {
	var req verifyCodeRequest
	if err := parseBody(c, &req); err != nil {
		return renderError(c, err)
	}
	if err := h.otpUseCase.VerifyCode(req.Email, req.Code); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Código verificado",
	})
}
