package usecases

import (
	"github.com/richardGonza/orasLocal/internal/domain/apperr"
)

// OtpUseCase es el flujo de códigos de un solo uso. El flujo real
// (generar el código, guardarlo hasheado con expiración, enviarlo por correo,
// consumirlo una sola vez) todavía no está construido; hasta entonces ambas
// operaciones fallan rápido con ErrNotImplemented en lugar de fingir éxito.
// La máquina de estados (pendiente → verificado | expirado | consumido) ya
// está definida en entities.OtpCode.
type OtpUseCase struct{}

func NewOtpUseCase() *OtpUseCase {
	return &OtpUseCase{}
}

// SendCode enviará un código OTP al correo de la persona
func (u *OtpUseCase) SendCode(email string) error {
	return apperr.ErrNotImplemented
}

// VerifyCode verificará el código y abrirá sesión
func (u *OtpUseCase) VerifyCode(email, code string) error {
	return apperr.ErrNotImplemented
}
