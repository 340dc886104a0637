package entities

import (
	"time"
)

// Estados del ciclo de vida de un código OTP.
// El flujo real (generar, hashear, expirar, un solo uso) todavía no está
// construido; los endpoints responden 501 hasta entonces.
const (
	OtpPendiente  = "pendiente"
	OtpVerificado = "verificado"
	OtpExpirado   = "expirado"
	OtpConsumido  = "consumido"
)

// OtpCode es un código de un solo uso enviado por correo para iniciar sesión
type OtpCode struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	PeopleID   uint       `json:"people_id" gorm:"column:people_id;index"`
	CodeHash   string     `json:"-" gorm:"column:code_hash"`
	Estado     string     `json:"estado" gorm:"column:estado;default:pendiente"`
	ExpiresAt  time.Time  `json:"expires_at" gorm:"column:expires_at"`
	ConsumedAt *time.Time `json:"consumed_at" gorm:"column:consumed_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (OtpCode) TableName() string {
	return "otp_codes"
}
