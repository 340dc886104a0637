package migrations

import (
	"gorm.io/gorm"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
)

// Migrate crea o actualiza el esquema a partir de las entidades
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.People{},
		&entities.Encuesta{},
		&entities.Respuesta{},
		&entities.BibleReading{},
		&entities.Oracion{},
		&entities.OracionUsuario{},
		&entities.OtpCode{},
	)
}
