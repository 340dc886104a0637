package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.People{},
		&entities.Encuesta{},
		&entities.Respuesta{},
		&entities.BibleReading{},
		&entities.Oracion{},
		&entities.OracionUsuario{},
		&entities.OtpCode{},
	))

	return db
}
