package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
)

// newTestDB abre una base sqlite en memoria con el esquema completo
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Una sola conexión: cada conexión nueva a :memory: sería otra base vacía
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

func crearPersona(t *testing.T, db *gorm.DB, nombre, email string) *entities.People {
	t.Helper()

	person := &entities.People{
		Nombre:   nombre,
		Email:    email,
		Pais:     "México",
		Whatsapp: "+5210000000",
	}
	require.NoError(t, db.Create(person).Error)
	return person
}

func crearOracion(t *testing.T, db *gorm.DB, titulo, categoria string, esPremium bool, orden int) *entities.Oracion {
	t.Helper()

	oracion := &entities.Oracion{
		Titulo:         titulo,
		Categoria:      categoria,
		ContenidoTexto: "Señor, escucha mi oración...",
		EsPremium:      esPremium,
		Orden:          orden,
	}
	require.NoError(t, db.Create(oracion).Error)
	return oracion
}
