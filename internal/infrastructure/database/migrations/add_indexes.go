package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes agrega los índices que AutoMigrate no cubre, pensados para las
// consultas del panel y del catálogo
func AddIndexes(db *gorm.DB) error {
	// people: listado del panel ordenado por fecha y búsqueda por email
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_people_created_at ON people (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_people_is_admin ON people (is_admin)").Error; err != nil {
		return err
	}

	// respuestas: el filtro "active" y los conteos del funnel agrupan por persona
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respuestas_people_id ON respuestas (people_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respuestas_encuesta_id ON respuestas (encuesta_id)").Error; err != nil {
		return err
	}

	// bible_readings: la deduplicación diaria busca por persona+libro+capítulo
	// en una ventana de created_at
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bible_readings_dedup ON bible_readings (people_id, book, chapter, created_at)").Error; err != nil {
		return err
	}

	// oracion_usuario: la anotación de progreso carga todo lo de una persona
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_oracion_usuario_people_id ON oracion_usuario (people_id)").Error; err != nil {
		return err
	}

	return nil
}
