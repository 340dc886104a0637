package seeds

import (
	"log"

	"gorm.io/gorm"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
)

// Run carga los datos iniciales: el administrador, las preguntas de la
// encuesta de bienvenida y el catálogo de oraciones. Es idempotente; cada
// registro se busca por su clave natural antes de crearlo.
func Run(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedEncuestas(db); err != nil {
		return err
	}
	if err := seedOraciones(db); err != nil {
		return err
	}
	log.Println("Seeds aplicados")
	return nil
}

func seedAdmin(db *gorm.DB) error {
	admin := entities.People{
		Nombre:   "Administrador",
		Email:    "admin@oras.app",
		Pais:     "México",
		Whatsapp: "+5200000000",
		IsAdmin:  true,
	}
	return db.Where(entities.People{Email: admin.Email}).FirstOrCreate(&admin).Error
}

func seedEncuestas(db *gorm.DB) error {
	preguntas := []string{
		"¿Con qué frecuencia oras actualmente?",
		"¿En qué momento del día prefieres orar?",
		"¿Qué te gustaría fortalecer con la oración?",
		"¿Lees la Biblia con regularidad?",
		"¿Cómo conociste la aplicación?",
	}
	for _, pregunta := range preguntas {
		encuesta := entities.Encuesta{Pregunta: pregunta}
		if err := db.Where(entities.Encuesta{Pregunta: pregunta}).FirstOrCreate(&encuesta).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedOraciones(db *gorm.DB) error {
	duracion := func(min int) *int { return &min }
	descripcion := func(s string) *string { return &s }

	oraciones := []entities.Oracion{
		{
			Titulo:         "Padre Nuestro",
			Categoria:      "Tradicional",
			Descripcion:    descripcion("La oración que Jesús enseñó a sus discípulos."),
			ContenidoTexto: "Padre nuestro que estás en los cielos, santificado sea tu nombre...",
			EsPremium:      false,
			Orden:          1,
			Duracion:       duracion(3),
		},
		{
			Titulo:         "Oración de la Mañana",
			Categoria:      "Mañana",
			Descripcion:    descripcion("Para comenzar el día en la presencia de Dios."),
			ContenidoTexto: "Señor, gracias por este nuevo día que me regalas...",
			EsPremium:      false,
			Orden:          2,
			Duracion:       duracion(5),
		},
		{
			Titulo:         "Oración de Gratitud",
			Categoria:      "Gratitud",
			Descripcion:    descripcion("Dar gracias por las bendiciones recibidas."),
			ContenidoTexto: "Gracias, Señor, por todas tus bendiciones...",
			EsPremium:      false,
			Orden:          3,
			Duracion:       duracion(4),
		},
		{
			Titulo:         "Oración de la Noche",
			Categoria:      "Noche",
			Descripcion:    descripcion("Para cerrar el día y descansar en paz."),
			ContenidoTexto: "Señor, al terminar este día vengo ante ti...",
			EsPremium:      false,
			Orden:          4,
			Duracion:       duracion(5),
		},
		{
			Titulo:         "Oración por la Paz Interior",
			Categoria:      "Paz",
			Descripcion:    descripcion("Encontrar calma en medio de la ansiedad."),
			ContenidoTexto: "Príncipe de paz, calma mi corazón inquieto...",
			EsPremium:      false,
			Orden:          5,
			Duracion:       duracion(6),
		},
		{
			Titulo:         "Oración por Sanación",
			Categoria:      "Sanación",
			Descripcion:    descripcion("Pedir salud para el cuerpo y el alma."),
			ContenidoTexto: "Señor, tú que sanaste a los enfermos...",
			EsPremium:      true,
			Orden:          6,
			Duracion:       duracion(8),
		},
		{
			Titulo:         "Oración contra la Ansiedad",
			Categoria:      "Calma",
			Descripcion:    descripcion("Entregar las preocupaciones y recibir descanso."),
			ContenidoTexto: "Dios mío, pongo en tus manos mis preocupaciones...",
			EsPremium:      true,
			Orden:          7,
			Duracion:       duracion(7),
		},
		{
			Titulo:         "Oración por Fortaleza",
			Categoria:      "Fortaleza",
			Descripcion:    descripcion("Pedir fuerzas en los momentos difíciles."),
			ContenidoTexto: "Señor, dame fuerzas cuando las mías se acaban...",
			EsPremium:      true,
			Orden:          8,
			Duracion:       duracion(7),
		},
		{
			Titulo:         "Oración por Sabiduría",
			Categoria:      "Sabiduría",
			Descripcion:    descripcion("Pedir discernimiento para decidir bien."),
			ContenidoTexto: "Padre, dame la sabiduría que viene de lo alto...",
			EsPremium:      true,
			Orden:          9,
			Duracion:       duracion(6),
		},
		{
			Titulo:         "Oración por la Familia",
			Categoria:      "Familia",
			Descripcion:    descripcion("Cubrir el hogar con la protección de Dios."),
			ContenidoTexto: "Señor, te presento a mi familia...",
			EsPremium:      true,
			Orden:          10,
			Duracion:       duracion(9),
		},
	}

	for i := range oraciones {
		oracion := oraciones[i]
		if err := db.Where(entities.Oracion{Titulo: oracion.Titulo}).FirstOrCreate(&oracion).Error; err != nil {
			return err
		}
	}
	return nil
}
