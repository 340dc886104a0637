package usecases

import (
	"time"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
)

// BibliaUseCase registra eventos de lectura de la Biblia
type BibliaUseCase struct {
	readingRepo repositories.IBibleReadingRepository
}

func NewBibliaUseCase(readingRepo repositories.IBibleReadingRepository) *BibliaUseCase {
	return &BibliaUseCase{
		readingRepo: readingRepo,
	}
}

// RegistrarLectura registra la lectura de un capítulo. Idempotente por día
// calendario (hora local del servidor): una relectura el mismo día no inserta
// fila nueva y retorna yaRegistrada=true.
func (u *BibliaUseCase) RegistrarLectura(peopleID uint, book string, chapter int) (yaRegistrada bool, err error) {
	ahora := time.Now()
	inicioDia := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	finDia := inicioDia.AddDate(0, 0, 1)

	existe, err := u.readingRepo.ExisteLecturaEntre(peopleID, book, chapter, inicioDia, finDia)
	if err != nil {
		return false, err
	}
	if existe {
		return true, nil
	}

	reading := &entities.BibleReading{
		PeopleID: peopleID,
		Book:     book,
		Chapter:  chapter,
	}
	if err := u.readingRepo.Create(reading); err != nil {
		return false, err
	}
	return false, nil
}
