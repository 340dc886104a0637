package entities

import (
	"time"
)

// BibleReading representa la lectura de un capítulo de la Biblia por un usuario
type BibleReading struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PeopleID  uint      `json:"people_id" gorm:"column:people_id;index:idx_bible_readings_people_id"`
	Book      string    `json:"book" gorm:"column:book;index:idx_bible_readings_book"`
	Chapter   int       `json:"chapter" gorm:"column:chapter"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_bible_readings_created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BibleReading) TableName() string {
	return "bible_readings"
}
