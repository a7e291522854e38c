package models

// OscarAward is an append-only award fact, optionally linked to an actor
// and/or a movie. It is queried by those ids and never merged into the
// movie aggregate.
type OscarAward struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	YearFilm     string `gorm:"" json:"year_film"`
	YearCeremony string `gorm:"" json:"year_ceremony"`
	Category     string `gorm:"" json:"category"`
	Name         string `gorm:"" json:"name"`
	Film         string `gorm:"" json:"film"`
	Winner       bool   `gorm:"" json:"winner"`
	ActorID      *uint  `gorm:"index" json:"actor_id,omitempty"` // Nullable
	MovieID      *uint  `gorm:"index" json:"movie_id,omitempty"` // Nullable
}

func (OscarAward) TableName() string {
	return "oscar_awards"
}
