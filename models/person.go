package models

import "time"

// Actor represents a performer credited on cast rows.
type Actor struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`

	// Optional detail record, keyed by the actor's own id
	Info *ActorInfo `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE" json:"info,omitempty"`
}

func (Actor) TableName() string {
	return "actors"
}

// ActorInfo is the optional one-to-one biography record for an actor.
// It shares the actor's primary key.
type ActorInfo struct {
	ActorID      uint       `gorm:"primaryKey" json:"actor_id"`
	Biography    *string    `gorm:"type:text" json:"biography,omitempty"`
	PlaceOfBirth *string    `gorm:"type:text" json:"place_of_birth,omitempty"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	Deathday     *time.Time `json:"deathday,omitempty"`
	Gender       *int       `json:"gender,omitempty"`
	Popularity   *float64   `json:"popularity,omitempty"`
	ImagePath    *string    `json:"image_path,omitempty"`
}

func (ActorInfo) TableName() string {
	return "actor_infos"
}

// Person represents a crew member (director, writer, ...) referenced by
// crew credits.
type Person struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Person) TableName() string {
	return "people"
}
