package models

import "time"

// Movie represents a film in the database using GORM.
// It corresponds to the 'movies' table and is the root of the catalog
// aggregate: it owns its poster, themes, cast, crew and release rows, and
// references the shared lookup tables through four join tables.
type Movie struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	ReleaseYear *int     `gorm:"" json:"release_year,omitempty"` // Nullable
	Tagline     *string  `gorm:"" json:"tagline,omitempty"`      // Nullable
	Description *string  `gorm:"type:text" json:"description,omitempty"`
	Minutes     *int     `gorm:"" json:"minutes,omitempty"`
	Rating      *float64 `gorm:"" json:"rating,omitempty"`

	// Owned children, removed with the movie
	Poster   *Poster      `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"poster,omitempty"`
	Themes   []Theme      `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"themes,omitempty"`
	Cast     []CastCredit `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"cast,omitempty"`
	Crew     []CrewCredit `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"crew,omitempty"`
	Releases []Release    `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"releases,omitempty"`

	// Shared lookup associations
	Genres    []Genre    `gorm:"many2many:genres_movies" json:"genres,omitempty"`
	Studios   []Studio   `gorm:"many2many:studios_movies" json:"studios,omitempty"`
	Countries []Country  `gorm:"many2many:countries_movies" json:"countries,omitempty"`
	Languages []Language `gorm:"many2many:languages_movies" json:"languages,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Movie) TableName() string {
	return "movies"
}

// Poster is the optional one-to-one artwork link for a movie.
type Poster struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID uint   `gorm:"not null;uniqueIndex" json:"movie_id"`
	Link    string `gorm:"not null" json:"link"`
}

func (Poster) TableName() string {
	return "posters"
}

// Theme is a free-text tag owned by a movie.
type Theme struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID uint   `gorm:"not null;index" json:"movie_id"`
	Text    string `gorm:"not null" json:"text"`
}

func (Theme) TableName() string {
	return "themes"
}

// CastCredit links an actor to a movie with a free-text role. The same
// actor may appear several times on one movie with different roles.
type CastCredit struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID uint   `gorm:"not null;index" json:"movie_id"`
	ActorID uint   `gorm:"not null" json:"actor_id"`
	Role    string `gorm:"" json:"role"`
	Actor   *Actor `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}

func (CastCredit) TableName() string {
	return "actors_movies"
}

// CrewCredit links a person to a movie through a role lookup row.
// The (movie, role, person) triple is unique.
type CrewCredit struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID  uint    `gorm:"not null;index:idx_movie_role_person,unique" json:"movie_id"`
	RoleID   uint    `gorm:"not null;index:idx_movie_role_person,unique" json:"role_id"`
	PersonID uint    `gorm:"not null;index:idx_movie_role_person,unique" json:"person_id"`
	Role     *Role   `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Person   *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (CrewCredit) TableName() string {
	return "movie_role_person"
}

// Release records one regional release of a movie. Country is optional;
// the age rating is a free-form string ("PG-13", "VM14", ...).
type Release struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID   uint       `gorm:"not null;index" json:"movie_id"`
	CountryID *uint      `gorm:"" json:"country_id,omitempty"` // Nullable
	Date      *time.Time `gorm:"" json:"date,omitempty"`
	Type      string     `gorm:"" json:"type"`
	Rating    string     `gorm:"" json:"rating"`
	Country   *Country   `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

func (Release) TableName() string {
	return "releases_movies"
}
