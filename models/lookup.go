package models

// Lookup entities are small shared reference tables with a unique display
// string. They are referenced, never owned, by movies: deleting a movie
// leaves them untouched.

type Genre struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

type Studio struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

func (Studio) TableName() string {
	return "studios"
}

type Country struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

func (Country) TableName() string {
	return "countries"
}

type Language struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

func (Language) TableName() string {
	return "languages"
}

// Role is the crew-role lookup ("Director", "Composer", ...), distinct from
// the free-text role string on a cast credit.
type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}
