package models

import "time"

// ReviewMovie is an append-only critic review for a movie.
type ReviewMovie struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID       uint       `gorm:"not null;index" json:"movie_id"`
	CriticName    string     `gorm:"" json:"critic_name"`
	TopCritic     bool       `gorm:"" json:"top_critic"`
	PublisherName string     `gorm:"" json:"publisher_name"`
	ReviewType    string     `gorm:"" json:"review_type"`
	ReviewScore   string     `gorm:"" json:"review_score"`
	ReviewDate    *time.Time `gorm:"" json:"review_date,omitempty"`
	ReviewContent string     `gorm:"type:text" json:"review_content"`
}

func (ReviewMovie) TableName() string {
	return "reviews_movies"
}
