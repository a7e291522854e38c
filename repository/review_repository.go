package repository

import (
	"fmt"

	"github.com/camden-git/filmcatalogbackend/models"
	"gorm.io/gorm"
)

// GormReviewRepository handles read access to the reviews_movies table
type GormReviewRepository struct {
	DB *gorm.DB
}

// NewGormReviewRepository creates a new instance of GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) ReviewRepositoryInterface {
	return &GormReviewRepository{DB: db}
}

// ListByMovieID retrieves all critic reviews for a movie, newest first
func (r *GormReviewRepository) ListByMovieID(movieID uint) ([]models.ReviewMovie, error) {
	var reviews []models.ReviewMovie
	err := r.DB.Where("movie_id = ?", movieID).Order("review_date DESC, id DESC").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for movie %d: %w", movieID, err)
	}
	return reviews, nil
}
