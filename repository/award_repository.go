package repository

import (
	"fmt"

	"github.com/camden-git/filmcatalogbackend/models"
	"gorm.io/gorm"
)

// GormAwardRepository handles read access to the oscar_awards table
type GormAwardRepository struct {
	DB *gorm.DB
}

// NewGormAwardRepository creates a new instance of GormAwardRepository
func NewGormAwardRepository(db *gorm.DB) AwardRepositoryInterface {
	return &GormAwardRepository{DB: db}
}

// ListByActorID retrieves all award facts linked to an actor
func (r *GormAwardRepository) ListByActorID(actorID uint) ([]models.OscarAward, error) {
	var awards []models.OscarAward
	err := r.DB.Where("actor_id = ?", actorID).Order("year_ceremony ASC, id ASC").Find(&awards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list awards for actor %d: %w", actorID, err)
	}
	return awards, nil
}

// ListByMovieID retrieves all award facts linked to a movie
func (r *GormAwardRepository) ListByMovieID(movieID uint) ([]models.OscarAward, error) {
	var awards []models.OscarAward
	err := r.DB.Where("movie_id = ?", movieID).Order("year_ceremony ASC, id ASC").Find(&awards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list awards for movie %d: %w", movieID, err)
	}
	return awards, nil
}
