package services

import (
	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/camden-git/filmcatalogbackend/repository"
)

// AwardService serves the read-only oscar award facts. An empty result is
// reported as ErrNotFound rather than an empty success, matching the
// surrounding service's policy of conflating "no data" with "missing".
type AwardService struct {
	Awards repository.AwardRepositoryInterface
}

// NewAwardService creates a new instance of AwardService
func NewAwardService(awards repository.AwardRepositoryInterface) *AwardService {
	return &AwardService{Awards: awards}
}

// GetByActor returns all award facts for an actor, ErrNotFound when none
func (s *AwardService) GetByActor(actorID uint) ([]models.OscarAward, error) {
	awards, err := s.Awards.ListByActorID(actorID)
	if err != nil {
		return nil, err
	}
	if len(awards) == 0 {
		return nil, notFoundf("oscar awards for actor %d", actorID)
	}
	return awards, nil
}

// GetByMovie returns all award facts for a movie, ErrNotFound when none
func (s *AwardService) GetByMovie(movieID uint) ([]models.OscarAward, error) {
	awards, err := s.Awards.ListByMovieID(movieID)
	if err != nil {
		return nil, err
	}
	if len(awards) == 0 {
		return nil, notFoundf("oscar awards for movie %d", movieID)
	}
	return awards, nil
}

// ReviewService serves the read-only critic reviews with the same
// empty-means-missing policy as AwardService.
type ReviewService struct {
	Reviews repository.ReviewRepositoryInterface
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(reviews repository.ReviewRepositoryInterface) *ReviewService {
	return &ReviewService{Reviews: reviews}
}

// GetByMovie returns all reviews for a movie, ErrNotFound when none
func (s *ReviewService) GetByMovie(movieID uint) ([]models.ReviewMovie, error) {
	reviews, err := s.Reviews.ListByMovieID(movieID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, notFoundf("reviews for movie %d", movieID)
	}
	return reviews, nil
}
