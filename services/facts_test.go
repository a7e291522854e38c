package services

import (
	"testing"

	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/camden-git/filmcatalogbackend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardServiceEmptyResultIsNotFound(t *testing.T) {
	db := openTestDB(t)
	service := NewAwardService(repository.NewGormAwardRepository(db))

	_, err := service.GetByActor(1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetByMovie(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAwardServiceReturnsAllFactsForActor(t *testing.T) {
	db := openTestDB(t)
	actorID := uint(44)
	require.NoError(t, db.Create(&[]models.OscarAward{
		{YearFilm: "1974", YearCeremony: "1975", Category: "ACTOR", Name: "Al Pacino", Film: "The Godfather Part II", ActorID: &actorID},
		{YearFilm: "1992", YearCeremony: "1993", Category: "ACTOR", Name: "Al Pacino", Film: "Scent of a Woman", Winner: true, ActorID: &actorID},
	}).Error)

	service := NewAwardService(repository.NewGormAwardRepository(db))
	awards, err := service.GetByActor(actorID)
	require.NoError(t, err)
	require.Len(t, awards, 2)
	assert.Equal(t, "1975", awards[0].YearCeremony)
	assert.True(t, awards[1].Winner)
}

func TestReviewServiceEmptyResultIsNotFound(t *testing.T) {
	db := openTestDB(t)
	movie := seedMovie(t, db, "Unreviewed", nil)

	service := NewReviewService(repository.NewGormReviewRepository(db))
	_, err := service.GetByMovie(movie.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewServiceReturnsReviews(t *testing.T) {
	db := openTestDB(t)
	movie := seedMovie(t, db, "Reviewed", floatPtr(4.0))
	require.NoError(t, db.Create(&models.ReviewMovie{
		MovieID:       movie.ID,
		CriticName:    "Pauline Kael",
		TopCritic:     true,
		PublisherName: "The New Yorker",
		ReviewType:    "Fresh",
		ReviewScore:   "5/5",
	}).Error)

	service := NewReviewService(repository.NewGormReviewRepository(db))
	reviews, err := service.GetByMovie(movie.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Pauline Kael", reviews[0].CriticName)
}
