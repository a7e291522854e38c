package services

import (
	"strings"
	"testing"

	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSearchFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	movies := []models.Movie{
		{Name: "Batman Begins", Rating: floatPtr(4.2)},
		{Name: "The Batman", Rating: floatPtr(4.5)},
		{Name: "Batman Returns", Rating: floatPtr(3.9)},
		{Name: "Superman", Rating: floatPtr(3.5)},
	}
	require.NoError(t, db.Create(&movies).Error)
	require.NoError(t, db.Create(&models.Poster{MovieID: movies[0].ID, Link: "/posters/batman-begins.jpg"}).Error)

	bale := models.Actor{Name: "Christian Bale"}
	require.NoError(t, db.Create(&bale).Error)
	require.NoError(t, db.Create(&models.ActorInfo{
		ActorID:    bale.ID,
		Popularity: floatPtr(80),
		ImagePath:  strPtr("/actors/bale.jpg"),
	}).Error)

	west := models.Actor{Name: "Adam West"}
	require.NoError(t, db.Create(&west).Error)
}

func TestSearchMoviesOnly(t *testing.T) {
	db := openTestDB(t)
	seedSearchFixtures(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	service := NewSearchService(sqlDB)
	results, err := service.Search("batman", []SearchKind{SearchKindMovie}, 5)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, res := range results {
		assert.Equal(t, "movie", res.Kind)
		assert.NotZero(t, res.ID)
		assert.Contains(t, strings.ToLower(res.Title), "batman")
	}

	// names starting with the query outrank a mid-name match, and the
	// higher-rated of the two prefix matches comes first
	assert.Equal(t, "The Batman", results[2].Title)
	assert.Equal(t, "Batman Begins", results[0].Title)
	assert.Equal(t, "Batman Returns", results[1].Title)
}

func TestSearchRespectsLimitPerKind(t *testing.T) {
	db := openTestDB(t)
	seedSearchFixtures(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	service := NewSearchService(sqlDB)
	results, err := service.Search("batman", []SearchKind{SearchKindMovie}, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchConcatenatesKindBlocksInRequestOrder(t *testing.T) {
	db := openTestDB(t)
	seedSearchFixtures(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	service := NewSearchService(sqlDB)
	results, err := service.Search("a", []SearchKind{SearchKindActor, SearchKindMovie}, 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	// one contiguous block per kind, actors first as requested
	sawMovie := false
	for _, res := range results {
		if res.Kind == "movie" {
			sawMovie = true
			continue
		}
		assert.False(t, sawMovie, "actor result after the movie block started")
	}
	assert.Equal(t, "actor", results[0].Kind)
}

func TestSearchCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	seedSearchFixtures(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	service := NewSearchService(sqlDB)
	upper, err := service.Search("BATMAN", []SearchKind{SearchKindMovie}, 10)
	require.NoError(t, err)
	lower, err := service.Search("batman", []SearchKind{SearchKindMovie}, 10)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestSearchImageURLNullableWhenAssociationAbsent(t *testing.T) {
	db := openTestDB(t)
	seedSearchFixtures(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	service := NewSearchService(sqlDB)

	actors, err := service.Search("west", []SearchKind{SearchKindActor}, 5)
	require.NoError(t, err)
	require.Len(t, actors, 1)
	assert.Nil(t, actors[0].ImageURL, "actor without info has null imageUrl")

	bale, err := service.Search("bale", []SearchKind{SearchKindActor}, 5)
	require.NoError(t, err)
	require.Len(t, bale, 1)
	require.NotNil(t, bale[0].ImageURL)
	assert.Equal(t, "/actors/bale.jpg", *bale[0].ImageURL)

	movies, err := service.Search("superman", []SearchKind{SearchKindMovie}, 5)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Nil(t, movies[0].ImageURL, "movie without poster has null imageUrl")
}

func TestSearchNoMatches(t *testing.T) {
	db := openTestDB(t)
	seedSearchFixtures(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	service := NewSearchService(sqlDB)
	results, err := service.Search("zzzzz", []SearchKind{SearchKindMovie, SearchKindActor}, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results, "empty search renders as [], not null")
}
