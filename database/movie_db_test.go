package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) (*gorm.DB, *sql.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "catalog_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrateModels(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	return db, sqlDB
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func seedRatedMovies(t *testing.T, db *gorm.DB) []models.Movie {
	t.Helper()
	movies := []models.Movie{
		{Name: "First", ReleaseYear: intPtr(1994), Rating: floatPtr(4.7)},
		{Name: "Second", ReleaseYear: intPtr(2008), Rating: floatPtr(4.9)},
		{Name: "Third", ReleaseYear: intPtr(2021), Rating: floatPtr(3.2)},
		{Name: "Unrated", Rating: nil},
	}
	require.NoError(t, db.Create(&movies).Error)
	return movies
}

func TestGetMoviePreviewByID(t *testing.T) {
	db, sqlDB := openTestDB(t)
	movies := seedRatedMovies(t, db)
	require.NoError(t, db.Create(&models.Poster{MovieID: movies[0].ID, Link: "/posters/first.jpg"}).Error)

	preview, err := GetMoviePreviewByID(sqlDB, movies[0].ID)
	require.NoError(t, err)
	assert.Equal(t, movies[0].ID, preview.ID)
	assert.Equal(t, "First", preview.Name)
	require.NotNil(t, preview.PosterLink)
	assert.Equal(t, "/posters/first.jpg", *preview.PosterLink)

	// poster columns stay null when the movie has no poster
	bare, err := GetMoviePreviewByID(sqlDB, movies[1].ID)
	require.NoError(t, err)
	assert.Nil(t, bare.PosterID)
	assert.Nil(t, bare.PosterLink)

	_, err = GetMoviePreviewByID(sqlDB, 99999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListTopRatedPreviews(t *testing.T) {
	db, sqlDB := openTestDB(t)
	seedRatedMovies(t, db)

	previews, err := ListTopRatedPreviews(sqlDB, 10)
	require.NoError(t, err)
	require.Len(t, previews, 3, "unrated movies are excluded")
	assert.Equal(t, "Second", previews[0].Name)
	assert.Equal(t, "First", previews[1].Name)
	assert.Equal(t, "Third", previews[2].Name)

	capped, err := ListTopRatedPreviews(sqlDB, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestListLatestPreviews(t *testing.T) {
	db, sqlDB := openTestDB(t)
	seedRatedMovies(t, db)

	previews, err := ListLatestPreviews(sqlDB, 10)
	require.NoError(t, err)
	require.Len(t, previews, 4)
	assert.Equal(t, "Third", previews[0].Name)
	assert.Equal(t, "Second", previews[1].Name)
	assert.Equal(t, "First", previews[2].Name)
	assert.Equal(t, "Unrated", previews[3].Name, "movies without a year sort last")
}

func TestCountMoviesWithMinRating(t *testing.T) {
	db, sqlDB := openTestDB(t)
	seedRatedMovies(t, db)

	count, err := CountMoviesWithMinRating(sqlDB, 4.0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = CountMoviesWithMinRating(sqlDB, 5.0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestGetMovieIDAtRatingOffset(t *testing.T) {
	db, sqlDB := openTestDB(t)
	movies := seedRatedMovies(t, db)

	// qualifying rows in id-ascending order: First, Second
	id, err := GetMovieIDAtRatingOffset(sqlDB, 4.0, 0)
	require.NoError(t, err)
	assert.Equal(t, movies[0].ID, id)

	id, err = GetMovieIDAtRatingOffset(sqlDB, 4.0, 1)
	require.NoError(t, err)
	assert.Equal(t, movies[1].ID, id)

	_, err = GetMovieIDAtRatingOffset(sqlDB, 4.0, 2)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
