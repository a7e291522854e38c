package services

import (
	"path/filepath"
	"testing"

	"github.com/camden-git/filmcatalogbackend/database"
	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a fresh SQLite database on a per-test temp file so the
// GORM pool and the raw sql.DB handle observe the same data.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "catalog_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(db))
	return db
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func seedMovie(t *testing.T, db *gorm.DB, name string, rating *float64) *models.Movie {
	t.Helper()
	movie := models.Movie{Name: name, Rating: rating}
	require.NoError(t, db.Create(&movie).Error)
	return &movie
}

func seedGenre(t *testing.T, db *gorm.DB, name string) models.Genre {
	t.Helper()
	genre := models.Genre{Name: name}
	require.NoError(t, db.Create(&genre).Error)
	return genre
}
