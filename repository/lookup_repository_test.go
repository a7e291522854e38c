package repository

import (
	"path/filepath"
	"testing"

	"github.com/camden-git/filmcatalogbackend/database"
	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestDeleteGenreDetachesMovies(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormLookupRepository(db)

	movie := models.Movie{Name: "Heat"}
	require.NoError(t, db.Create(&movie).Error)
	genres := []models.Genre{{Name: "Crime"}, {Name: "Drama"}}
	require.NoError(t, db.Create(&genres).Error)
	require.NoError(t, db.Model(&movie).Association("Genres").Append(&genres))

	require.NoError(t, repo.DeleteGenre(genres[0].ID))

	var joinCount int64
	require.NoError(t, db.Table("genres_movies").Where("movie_id = ?", movie.ID).Count(&joinCount).Error)
	assert.Equal(t, int64(1), joinCount)

	var remaining []models.Genre
	require.NoError(t, db.Model(&movie).Association("Genres").Find(&remaining))
	require.Len(t, remaining, 1)
	assert.Equal(t, "Drama", remaining[0].Name)
}

func TestDeleteLookupNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormLookupRepository(db)

	err := repo.DeleteStudio(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRoleClearsCrewCredits(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormLookupRepository(db)

	movie := models.Movie{Name: "Heat"}
	require.NoError(t, db.Create(&movie).Error)
	role := models.Role{Name: "Director"}
	require.NoError(t, db.Create(&role).Error)
	person := models.Person{Name: "Michael Mann"}
	require.NoError(t, db.Create(&person).Error)
	require.NoError(t, db.Create(&models.CrewCredit{MovieID: movie.ID, RoleID: role.ID, PersonID: person.ID}).Error)

	require.NoError(t, repo.DeleteRole(role.ID))

	var crewCount int64
	require.NoError(t, db.Model(&models.CrewCredit{}).Where("movie_id = ?", movie.ID).Count(&crewCount).Error)
	assert.Equal(t, int64(0), crewCount)
}
