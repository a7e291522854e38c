package services

import (
	"testing"
	"time"

	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/camden-git/filmcatalogbackend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFullMovie(t *testing.T, db *gorm.DB) *models.Movie {
	t.Helper()

	movie := models.Movie{
		Name:        "Inception",
		ReleaseYear: intPtr(2010),
		Tagline:     strPtr("Your mind is the scene of the crime"),
		Description: strPtr("A thief who steals secrets through dreams"),
		Minutes:     intPtr(148),
		Rating:      floatPtr(4.5),
	}
	require.NoError(t, db.Create(&movie).Error)

	require.NoError(t, db.Create(&models.Poster{MovieID: movie.ID, Link: "/posters/inception.jpg"}).Error)
	require.NoError(t, db.Create(&models.Theme{MovieID: movie.ID, Text: "dreams"}).Error)
	require.NoError(t, db.Create(&models.Theme{MovieID: movie.ID, Text: "heist"}).Error)

	actor := models.Actor{Name: "Leonardo DiCaprio"}
	require.NoError(t, db.Create(&actor).Error)
	require.NoError(t, db.Create(&models.ActorInfo{
		ActorID:    actor.ID,
		Popularity: floatPtr(98.7),
		ImagePath:  strPtr("/actors/leo.jpg"),
	}).Error)
	require.NoError(t, db.Create(&models.CastCredit{MovieID: movie.ID, ActorID: actor.ID, Role: "Cobb"}).Error)

	person := models.Person{Name: "Christopher Nolan"}
	require.NoError(t, db.Create(&person).Error)
	role := models.Role{Name: "Director"}
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Create(&models.CrewCredit{MovieID: movie.ID, RoleID: role.ID, PersonID: person.ID}).Error)

	country := models.Country{Name: "United States"}
	require.NoError(t, db.Create(&country).Error)
	releaseDate := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Release{
		MovieID:   movie.ID,
		CountryID: &country.ID,
		Date:      &releaseDate,
		Type:      "Theatrical",
		Rating:    "PG-13",
	}).Error)

	genres := []models.Genre{{Name: "Action"}, {Name: "Sci-Fi"}}
	require.NoError(t, db.Create(&genres).Error)
	studio := models.Studio{Name: "Warner Bros"}
	require.NoError(t, db.Create(&studio).Error)
	language := models.Language{Name: "English"}
	require.NoError(t, db.Create(&language).Error)

	require.NoError(t, db.Model(&movie).Association("Genres").Append(&genres))
	require.NoError(t, db.Model(&movie).Association("Studios").Append(&studio))
	require.NoError(t, db.Model(&movie).Association("Countries").Append(&country))
	require.NoError(t, db.Model(&movie).Association("Languages").Append(&language))

	return &movie
}

func TestAssembleFullAggregate(t *testing.T) {
	db := openTestDB(t)
	movie := seedFullMovie(t, db)

	assembler := NewAssembler(repository.NewGormMovieRepository(db))
	got, err := assembler.Assemble(movie.ID)
	require.NoError(t, err)

	assert.Equal(t, movie.ID, got.ID)
	assert.Equal(t, "Inception", got.Name)
	require.NotNil(t, got.Poster)
	assert.Equal(t, "/posters/inception.jpg", got.Poster.Link)
	assert.Len(t, got.Themes, 2)

	require.Len(t, got.Cast, 1)
	require.NotNil(t, got.Cast[0].Actor)
	assert.Equal(t, "Leonardo DiCaprio", got.Cast[0].Actor.Name)
	require.NotNil(t, got.Cast[0].Actor.Info)
	assert.Equal(t, "/actors/leo.jpg", *got.Cast[0].Actor.Info.ImagePath)
	assert.Equal(t, "Cobb", got.Cast[0].Role)

	require.Len(t, got.Crew, 1)
	require.NotNil(t, got.Crew[0].Person)
	assert.Equal(t, "Christopher Nolan", got.Crew[0].Person.Name)
	require.NotNil(t, got.Crew[0].Role)
	assert.Equal(t, "Director", got.Crew[0].Role.Name)

	require.Len(t, got.Releases, 1)
	require.NotNil(t, got.Releases[0].Country)
	assert.Equal(t, "United States", got.Releases[0].Country.Name)
	assert.Equal(t, "PG-13", got.Releases[0].Rating)

	assert.Len(t, got.Genres, 2)
	assert.Len(t, got.Studios, 1)
	assert.Len(t, got.Countries, 1)
	assert.Len(t, got.Languages, 1)

	// association sets carry no duplicate members
	seen := map[uint]bool{}
	for _, g := range got.Genres {
		assert.False(t, seen[g.ID], "duplicate genre %d", g.ID)
		seen[g.ID] = true
	}
}

func TestAssembleLaterPassKeepsEarlierCollections(t *testing.T) {
	db := openTestDB(t)
	movie := seedFullMovie(t, db)

	assembler := NewAssembler(repository.NewGormMovieRepository(db))
	got, err := assembler.Assemble(movie.ID)
	require.NoError(t, err)

	// the base pass populated themes and releases; the six later passes
	// must not have reset them to empty
	assert.NotEmpty(t, got.Themes)
	assert.NotEmpty(t, got.Releases)
	assert.NotNil(t, got.Poster)
}

func TestAssembleNotFound(t *testing.T) {
	db := openTestDB(t)

	assembler := NewAssembler(repository.NewGormMovieRepository(db))
	_, err := assembler.Assemble(12345)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssembleEmptyCollectionsAreNotErrors(t *testing.T) {
	db := openTestDB(t)
	movie := seedMovie(t, db, "Bare Bones", nil)

	assembler := NewAssembler(repository.NewGormMovieRepository(db))
	got, err := assembler.Assemble(movie.ID)
	require.NoError(t, err)

	assert.Nil(t, got.Poster)
	assert.Empty(t, got.Cast)
	assert.Empty(t, got.Crew)
	assert.Empty(t, got.Genres)
	assert.Empty(t, got.Studios)
	assert.Empty(t, got.Countries)
	assert.Empty(t, got.Languages)
}
