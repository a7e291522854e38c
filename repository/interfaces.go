package repository

import (
	"github.com/camden-git/filmcatalogbackend/models"
)

// MovieRepositoryInterface defines the methods for movie data operations.
// The Fetch* methods are the narrow per-collection passes used by the
// aggregate assembler: each returns the movie root with exactly one
// collection populated so the passes never multiply against each other.
type MovieRepositoryInterface interface {
	Create(movie *models.Movie) error
	GetByID(id uint) (*models.Movie, error)
	UpdateScalars(movie *models.Movie) error
	Delete(id uint) error

	FetchBase(id uint) (*models.Movie, error)
	FetchCast(id uint) (*models.Movie, error)
	FetchCrew(id uint) (*models.Movie, error)
	FetchGenres(id uint) (*models.Movie, error)
	FetchStudios(id uint) (*models.Movie, error)
	FetchCountries(id uint) (*models.Movie, error)
	FetchLanguages(id uint) (*models.Movie, error)

	// full-replacement of one lookup-association set, atomic per call
	ReplaceGenres(movieID uint, memberIDs []uint) ([]models.Genre, error)
	ReplaceStudios(movieID uint, memberIDs []uint) ([]models.Studio, error)
	ReplaceCountries(movieID uint, memberIDs []uint) ([]models.Country, error)
	ReplaceLanguages(movieID uint, memberIDs []uint) ([]models.Language, error)
}

// LookupRepositoryInterface defines CRUD over the shared lookup tables
type LookupRepositoryInterface interface {
	ListGenres() ([]models.Genre, error)
	CreateGenre(genre *models.Genre) error
	DeleteGenre(id uint) error

	ListStudios() ([]models.Studio, error)
	CreateStudio(studio *models.Studio) error
	DeleteStudio(id uint) error

	ListCountries() ([]models.Country, error)
	CreateCountry(country *models.Country) error
	DeleteCountry(id uint) error

	ListLanguages() ([]models.Language, error)
	CreateLanguage(language *models.Language) error
	DeleteLanguage(id uint) error

	ListRoles() ([]models.Role, error)
	CreateRole(role *models.Role) error
	DeleteRole(id uint) error
}

// ActorRepositoryInterface defines the methods for actor data operations
type ActorRepositoryInterface interface {
	GetByID(id uint) (*models.Actor, error)
	GetInfo(actorID uint) (*models.ActorInfo, error)
	ListInfos(page, size int) ([]models.ActorInfo, error)
	UpsertInfo(info *models.ActorInfo) error
}

// AwardRepositoryInterface defines read access to the award facts
type AwardRepositoryInterface interface {
	ListByActorID(actorID uint) ([]models.OscarAward, error)
	ListByMovieID(movieID uint) ([]models.OscarAward, error)
}

// ReviewRepositoryInterface defines read access to the critic reviews
type ReviewRepositoryInterface interface {
	ListByMovieID(movieID uint) ([]models.ReviewMovie, error)
}
