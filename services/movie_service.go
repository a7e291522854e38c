package services

import (
	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/camden-git/filmcatalogbackend/repository"
)

// AssociationKind names one of the four replaceable lookup relations on a
// movie. The string values are exactly the identifiers accepted by the
// replace endpoint.
type AssociationKind string

const (
	AssociationGenres    AssociationKind = "genres"
	AssociationStudios   AssociationKind = "studios"
	AssociationCountries AssociationKind = "countries"
	AssociationLanguages AssociationKind = "languages"
)

// ParseAssociationKind validates a kind identifier from a request path
func ParseAssociationKind(s string) (AssociationKind, bool) {
	switch AssociationKind(s) {
	case AssociationGenres, AssociationStudios, AssociationCountries, AssociationLanguages:
		return AssociationKind(s), true
	}
	return "", false
}

// MovieService covers the movie write path: scalar create/update, cascading
// delete, and the full-replacement association editor. Reads go through the
// Assembler.
type MovieService struct {
	Movies repository.MovieRepositoryInterface
}

// NewMovieService creates a new instance of MovieService
func NewMovieService(movies repository.MovieRepositoryInterface) *MovieService {
	return &MovieService{Movies: movies}
}

// Create persists the movie's scalar fields and returns it with its id set
func (s *MovieService) Create(movie *models.Movie) error {
	return s.Movies.Create(movie)
}

// UpdateScalars overwrites the movie's scalar fields, leaving every
// association untouched
func (s *MovieService) UpdateScalars(movie *models.Movie) error {
	err := s.Movies.UpdateScalars(movie)
	if err != nil {
		if isNoRow(err) {
			return notFoundf("movie %d", movie.ID)
		}
		return err
	}
	return nil
}

// Delete removes the movie and cascades to its owned children
func (s *MovieService) Delete(movieID uint) error {
	err := s.Movies.Delete(movieID)
	if err != nil {
		if isNoRow(err) {
			return notFoundf("movie %d", movieID)
		}
		return err
	}
	return nil
}

// ReplaceAssociation sets the movie's membership for one relation kind to
// exactly the resolvable subset of memberIDs. Unresolvable ids contribute
// nothing and are dropped silently; an empty set clears the relation. The
// clear+set pair is atomic per call and the operation is idempotent.
func (s *MovieService) ReplaceAssociation(movieID uint, kind AssociationKind, memberIDs []uint) ([]LookupView, error) {
	var (
		membership []LookupView
		err        error
	)

	switch kind {
	case AssociationGenres:
		var genres []models.Genre
		genres, err = s.Movies.ReplaceGenres(movieID, memberIDs)
		membership = toGenreViews(genres)
	case AssociationStudios:
		var studios []models.Studio
		studios, err = s.Movies.ReplaceStudios(movieID, memberIDs)
		membership = toStudioViews(studios)
	case AssociationCountries:
		var countries []models.Country
		countries, err = s.Movies.ReplaceCountries(movieID, memberIDs)
		membership = toCountryViews(countries)
	case AssociationLanguages:
		var languages []models.Language
		languages, err = s.Movies.ReplaceLanguages(movieID, memberIDs)
		membership = toLanguageViews(languages)
	default:
		return nil, notFoundf("association kind %q", kind)
	}

	if err != nil {
		if isNoRow(err) {
			return nil, notFoundf("movie %d", movieID)
		}
		return nil, err
	}
	return membership, nil
}
