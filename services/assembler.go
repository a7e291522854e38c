package services

import (
	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/camden-git/filmcatalogbackend/repository"
)

// Assembler reconstructs one fully populated movie aggregate from several
// narrow repository passes. Fetching everything in a single join would
// cross-multiply the cast, crew and release rows, so each independent
// collection is read on its own and merged onto a single canonical object
// keyed by the movie id.
//
// The passes are plain read-committed queries, not one transaction: under
// concurrent writers different collections may reflect slightly different
// points in time.
type Assembler struct {
	Movies repository.MovieRepositoryInterface
}

// NewAssembler creates a new instance of Assembler
func NewAssembler(movies repository.MovieRepositoryInterface) *Assembler {
	return &Assembler{Movies: movies}
}

// Assemble returns the movie aggregate with poster, themes, releases,
// cast, crew and all four lookup associations populated. It fails with
// ErrNotFound as soon as the base pass finds no row; later passes hitting
// a concurrent delete surface the same error.
func (a *Assembler) Assemble(movieID uint) (*models.Movie, error) {
	base, err := a.Movies.FetchBase(movieID)
	if err != nil {
		if isNoRow(err) {
			return nil, notFoundf("movie %d", movieID)
		}
		return nil, err
	}

	builder := newAggregateBuilder(base)

	passes := []struct {
		fetch func(uint) (*models.Movie, error)
		apply func(dst, src *models.Movie)
	}{
		{a.Movies.FetchCast, func(dst, src *models.Movie) { dst.Cast = src.Cast }},
		{a.Movies.FetchCrew, func(dst, src *models.Movie) { dst.Crew = src.Crew }},
		{a.Movies.FetchGenres, func(dst, src *models.Movie) { dst.Genres = src.Genres }},
		{a.Movies.FetchStudios, func(dst, src *models.Movie) { dst.Studios = src.Studios }},
		{a.Movies.FetchCountries, func(dst, src *models.Movie) { dst.Countries = src.Countries }},
		{a.Movies.FetchLanguages, func(dst, src *models.Movie) { dst.Languages = src.Languages }},
	}

	for _, pass := range passes {
		partial, err := pass.fetch(movieID)
		if err != nil {
			if isNoRow(err) {
				return nil, notFoundf("movie %d", movieID)
			}
			return nil, err
		}
		builder.merge(partial, pass.apply)
	}

	return builder.get(movieID), nil
}

// aggregateBuilder is an explicit identity map from movie id to the
// in-progress aggregate. Every pass merges by identity, never by position,
// and contributes only the collection it targeted, so collections filled by
// earlier passes are never overwritten with empty values.
type aggregateBuilder struct {
	byID map[uint]*models.Movie
}

func newAggregateBuilder(base *models.Movie) *aggregateBuilder {
	return &aggregateBuilder{byID: map[uint]*models.Movie{base.ID: base}}
}

func (b *aggregateBuilder) merge(partial *models.Movie, apply func(dst, src *models.Movie)) {
	canonical, ok := b.byID[partial.ID]
	if !ok {
		b.byID[partial.ID] = partial
		return
	}
	apply(canonical, partial)
}

func (b *aggregateBuilder) get(movieID uint) *models.Movie {
	return b.byID[movieID]
}
