package services

import (
	"database/sql"

	"github.com/camden-git/filmcatalogbackend/database"
)

// SearchKind names a searchable entity type
type SearchKind string

const (
	SearchKindMovie SearchKind = "movie"
	SearchKindActor SearchKind = "actor"
)

// ParseSearchKind validates a kind identifier from a request parameter
func ParseSearchKind(s string) (SearchKind, bool) {
	switch SearchKind(s) {
	case SearchKindMovie, SearchKindActor:
		return SearchKind(s), true
	}
	return "", false
}

// SearchService fans a text query out to one partial-match query per
// requested entity kind and concatenates the per-kind blocks in the order
// the kinds were requested. Each block is internally ranked by relevance;
// there is no cross-kind re-ranking.
type SearchService struct {
	DB *sql.DB
}

// NewSearchService creates a new instance of SearchService
func NewSearchService(db *sql.DB) *SearchService {
	return &SearchService{DB: db}
}

// Search returns up to limit results per requested kind. Every result has
// a non-zero id; imageUrl is null when the kind's optional image
// association (movie poster, actor info) is absent.
func (s *SearchService) Search(query string, kinds []SearchKind, limit int) ([]SearchResult, error) {
	results := make([]SearchResult, 0)

	for _, kind := range kinds {
		var (
			hits []database.SearchHit
			err  error
		)
		switch kind {
		case SearchKindMovie:
			hits, err = database.SearchMovies(s.DB, query, limit)
		case SearchKindActor:
			hits, err = database.SearchActors(s.DB, query, limit)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, hit := range hits {
			results = append(results, SearchResult{
				ID:       hit.ID,
				Kind:     string(kind),
				Title:    hit.Title,
				ImageURL: hit.ImageURL,
			})
		}
	}

	return results, nil
}
