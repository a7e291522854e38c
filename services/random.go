package services

import (
	"database/sql"
	"math/rand"

	"github.com/camden-git/filmcatalogbackend/database"
)

// RandomPicker selects one movie uniformly at random among those meeting
// the configured rating threshold, using a count-then-offset strategy so
// the table is never loaded wholesale. The two queries are deliberately not
// wrapped in a transaction; a concurrent delete between them is handled by
// a single clamped retry.
type RandomPicker struct {
	DB        *sql.DB
	MinRating float64
}

// NewRandomPicker creates a new instance of RandomPicker
func NewRandomPicker(db *sql.DB, minRating float64) *RandomPicker {
	return &RandomPicker{DB: db, MinRating: minRating}
}

// PickRandomHighRated returns the preview of a uniformly chosen qualifying
// movie, or ErrNotFound when no movie meets the threshold
func (p *RandomPicker) PickRandomHighRated() (database.MoviePreview, error) {
	count, err := database.CountMoviesWithMinRating(p.DB, p.MinRating)
	if err != nil {
		return database.MoviePreview{}, err
	}
	if count == 0 {
		return database.MoviePreview{}, notFoundf("no movie rated %.1f or higher", p.MinRating)
	}

	offset := rand.Int63n(count)
	movieID, err := database.GetMovieIDAtRatingOffset(p.DB, p.MinRating, offset)
	if err == sql.ErrNoRows {
		// qualifying rows disappeared between count and fetch; retry once
		// with the offset clamped to the refreshed count
		movieID, err = p.retryClamped(offset)
	}
	if err != nil {
		if isNoRow(err) {
			return database.MoviePreview{}, notFoundf("no movie rated %.1f or higher", p.MinRating)
		}
		return database.MoviePreview{}, err
	}

	preview, err := database.GetMoviePreviewByID(p.DB, movieID)
	if err != nil {
		if isNoRow(err) {
			return database.MoviePreview{}, notFoundf("movie %d", movieID)
		}
		return database.MoviePreview{}, err
	}
	return preview, nil
}

func (p *RandomPicker) retryClamped(offset int64) (uint, error) {
	count, err := database.CountMoviesWithMinRating(p.DB, p.MinRating)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, sql.ErrNoRows
	}
	if offset > count-1 {
		offset = count - 1
	}
	return database.GetMovieIDAtRatingOffset(p.DB, p.MinRating, offset)
}
