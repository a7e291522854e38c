package database

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// MoviePreview is the narrow projection used by the random, top-rated,
// latest and per-id preview endpoints. It is scanned straight from a
// movies/posters join without touching the aggregate machinery.
type MoviePreview struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	ReleaseYear *int     `json:"release_year,omitempty"`
	Description *string  `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	PosterID    *uint    `json:"poster_id,omitempty"`
	PosterLink  *string  `json:"poster_link,omitempty"`
}

func previewSelect() sq.SelectBuilder {
	return psql.Select(
		"m.id", "m.name", "m.release_year", "m.description", "m.rating",
		"p.id", "p.link",
	).
		From("movies m").
		LeftJoin("posters p ON p.movie_id = m.id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMoviePreview(row rowScanner) (MoviePreview, error) {
	var mp MoviePreview
	err := row.Scan(&mp.ID, &mp.Name, &mp.ReleaseYear, &mp.Description, &mp.Rating, &mp.PosterID, &mp.PosterLink)
	return mp, err
}

// GetMoviePreviewByID retrieves the preview projection for a single movie
func GetMoviePreviewByID(db *sql.DB, movieID uint) (MoviePreview, error) {
	queryBuilder := previewSelect().
		Where(sq.Eq{"m.id": movieID}).
		Limit(1)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return MoviePreview{}, fmt.Errorf("failed to build SQL for GetMoviePreviewByID: %w", err)
	}

	mp, err := scanMoviePreview(db.QueryRow(sqlStr, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return MoviePreview{}, sql.ErrNoRows
		}
		return MoviePreview{}, fmt.Errorf("failed to query or scan movie preview for ID %d: %w", movieID, err)
	}
	return mp, nil
}

// ListTopRatedPreviews retrieves up to limit previews ordered by rating
// descending. Unrated movies are excluded.
func ListTopRatedPreviews(db *sql.DB, limit int) ([]MoviePreview, error) {
	queryBuilder := previewSelect().
		Where("m.rating IS NOT NULL").
		OrderBy("m.rating DESC", "m.id ASC").
		Limit(uint64(limit))

	return listPreviews(db, queryBuilder, "ListTopRatedPreviews")
}

// ListLatestPreviews retrieves up to limit previews ordered by release year
// descending; movies without a year sort last.
func ListLatestPreviews(db *sql.DB, limit int) ([]MoviePreview, error) {
	queryBuilder := previewSelect().
		OrderBy("m.release_year IS NULL", "m.release_year DESC", "m.id DESC").
		Limit(uint64(limit))

	return listPreviews(db, queryBuilder, "ListLatestPreviews")
}

func listPreviews(db *sql.DB, queryBuilder sq.SelectBuilder, op string) ([]MoviePreview, error) {
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for %s: %w", op, err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s query: %w", op, err)
	}
	defer rows.Close()

	var previews []MoviePreview
	for rows.Next() {
		mp, err := scanMoviePreview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row in %s: %w", op, err)
		}
		previews = append(previews, mp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", op, err)
	}
	return previews, nil
}

// CountMoviesWithMinRating counts movies whose rating meets the threshold
func CountMoviesWithMinRating(db *sql.DB, minRating float64) (int64, error) {
	queryBuilder := psql.Select("COUNT(*)").
		From("movies").
		Where(sq.GtOrEq{"rating": minRating})

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for CountMoviesWithMinRating: %w", err)
	}

	var count int64
	if err := db.QueryRow(sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movies with rating >= %v: %w", minRating, err)
	}
	return count, nil
}

// GetMovieIDAtRatingOffset returns the id of the row at ordinal position
// offset, under id-ascending order, among movies meeting the rating
// threshold. Returns sql.ErrNoRows when the offset is past the end, which
// can happen when qualifying rows are deleted between a count and this call.
func GetMovieIDAtRatingOffset(db *sql.DB, minRating float64, offset int64) (uint, error) {
	queryBuilder := psql.Select("id").
		From("movies").
		Where(sq.GtOrEq{"rating": minRating}).
		OrderBy("id ASC").
		Offset(uint64(offset)).
		Limit(1)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for GetMovieIDAtRatingOffset: %w", err)
	}

	var id uint
	err = db.QueryRow(sqlStr, args...).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, sql.ErrNoRows
		}
		return 0, fmt.Errorf("failed to query movie id at offset %d: %w", offset, err)
	}
	return id, nil
}
