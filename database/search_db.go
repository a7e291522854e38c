package database

import (
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// SearchHit is one partial-match row for a single entity kind. ImageURL is
// the poster link for movies and the info image path for actors; it is nil
// when the optional association is absent.
type SearchHit struct {
	ID       uint
	Title    string
	ImageURL *string
}

// SQLite has no trigram similarity, so relevance is approximated by the
// position of the match inside the name (earlier is better), with the
// kind's popularity metric as tie-break.

// SearchMovies finds movies whose name contains the query,
// case-insensitively, capped at limit and ordered by relevance then rating.
func SearchMovies(db *sql.DB, query string, limit int) ([]SearchHit, error) {
	lowered := strings.ToLower(query)
	queryBuilder := psql.Select("m.id", "m.name", "p.link").
		From("movies m").
		LeftJoin("posters p ON p.movie_id = m.id").
		Where("LOWER(m.name) LIKE ?", "%"+lowered+"%").
		OrderByClause("INSTR(LOWER(m.name), ?) ASC", lowered).
		OrderBy("m.rating IS NULL", "m.rating DESC", "m.id ASC").
		Limit(uint64(limit))

	return listSearchHits(db, queryBuilder, "SearchMovies")
}

// SearchActors finds actors whose name contains the query,
// case-insensitively, capped at limit and ordered by relevance then
// popularity.
func SearchActors(db *sql.DB, query string, limit int) ([]SearchHit, error) {
	lowered := strings.ToLower(query)
	queryBuilder := psql.Select("a.id", "a.name", "ai.image_path").
		From("actors a").
		LeftJoin("actor_infos ai ON ai.actor_id = a.id").
		Where("LOWER(a.name) LIKE ?", "%"+lowered+"%").
		OrderByClause("INSTR(LOWER(a.name), ?) ASC", lowered).
		OrderBy("ai.popularity IS NULL", "ai.popularity DESC", "a.id ASC").
		Limit(uint64(limit))

	return listSearchHits(db, queryBuilder, "SearchActors")
}

func listSearchHits(db *sql.DB, queryBuilder sq.SelectBuilder, op string) ([]SearchHit, error) {
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for %s: %w", op, err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s query: %w", op, err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var h SearchHit
		if err := rows.Scan(&h.ID, &h.Title, &h.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan row in %s: %w", op, err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", op, err)
	}
	return hits, nil
}
