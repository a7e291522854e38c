package repository

import (
	"fmt"
	"reflect"

	"github.com/camden-git/filmcatalogbackend/models"
	"gorm.io/gorm"
)

// GormMovieRepository handles database operations for Movie entities
type GormMovieRepository struct {
	DB *gorm.DB
}

// NewGormMovieRepository creates a new instance of GormMovieRepository
func NewGormMovieRepository(db *gorm.DB) MovieRepositoryInterface {
	return &GormMovieRepository{DB: db}
}

// Create creates a new movie record with its scalar fields. Associations
// are attached afterwards through the replace methods.
func (r *GormMovieRepository) Create(movie *models.Movie) error {
	if err := r.DB.Omit("Genres", "Studios", "Countries", "Languages").Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie %s: %w", movie.Name, err)
	}
	return nil
}

// GetByID retrieves the movie scalar row by its ID
func (r *GormMovieRepository) GetByID(id uint) (*models.Movie, error) {
	var movie models.Movie
	err := r.DB.First(&movie, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get movie by ID %d: %w", id, err)
	}
	return &movie, nil
}

// UpdateScalars updates the movie's scalar columns only, leaving every
// owned collection and association untouched
func (r *GormMovieRepository) UpdateScalars(movie *models.Movie) error {
	result := r.DB.Model(&models.Movie{}).
		Where("id = ?", movie.ID).
		Select("name", "release_year", "tagline", "description", "minutes", "rating").
		Updates(map[string]interface{}{
			"name":         movie.Name,
			"release_year": movie.ReleaseYear,
			"tagline":      movie.Tagline,
			"description":  movie.Description,
			"minutes":      movie.Minutes,
			"rating":       movie.Rating,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update movie %d: %w", movie.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a movie and every child it owns (poster, themes, cast,
// crew, releases) plus its join-table memberships. Referenced lookup rows
// are left untouched.
func (r *GormMovieRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.First(&movie, id).Error; err != nil {
			return err
		}

		for _, assoc := range []string{"Genres", "Studios", "Countries", "Languages"} {
			if err := tx.Model(&movie).Association(assoc).Clear(); err != nil {
				return fmt.Errorf("failed to clear %s for movie %d: %w", assoc, id, err)
			}
		}

		ownedChildren := []interface{}{
			&models.Poster{},
			&models.Theme{},
			&models.CastCredit{},
			&models.CrewCredit{},
			&models.Release{},
		}
		for _, child := range ownedChildren {
			if err := tx.Where("movie_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("failed to delete owned rows for movie %d: %w", id, err)
			}
		}

		return tx.Delete(&models.Movie{}, id).Error
	})
}

// FetchBase retrieves the movie scalars together with the collections that
// do not multiply against each other: poster, themes and releases (with
// their country). Cast, crew and the lookup associations are fetched in
// their own passes.
func (r *GormMovieRepository) FetchBase(id uint) (*models.Movie, error) {
	var movie models.Movie
	err := r.DB.
		Preload("Poster").
		Preload("Themes").
		Preload("Releases.Country").
		First(&movie, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch base aggregate for movie %d: %w", id, err)
	}
	return &movie, nil
}

// FetchCast retrieves the movie with only its cast populated, including the
// nested actor and optional actor-info join
func (r *GormMovieRepository) FetchCast(id uint) (*models.Movie, error) {
	return r.fetchWith(id, "cast", func(db *gorm.DB) *gorm.DB {
		return db.Preload("Cast.Actor.Info")
	})
}

// FetchCrew retrieves the movie with only its crew populated, including the
// nested person and role-lookup join
func (r *GormMovieRepository) FetchCrew(id uint) (*models.Movie, error) {
	return r.fetchWith(id, "crew", func(db *gorm.DB) *gorm.DB {
		return db.Preload("Crew.Person").Preload("Crew.Role")
	})
}

func (r *GormMovieRepository) FetchGenres(id uint) (*models.Movie, error) {
	return r.fetchWith(id, "genres", func(db *gorm.DB) *gorm.DB {
		return db.Preload("Genres")
	})
}

func (r *GormMovieRepository) FetchStudios(id uint) (*models.Movie, error) {
	return r.fetchWith(id, "studios", func(db *gorm.DB) *gorm.DB {
		return db.Preload("Studios")
	})
}

func (r *GormMovieRepository) FetchCountries(id uint) (*models.Movie, error) {
	return r.fetchWith(id, "countries", func(db *gorm.DB) *gorm.DB {
		return db.Preload("Countries")
	})
}

func (r *GormMovieRepository) FetchLanguages(id uint) (*models.Movie, error) {
	return r.fetchWith(id, "languages", func(db *gorm.DB) *gorm.DB {
		return db.Preload("Languages")
	})
}

func (r *GormMovieRepository) fetchWith(id uint, collection string, preload func(*gorm.DB) *gorm.DB) (*models.Movie, error) {
	var movie models.Movie
	err := preload(r.DB).First(&movie, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch %s for movie %d: %w", collection, id, err)
	}
	return &movie, nil
}

// ReplaceGenres sets the movie's genre membership to exactly the resolved
// subset of memberIDs. The clear+set pair runs in one transaction; ids that
// do not resolve to a genre row are dropped.
func (r *GormMovieRepository) ReplaceGenres(movieID uint, memberIDs []uint) ([]models.Genre, error) {
	var resolved []models.Genre
	err := r.replaceAssociation(movieID, "Genres", memberIDs, &resolved)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// ReplaceStudios sets the movie's studio membership, see ReplaceGenres
func (r *GormMovieRepository) ReplaceStudios(movieID uint, memberIDs []uint) ([]models.Studio, error) {
	var resolved []models.Studio
	err := r.replaceAssociation(movieID, "Studios", memberIDs, &resolved)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// ReplaceCountries sets the movie's country membership, see ReplaceGenres
func (r *GormMovieRepository) ReplaceCountries(movieID uint, memberIDs []uint) ([]models.Country, error) {
	var resolved []models.Country
	err := r.replaceAssociation(movieID, "Countries", memberIDs, &resolved)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// ReplaceLanguages sets the movie's language membership, see ReplaceGenres
func (r *GormMovieRepository) ReplaceLanguages(movieID uint, memberIDs []uint) ([]models.Language, error) {
	var resolved []models.Language
	err := r.replaceAssociation(movieID, "Languages", memberIDs, &resolved)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// replaceAssociation resolves memberIDs against the lookup table backing
// the named association and replaces the movie's membership with the
// result, all inside one transaction so readers never observe the cleared
// intermediate state. resolved must be a pointer to a slice of the lookup
// model.
func (r *GormMovieRepository) replaceAssociation(movieID uint, assoc string, memberIDs []uint, resolved interface{}) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.First(&movie, movieID).Error; err != nil {
			return err
		}

		ids := uniqueIDs(memberIDs)
		if len(ids) > 0 {
			if err := tx.Where("id IN ?", ids).Find(resolved).Error; err != nil {
				return fmt.Errorf("failed to resolve %s ids for movie %d: %w", assoc, movieID, err)
			}
		}

		association := tx.Model(&movie).Association(assoc)
		if reflect.ValueOf(resolved).Elem().Len() == 0 {
			// nothing resolved (or an empty request): clear the membership
			if err := association.Clear(); err != nil {
				return fmt.Errorf("failed to clear %s for movie %d: %w", assoc, movieID, err)
			}
			return nil
		}
		if err := association.Replace(resolved); err != nil {
			return fmt.Errorf("failed to replace %s for movie %d: %w", assoc, movieID, err)
		}
		return nil
	})
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
