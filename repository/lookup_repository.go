package repository

import (
	"fmt"

	"github.com/camden-git/filmcatalogbackend/models"
	"gorm.io/gorm"
)

// GormLookupRepository handles database operations for the shared lookup
// tables (genres, studios, countries, languages, roles)
type GormLookupRepository struct {
	DB *gorm.DB
}

// NewGormLookupRepository creates a new instance of GormLookupRepository
func NewGormLookupRepository(db *gorm.DB) LookupRepositoryInterface {
	return &GormLookupRepository{DB: db}
}

func (r *GormLookupRepository) ListGenres() ([]models.Genre, error) {
	var genres []models.Genre
	err := r.DB.Order("name ASC").Find(&genres).Error
	return genres, err
}

func (r *GormLookupRepository) CreateGenre(genre *models.Genre) error {
	return r.DB.Create(genre).Error
}

func (r *GormLookupRepository) DeleteGenre(id uint) error {
	return r.deleteByID(&models.Genre{}, id, "genre", "genres_movies", "genre_id")
}

func (r *GormLookupRepository) ListStudios() ([]models.Studio, error) {
	var studios []models.Studio
	err := r.DB.Order("name ASC").Find(&studios).Error
	return studios, err
}

func (r *GormLookupRepository) CreateStudio(studio *models.Studio) error {
	return r.DB.Create(studio).Error
}

func (r *GormLookupRepository) DeleteStudio(id uint) error {
	return r.deleteByID(&models.Studio{}, id, "studio", "studios_movies", "studio_id")
}

func (r *GormLookupRepository) ListCountries() ([]models.Country, error) {
	var countries []models.Country
	err := r.DB.Order("name ASC").Find(&countries).Error
	return countries, err
}

func (r *GormLookupRepository) CreateCountry(country *models.Country) error {
	return r.DB.Create(country).Error
}

func (r *GormLookupRepository) DeleteCountry(id uint) error {
	return r.deleteByID(&models.Country{}, id, "country", "countries_movies", "country_id")
}

func (r *GormLookupRepository) ListLanguages() ([]models.Language, error) {
	var languages []models.Language
	err := r.DB.Order("name ASC").Find(&languages).Error
	return languages, err
}

func (r *GormLookupRepository) CreateLanguage(language *models.Language) error {
	return r.DB.Create(language).Error
}

func (r *GormLookupRepository) DeleteLanguage(id uint) error {
	return r.deleteByID(&models.Language{}, id, "language", "languages_movies", "language_id")
}

func (r *GormLookupRepository) ListRoles() ([]models.Role, error) {
	var roles []models.Role
	err := r.DB.Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *GormLookupRepository) CreateRole(role *models.Role) error {
	return r.DB.Create(role).Error
}

func (r *GormLookupRepository) DeleteRole(id uint) error {
	return r.deleteByID(&models.Role{}, id, "role", "movie_role_person", "role_id")
}

// deleteByID removes the lookup row and every join-table row that points at
// it, so movies referencing the deleted value simply lose that membership.
func (r *GormLookupRepository) deleteByID(model interface{}, id uint, kind, joinTable, joinColumn string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+joinTable+" WHERE "+joinColumn+" = ?", id).Error; err != nil {
			return fmt.Errorf("failed to detach %s %d: %w", kind, id, err)
		}
		result := tx.Delete(model, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete %s %d: %w", kind, id, result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
