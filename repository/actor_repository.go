package repository

import (
	"fmt"

	"github.com/camden-git/filmcatalogbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormActorRepository handles database operations for Actor and ActorInfo
// entities
type GormActorRepository struct {
	DB *gorm.DB
}

// NewGormActorRepository creates a new instance of GormActorRepository
func NewGormActorRepository(db *gorm.DB) ActorRepositoryInterface {
	return &GormActorRepository{DB: db}
}

// GetByID retrieves an actor with its optional detail record preloaded
func (r *GormActorRepository) GetByID(id uint) (*models.Actor, error) {
	var actor models.Actor
	err := r.DB.Preload("Info").First(&actor, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get actor by ID %d: %w", id, err)
	}
	return &actor, nil
}

// GetInfo retrieves the detail record for an actor
func (r *GormActorRepository) GetInfo(actorID uint) (*models.ActorInfo, error) {
	var info models.ActorInfo
	err := r.DB.First(&info, "actor_id = ?", actorID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get actor info for actor %d: %w", actorID, err)
	}
	return &info, nil
}

// ListInfos retrieves a page of actor detail records ordered by actor id
func (r *GormActorRepository) ListInfos(page, size int) ([]models.ActorInfo, error) {
	var infos []models.ActorInfo
	err := r.DB.Order("actor_id ASC").Offset(page * size).Limit(size).Find(&infos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list actor infos: %w", err)
	}
	return infos, nil
}

// UpsertInfo creates or overwrites the detail record for an existing actor.
// The actor itself must already exist.
func (r *GormActorRepository) UpsertInfo(info *models.ActorInfo) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var actor models.Actor
		if err := tx.First(&actor, info.ActorID).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "actor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"biography", "place_of_birth", "birthday", "deathday",
				"gender", "popularity", "image_path",
			}),
		}).Create(info).Error
	})
}
