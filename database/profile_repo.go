package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindFirst returns the site profile, or nil when none has been created yet.
func (r *ProfileRepo) FindFirst(ctx context.Context) (*models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).Order("created_at ASC").Limit(1).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

// FindByID returns gorm.ErrRecordNotFound when no profile has the id.
func (r *ProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepo) Add(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	return updateAll(r.db.WithContext(ctx), profile)
}
