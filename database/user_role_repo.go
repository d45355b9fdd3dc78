package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRoleRepo struct {
	db *gorm.DB
}

func NewUserRoleRepo(db *gorm.DB) *UserRoleRepo {
	return &UserRoleRepo{db}
}

// HasRole reports whether userID has been granted role.
func (r *UserRoleRepo) HasRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

// Grant is idempotent.
func (r *UserRoleRepo) Grant(ctx context.Context, userID uuid.UUID, role models.Role) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserRole{UserID: userID, Role: role}).Error
}

func (r *UserRoleRepo) Revoke(ctx context.Context, userID uuid.UUID, role models.Role) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&models.UserRole{}).Error
}
