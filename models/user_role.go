package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// UserRole grants a role to an auth user. Admin rights come only from this table.
type UserRole struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_unique"`
	Role   Role      `json:"role" db:"role" gorm:"type:text;not null;uniqueIndex:idx_user_roles_unique"`
}

func (r *UserRole) BeforeCreate(*gorm.DB) error {
	assignID(&r.ID)
	return nil
}
