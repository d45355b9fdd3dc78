package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile is the single public profile of the site owner.
type Profile struct {
	ID             uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID         uuid.UUID                   `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index"`
	Name           string                      `json:"name" db:"name" gorm:"type:text;not null;default:''"`
	RoleTitle      string                      `json:"role_title" db:"role_title" gorm:"type:text;not null;default:''"`
	Bio            string                      `json:"bio" db:"bio" gorm:"type:text;not null;default:''"`
	AvatarURL      *string                     `json:"avatar_url" db:"avatar_url" gorm:"type:text"`
	TechStack      datatypes.JSONSlice[string] `json:"tech_stack" db:"tech_stack" gorm:"not null"`
	GithubUsername string                      `json:"github_username" db:"github_username" gorm:"type:text;not null;default:''"`
	Slot           int                         `json:"-" db:"slot" gorm:"not null;default:1;uniqueIndex"` // always 1, keeps the table to one row
	CreatedAt      time.Time                   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at" db:"updated_at"`
}

func (p *Profile) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	p.Slot = 1
	if p.TechStack == nil {
		p.TechStack = datatypes.JSONSlice[string]{}
	}
	return nil
}
