package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is a showcase entry. Only admins write projects; anyone can read them.
type Project struct {
	ID            uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description   *string                     `json:"description" db:"description" gorm:"type:text"`
	TechStackTags datatypes.JSONSlice[string] `json:"tech_stack_tags" db:"tech_stack_tags" gorm:"not null"`
	GithubURL     *string                     `json:"github_url" db:"github_url" gorm:"type:text"`
	DemoURL       *string                     `json:"demo_url" db:"demo_url" gorm:"type:text"`
	ThumbnailURL  *string                     `json:"thumbnail_url" db:"thumbnail_url" gorm:"type:text"`
	DisplayOrder  int                         `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0;index:idx_projects_order"`
	CreatedAt     time.Time                   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at" db:"updated_at"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	if p.TechStackTags == nil {
		p.TechStackTags = datatypes.JSONSlice[string]{}
	}
	return nil
}

// HasTag reports whether tag is one of the project's tech stack tags (exact match).
func (p Project) HasTag(tag string) bool {
	for _, t := range p.TechStackTags {
		if t == tag {
			return true
		}
	}
	return false
}

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
