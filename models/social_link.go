package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialLink struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Platform     string     `json:"platform" db:"platform" gorm:"type:text;not null"`
	URL          string     `json:"url" db:"url" gorm:"column:url;type:text;not null"`
	Icon         SocialIcon `json:"icon" db:"icon" gorm:"type:text;not null;default:'link'"`
	DisplayOrder int        `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
}

func (l *SocialLink) BeforeCreate(*gorm.DB) error {
	assignID(&l.ID)
	l.Icon = ParseSocialIcon(string(l.Icon))
	return nil
}

func (l *SocialLink) BeforeSave(*gorm.DB) error {
	l.Icon = ParseSocialIcon(string(l.Icon))
	return nil
}
