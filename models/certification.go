package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Certification struct {
	ID            uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title         string          `json:"title" db:"title" gorm:"type:text;not null"`
	Issuer        string          `json:"issuer" db:"issuer" gorm:"type:text;not null"`
	IssueDate     *datatypes.Date `json:"issue_date" db:"issue_date"`
	CredentialURL *string         `json:"credential_url" db:"credential_url" gorm:"type:text"`
	ImageURL      *string         `json:"image_url" db:"image_url" gorm:"type:text"`
	DisplayOrder  int             `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
}

func (c *Certification) BeforeCreate(*gorm.DB) error {
	assignID(&c.ID)
	return nil
}
