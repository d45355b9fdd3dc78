package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Experience struct {
	ID           uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Company      string          `json:"company" db:"company" gorm:"type:text;not null"`
	Position     string          `json:"position" db:"position" gorm:"type:text;not null"`
	Location     *string         `json:"location" db:"location" gorm:"type:text"`
	StartDate    *datatypes.Date `json:"start_date" db:"start_date" gorm:"index"`
	EndDate      *datatypes.Date `json:"end_date" db:"end_date"`
	IsCurrent    bool            `json:"is_current" db:"is_current" gorm:"not null;default:false"`
	Description  *string         `json:"description" db:"description" gorm:"type:text"`
	DisplayOrder int             `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
}

// TableName keeps the singular table name the dashboard has always used.
func (Experience) TableName() string {
	return "experience"
}

func (e *Experience) BeforeCreate(*gorm.DB) error {
	assignID(&e.ID)
	return nil
}

// BeforeSave drops the end date of a current position.
func (e *Experience) BeforeSave(*gorm.DB) error {
	if e.IsCurrent {
		e.EndDate = nil
	}
	return nil
}
