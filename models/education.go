package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Education struct {
	ID           uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Institution  string          `json:"institution" db:"institution" gorm:"type:text;not null"`
	Degree       string          `json:"degree" db:"degree" gorm:"type:text;not null"`
	FieldOfStudy *string         `json:"field_of_study" db:"field_of_study" gorm:"type:text"`
	StartDate    *datatypes.Date `json:"start_date" db:"start_date" gorm:"index"`
	EndDate      *datatypes.Date `json:"end_date" db:"end_date"`
	Description  *string         `json:"description" db:"description" gorm:"type:text"`
	DisplayOrder int             `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
}

func (Education) TableName() string {
	return "education"
}

func (e *Education) BeforeCreate(*gorm.DB) error {
	assignID(&e.ID)
	return nil
}
