package database

import (
	"github.com/rpupo63/devfolio-backend/models"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	crudRepo[models.Experience]
}

// NewExperienceRepo lists the most recent position first.
func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{newCrudRepo[models.Experience](db, "start_date DESC", "display_order ASC")}
}
