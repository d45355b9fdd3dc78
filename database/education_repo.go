package database

import (
	"github.com/rpupo63/devfolio-backend/models"
	"gorm.io/gorm"
)

type EducationRepo struct {
	crudRepo[models.Education]
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{newCrudRepo[models.Education](db, "start_date DESC", "display_order ASC")}
}
