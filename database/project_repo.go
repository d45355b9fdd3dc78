package database

import (
	"github.com/rpupo63/devfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	crudRepo[models.Project]
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{newCrudRepo[models.Project](db, "display_order ASC", "created_at DESC")}
}
