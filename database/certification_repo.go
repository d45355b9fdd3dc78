package database

import (
	"github.com/rpupo63/devfolio-backend/models"
	"gorm.io/gorm"
)

type CertificationRepo struct {
	crudRepo[models.Certification]
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{newCrudRepo[models.Certification](db, "display_order ASC", "issue_date DESC")}
}
