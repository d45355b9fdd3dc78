package database

import (
	"github.com/rpupo63/devfolio-backend/models"
	"gorm.io/gorm"
)

type SocialLinkRepo struct {
	crudRepo[models.SocialLink]
}

func NewSocialLinkRepo(db *gorm.DB) *SocialLinkRepo {
	return &SocialLinkRepo{newCrudRepo[models.SocialLink](db, "display_order ASC")}
}
