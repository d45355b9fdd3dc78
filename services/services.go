// Package services is the entity access layer: every read goes through the query cache and
// every successful write invalidates the key its readers use.
package services

import (
	"github.com/rpupo63/devfolio-backend/cache"
	"github.com/rpupo63/devfolio-backend/database"
	"github.com/rpupo63/devfolio-backend/models"
)

type Services struct {
	Profile        *ProfileService
	Projects       *Collection[models.Project]
	SocialLinks    *Collection[models.SocialLink]
	Experience     *Collection[models.Experience]
	Education      *Collection[models.Education]
	Certifications *Collection[models.Certification]
}

func New(db database.Database, c *cache.QueryCache) *Services {
	return &Services{
		Profile:        NewProfileService(db.ProfileRepo(), c),
		Projects:       NewCollection[models.Project](db.ProjectRepo(), c, cache.KeyProjects),
		SocialLinks:    NewCollection[models.SocialLink](db.SocialLinkRepo(), c, cache.KeySocialLinks),
		Experience:     NewCollection[models.Experience](db.ExperienceRepo(), c, cache.KeyExperience),
		Education:      NewCollection[models.Education](db.EducationRepo(), c, cache.KeyEducation),
		Certifications: NewCollection[models.Certification](db.CertificationRepo(), c, cache.KeyCertifications),
	}
}
