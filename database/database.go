package database

import (
	"gorm.io/gorm"
)

type Database struct {
	profileRepo       *ProfileRepo
	projectRepo       *ProjectRepo
	socialLinkRepo    *SocialLinkRepo
	experienceRepo    *ExperienceRepo
	educationRepo     *EducationRepo
	certificationRepo *CertificationRepo
	userRoleRepo      *UserRoleRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:       NewProfileRepo(db),
		projectRepo:       NewProjectRepo(db),
		socialLinkRepo:    NewSocialLinkRepo(db),
		experienceRepo:    NewExperienceRepo(db),
		educationRepo:     NewEducationRepo(db),
		certificationRepo: NewCertificationRepo(db),
		userRoleRepo:      NewUserRoleRepo(db),
	}
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SocialLinkRepo() *SocialLinkRepo {
	return d.socialLinkRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) UserRoleRepo() *UserRoleRepo {
	return d.userRoleRepo
}
