package api

import (
	"github.com/rpupo63/devfolio-backend/admin"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rpupo63/devfolio-backend/pages"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, secureCookies bool) *routeHandlers {
	svc := deps.Services
	return &routeHandlers{
		pageHandler:    newPageHandler(pages.NewBuilder(svc, deps.GitHub), svc.Profile),
		authHandler:    newAuthHandler(deps.Authenticator, secureCookies),
		profileHandler: newProfileHandler(svc.Profile, deps.Store),
		projectHandler: newProjectHandler(svc.Projects, deps.Store),
		socialLinkHandler: newCollectionHandler[models.SocialLink, admin.SocialLinkForm](
			"social link", svc.SocialLinks, admin.SocialLinkFormFrom),
		experienceHandler: newCollectionHandler[models.Experience, admin.ExperienceForm](
			"experience", svc.Experience, admin.ExperienceFormFrom),
		educationHandler: newCollectionHandler[models.Education, admin.EducationForm](
			"education", svc.Education, admin.EducationFormFrom),
		certificationHandler: newCollectionHandler[models.Certification, admin.CertificationForm](
			"certification", svc.Certifications, admin.CertificationFormFrom),
		storageHandler: newStorageHandler(deps.Store),
	}
}
