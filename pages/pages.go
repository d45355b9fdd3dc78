// Package pages composes the public display pages from the cached entity reads.
package pages

import (
	"context"

	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ProfileSource interface {
	Get(ctx context.Context) (*models.Profile, error)
}

type ListSource[T any] interface {
	List(ctx context.Context) ([]*T, error)
}

type StatsSource interface {
	Stats(ctx context.Context, username string) (services.GitHubStats, error)
}

// EmptyState is shown in place of a page that has nothing to display yet.
type EmptyState struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Builder struct {
	profile        ProfileSource
	projects       ListSource[models.Project]
	socialLinks    ListSource[models.SocialLink]
	experience     ListSource[models.Experience]
	education      ListSource[models.Education]
	certifications ListSource[models.Certification]
	github         StatsSource
	logger         zerolog.Logger
}

func NewBuilder(svc *services.Services, github StatsSource) *Builder {
	return &Builder{
		profile:        svc.Profile,
		projects:       svc.Projects,
		socialLinks:    svc.SocialLinks,
		experience:     svc.Experience,
		education:      svc.Education,
		certifications: svc.Certifications,
		github:         github,
		logger:         log.With().Str("component", "pages").Logger(),
	}
}
