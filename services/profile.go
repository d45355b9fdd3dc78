package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/cache"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
)

type ProfileRepo interface {
	FindFirst(ctx context.Context) (*models.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Add(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
}

// ProfileService reads and writes the singleton profile.
type ProfileService struct {
	repo  ProfileRepo
	cache *cache.QueryCache
}

func NewProfileService(repo ProfileRepo, c *cache.QueryCache) *ProfileService {
	return &ProfileService{repo: repo, cache: c}
}

// Get returns nil, nil while no profile has been configured.
func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	return cache.Fetch(ctx, s.cache, cache.KeyProfile, s.repo.FindFirst)
}

// Create stores the first profile. There is only ever one, so a second create is a conflict,
// including one that loses a race against a concurrent create.
func (s *ProfileService) Create(ctx context.Context, profile *models.Profile) error {
	existing, err := s.repo.FindFirst(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.NewAlreadyExists("profile")
	}
	if err := s.repo.Add(ctx, profile); err != nil {
		if errs.IsConflict(errs.NewDatabaseError("create", "profile", err)) {
			return errs.NewAlreadyExists("profile")
		}
		return err
	}
	s.cache.Invalidate(cache.KeyProfile)
	return nil
}

func (s *ProfileService) Update(ctx context.Context, profile *models.Profile) error {
	if err := s.repo.Update(ctx, profile); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyProfile)
	return nil
}

// SetAvatar stores a new avatar URL on an existing profile.
func (s *ProfileService) SetAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*models.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.AvatarURL = &avatarURL
	if err := s.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
