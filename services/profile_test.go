package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/cache"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProfileRepo struct {
	profile *models.Profile
	reads   int
}

func (f *fakeProfileRepo) FindFirst(ctx context.Context) (*models.Profile, error) {
	f.reads++
	if f.profile == nil {
		return nil, nil
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if f.profile == nil || f.profile.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeProfileRepo) Add(ctx context.Context, profile *models.Profile) error {
	profile.ID = uuid.New()
	p := *profile
	f.profile = &p
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	if f.profile == nil || f.profile.ID != profile.ID {
		return gorm.ErrRecordNotFound
	}
	p := *profile
	f.profile = &p
	return nil
}

func TestProfileServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo, cache.New(time.Minute))

	profile, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile, "no profile configured yet")

	require.NoError(t, svc.Create(ctx, &models.Profile{Name: "Ada"}))
	profile, err = svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ada", profile.Name)

	err = svc.Create(ctx, &models.Profile{Name: "Grace"})
	assert.True(t, errs.IsConflict(err))

	updated, err := svc.SetAvatar(ctx, profile.ID, "https://cdn.example.com/a.png")
	require.NoError(t, err)
	require.NotNil(t, updated.AvatarURL)

	profile, err = svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/a.png", *profile.AvatarURL)
}

// racingProfileRepo has not yet seen the other writer's profile when it is asked, but the
// insert then hits the single-row index.
type racingProfileRepo struct {
	fakeProfileRepo
}

func (r *racingProfileRepo) FindFirst(ctx context.Context) (*models.Profile, error) {
	return nil, nil
}

func (r *racingProfileRepo) Add(ctx context.Context, profile *models.Profile) error {
	return errors.New("UNIQUE constraint failed: profiles.slot")
}

func TestProfileCreateLosingRaceIsConflict(t *testing.T) {
	svc := NewProfileService(&racingProfileRepo{}, cache.New(time.Minute))

	err := svc.Create(context.Background(), &models.Profile{Name: "Grace"})
	assert.True(t, errs.IsConflict(err))
}
