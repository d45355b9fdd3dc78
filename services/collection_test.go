package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/cache"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	mu       sync.Mutex
	rows     []*models.SocialLink
	finds    int
	writeErr error
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]*models.SocialLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	out := make([]*models.SocialLink, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.SocialLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Add(ctx context.Context, row *models.SocialLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	row.ID = uuid.New()
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, row *models.SocialLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	for i, existing := range f.rows {
		if existing.ID == row.ID {
			f.rows[i] = row
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	for i, existing := range f.rows {
		if existing.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newLinks(repo *fakeRepo) *Collection[models.SocialLink] {
	return NewCollection[models.SocialLink](repo, cache.New(time.Minute), cache.KeySocialLinks)
}

func TestCollectionListIsEmptyBeforeAnyWrite(t *testing.T) {
	links := newLinks(&fakeRepo{})

	rows, err := links.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCollectionCreateInvalidatesList(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	links := newLinks(repo)

	_, err := links.List(ctx)
	require.NoError(t, err)
	_, err = links.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.finds, "second list should be served from cache")

	require.NoError(t, links.Create(ctx, &models.SocialLink{Platform: "GitHub", URL: "https://github.com/x"}))

	rows, err := links.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "GitHub", rows[0].Platform)
	assert.Equal(t, 2, repo.finds)
}

func TestCollectionFailedWriteKeepsCache(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	links := newLinks(repo)

	_, err := links.List(ctx)
	require.NoError(t, err)

	writeErr := errors.New("permission denied for table social_links")
	repo.writeErr = writeErr
	err = links.Create(ctx, &models.SocialLink{Platform: "GitHub", URL: "https://github.com/x"})
	assert.ErrorIs(t, err, writeErr)

	_, err = links.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.finds)
}

func TestCollectionUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	links := newLinks(repo)

	link := &models.SocialLink{Platform: "GitHub", URL: "https://github.com/x"}
	require.NoError(t, links.Create(ctx, link))

	edited, err := links.Get(ctx, link.ID)
	require.NoError(t, err)
	updated := *edited
	updated.Platform = "GitHub (work)"
	require.NoError(t, links.Update(ctx, &updated))

	rows, err := links.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "GitHub (work)", rows[0].Platform)

	require.NoError(t, links.Delete(ctx, link.ID))
	rows, err = links.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.ErrorIs(t, links.Delete(ctx, link.ID), gorm.ErrRecordNotFound)
}
