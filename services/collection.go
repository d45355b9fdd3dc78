package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CollectionRepo is the store access a Collection needs.
type CollectionRepo[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Add(ctx context.Context, row *T) error
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Collection exposes one ordered entity list. Each write is a single store call; the cache key is
// invalidated only after that call succeeds, and a failed write leaves the cached list as it was.
type Collection[T any] struct {
	repo   CollectionRepo[T]
	cache  *cache.QueryCache
	key    string
	logger zerolog.Logger
}

func NewCollection[T any](repo CollectionRepo[T], c *cache.QueryCache, key string) *Collection[T] {
	return &Collection[T]{
		repo:   repo,
		cache:  c,
		key:    key,
		logger: log.With().Str("collection", key).Logger(),
	}
}

// Key is the query key readers of this collection are cached under.
func (c *Collection[T]) Key() string {
	return c.key
}

// List returns the cached list. The slice is shared between callers and must not be modified.
// An empty list means nothing has been added yet.
func (c *Collection[T]) List(ctx context.Context) ([]*T, error) {
	return cache.Fetch(ctx, c.cache, c.key, c.repo.FindAll)
}

// Get reads one row straight from the store, bypassing the cache, so edit forms start from the
// latest values.
func (c *Collection[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return c.repo.FindByID(ctx, id)
}

func (c *Collection[T]) Create(ctx context.Context, row *T) error {
	if err := c.repo.Add(ctx, row); err != nil {
		c.logger.Warn().Err(err).Msg("create failed")
		return err
	}
	c.cache.Invalidate(c.key)
	return nil
}

func (c *Collection[T]) Update(ctx context.Context, row *T) error {
	if err := c.repo.Update(ctx, row); err != nil {
		c.logger.Warn().Err(err).Msg("update failed")
		return err
	}
	c.cache.Invalidate(c.key)
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		c.logger.Warn().Err(err).Str("id", id.String()).Msg("delete failed")
		return err
	}
	c.cache.Invalidate(c.key)
	return nil
}
