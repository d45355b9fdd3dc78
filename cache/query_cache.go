// Package cache keeps the results of read queries until a write invalidates them.
package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Query keys shared by readers and writers.
const (
	KeyProfile        = "profile"
	KeyProjects       = "projects"
	KeySocialLinks    = "social_links"
	KeyExperience     = "experience"
	KeyEducation      = "education"
	KeyCertifications = "certifications"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// QueryCache maps a query key to the last fetched result. Every key carries a generation that
// Invalidate bumps, and a fill only lands if the generation it started under is still current.
// That way a read racing a write can never put pre-write data back after the invalidation.
type QueryCache struct {
	mu          sync.Mutex
	entries     map[string]entry
	generations map[string]uint64
	ttl         time.Duration
	now         func() time.Time
	group       singleflight.Group
	logger      zerolog.Logger
}

// New returns a cache whose entries live for ttl. A zero ttl disables caching; every read then
// goes to the store.
func New(ttl time.Duration) *QueryCache {
	return &QueryCache{
		entries:     make(map[string]entry),
		generations: make(map[string]uint64),
		ttl:         ttl,
		now:         time.Now,
		logger:      log.With().Str("component", "queryCache").Logger(),
	}
}

// Invalidate drops key so the next read refetches.
func (c *QueryCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.generations[key]++
	c.mu.Unlock()
	c.logger.Debug().Str("key", key).Msg("invalidated")
}

// InvalidateAll drops every key.
func (c *QueryCache) InvalidateAll() {
	c.mu.Lock()
	for key := range c.entries {
		c.generations[key]++
	}
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

func (c *QueryCache) lookup(key string) (any, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	gen := c.generations[key]
	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		return nil, gen, false
	}
	return e.value, gen, true
}

func (c *QueryCache) store(key string, gen uint64, value any) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[key] != gen {
		return
	}
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Fetch returns the cached value for key, or runs fetch and caches its result. Concurrent
// callers for the same key and generation share one fetch. The shared fetch runs detached from
// any single caller's cancellation; each caller still stops waiting when its own ctx is done.
// Errors are never cached.
func Fetch[T any](ctx context.Context, c *QueryCache, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	cached, gen, ok := c.lookup(key)
	if ok {
		return cached.(T), nil
	}

	flight := key + "#" + strconv.FormatUint(gen, 10)
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(flight, func() (any, error) {
		value, err := fetch(shared)
		if err != nil {
			return value, err
		}
		c.store(key, gen, value)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
