package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func counter(n *atomic.Int32, value string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		n.Add(1)
		return value, nil
	}
}

func TestFetchCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	var calls atomic.Int32

	v, err := Fetch(ctx, c, KeyProjects, counter(&calls, "a"))
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = Fetch(ctx, c, KeyProjects, counter(&calls, "b"))
	require.NoError(t, err)
	assert.Equal(t, "a", v, "second read is served from cache")
	assert.Equal(t, int32(1), calls.Load())

	c.Invalidate(KeyProjects)

	v, err = Fetch(ctx, c, KeyProjects, counter(&calls, "b"))
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	boom := errors.New("boom")

	_, err := Fetch(ctx, c, KeyProfile, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	v, err := Fetch(ctx, c, KeyProfile, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestEntriesExpire(t *testing.T) {
	ctx := context.Background()
	c := New(time.Second)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	var calls atomic.Int32

	_, _ = Fetch(ctx, c, KeyEducation, counter(&calls, "x"))
	now = now.Add(2 * time.Second)
	_, _ = Fetch(ctx, c, KeyEducation, counter(&calls, "x"))

	assert.Equal(t, int32(2), calls.Load())
}

func TestZeroTTLAlwaysFetches(t *testing.T) {
	ctx := context.Background()
	c := New(0)
	var calls atomic.Int32

	for i := 0; i < 3; i++ {
		_, err := Fetch(ctx, c, KeySocialLinks, counter(&calls, "x"))
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestFillStartedBeforeInvalidateIsDiscarded(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = Fetch(ctx, c, KeyProfile, func(context.Context) (string, error) {
			close(started)
			<-release
			return "stale", nil
		})
	}()

	<-started
	c.Invalidate(KeyProfile)
	close(release)
	<-done

	v, err := Fetch(ctx, c, KeyProfile, func(context.Context) (string, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestConcurrentFetchesShareOneCall(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	var calls atomic.Int32
	gate := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := Fetch(ctx, c, KeyExperience, func(context.Context) (string, error) {
				calls.Add(1)
				<-gate
				return "shared", nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "shared", v)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(8))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))

	v, err := Fetch(ctx, c, KeyExperience, counter(&calls, "other"))
	require.NoError(t, err)
	assert.Equal(t, "shared", v)
}

func TestCanceledCallerDoesNotFailSharedFetch(t *testing.T) {
	c := New(time.Minute)
	leaderCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (string, error) {
		close(started)
		select {
		case <-release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "shared", nil
	}

	leaderErr := make(chan error, 1)
	go func() {
		_, err := Fetch(leaderCtx, c, KeyProjects, fetch)
		leaderErr <- err
	}()
	<-started

	type result struct {
		value string
		err   error
	}
	follower := make(chan result, 1)
	go func() {
		v, err := Fetch(context.Background(), c, KeyProjects, func(context.Context) (string, error) {
			return "", errors.New("follower should have joined the running fetch")
		})
		follower <- result{v, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	got := <-follower
	require.NoError(t, got.err)
	assert.Equal(t, "shared", got.value)

	v, err := Fetch(context.Background(), c, KeyProjects, func(context.Context) (string, error) { return "refetched", nil })
	require.NoError(t, err)
	assert.Equal(t, "shared", v, "the shared result was cached")
}
