package images

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingGenerator parks Generate until released so tests can observe
// the in-flight state.
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
	err     error
}

func newBlockingGenerator(err error) *blockingGenerator {
	return &blockingGenerator{
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
		err:     err,
	}
}

func (g *blockingGenerator) Generate(_ context.Context, name, _ string) (*Generated, error) {
	g.started <- struct{}{}
	<-g.release
	if g.err != nil {
		return nil, g.err
	}
	return &Generated{URL: "https://images.example.test/" + name + ".png", FileName: name + ".png"}, nil
}

func TestLoadingFlagLifecycleSuccess(t *testing.T) {
	gen := newBlockingGenerator(nil)
	cache := NewCache(gen)

	assert.False(t, cache.Loading("pizza-1"))

	done := make(chan bool, 1)
	go func() {
		_, ok := cache.RequestImage(context.Background(), "pizza-1", "Pizza", "a pizza")
		done <- ok
	}()

	<-gen.started
	assert.True(t, cache.Loading("pizza-1"))

	close(gen.release)
	require.True(t, <-done)

	assert.False(t, cache.Loading("pizza-1"))
	url, ok := cache.Lookup("pizza-1")
	require.True(t, ok)
	assert.Equal(t, "https://images.example.test/Pizza.png", url)
}

func TestLoadingFlagLifecycleFailure(t *testing.T) {
	gen := newBlockingGenerator(errors.New("model unavailable"))
	cache := NewCache(gen)

	done := make(chan bool, 1)
	go func() {
		_, ok := cache.RequestImage(context.Background(), "pizza-1", "Pizza", "a pizza")
		done <- ok
	}()

	<-gen.started
	assert.True(t, cache.Loading("pizza-1"))

	close(gen.release)
	require.False(t, <-done)

	// cleared unconditionally on settlement, and nothing cached
	assert.False(t, cache.Loading("pizza-1"))
	_, ok := cache.Lookup("pizza-1")
	assert.False(t, ok)
}

func TestConcurrentRequestsNotCoalesced(t *testing.T) {
	gen := newBlockingGenerator(nil)
	cache := NewCache(gen)

	done := make(chan bool, 2)
	for range 2 {
		go func() {
			_, ok := cache.RequestImage(context.Background(), "pizza-1", "Pizza", "a pizza")
			done <- ok
		}()
	}

	// both calls reach the generator independently
	<-gen.started
	<-gen.started
	assert.True(t, cache.Loading("pizza-1"))

	close(gen.release)
	require.True(t, <-done)
	require.True(t, <-done)
	assert.False(t, cache.Loading("pizza-1"))
}

func TestWarmSkipsCachedAndInflight(t *testing.T) {
	gen := newBlockingGenerator(nil)
	cache := NewCache(gen)

	cache.Warm("pizza-1", "Pizza", "a pizza")
	<-gen.started
	// second warm while the first is in flight starts nothing
	cache.Warm("pizza-1", "Pizza", "a pizza")
	select {
	case <-gen.started:
		t.Fatal("warm started a duplicate generation")
	case <-time.After(50 * time.Millisecond):
	}

	close(gen.release)
	cache.Wait()

	url, ok := cache.Lookup("pizza-1")
	require.True(t, ok)
	assert.NotEmpty(t, url)

	// cached now, warm is a no-op
	cache.Warm("pizza-1", "Pizza", "a pizza")
	cache.Wait()
}

type staticGenerator struct{}

func (staticGenerator) Generate(_ context.Context, name, _ string) (*Generated, error) {
	return &Generated{URL: "https://images.example.test/" + name + ".png", FileName: name + ".png"}, nil
}

func TestLookupMissing(t *testing.T) {
	cache := NewCache(staticGenerator{})
	_, ok := cache.Lookup("nope")
	assert.False(t, ok)
}
