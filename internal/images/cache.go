package images

import (
	"context"
	"log/slog"
	"sync"
)

type generator interface {
	Generate(ctx context.Context, name, description string) (*Generated, error)
}

// Cache memoizes generated image URLs by snack id and tracks which
// generations are in flight. Entries are never evicted; the cache lives
// for the process, mirroring the session-scoped mapping it replaces.
// Concurrent requests for the same snack are not coalesced — each call
// reaches the generation service independently, which is safe because
// object keys are unique per upload.
type Cache struct {
	mu       sync.Mutex
	urls     map[string]string
	inflight map[string]int

	svc generator
	wg  sync.WaitGroup
}

func NewCache(svc generator) *Cache {
	return &Cache{
		urls:     make(map[string]string),
		inflight: make(map[string]int),
		svc:      svc,
	}
}

// RequestImage generates an image for the snack and caches its URL by
// id. The loading flag for id is set for exactly the duration of the
// call, cleared on success and failure alike. A failure returns
// ok=false and the caller falls back to a placeholder; no retry.
func (c *Cache) RequestImage(ctx context.Context, id, name, description string) (string, bool) {
	c.addInflight(id, 1)
	defer c.addInflight(id, -1)

	generated, err := c.svc.Generate(ctx, name, description)
	if err != nil {
		slog.WarnContext(ctx, "image generation failed", "snack", name, "error", err)
		return "", false
	}

	c.mu.Lock()
	c.urls[id] = generated.URL
	c.mu.Unlock()
	return generated.URL, true
}

// Warm kicks off a background generation for a snack that has no cached
// URL and none in flight. Used by the page handler so thumbnails fill in
// across refreshes.
func (c *Cache) Warm(id, name, description string) {
	c.mu.Lock()
	_, cached := c.urls[id]
	busy := c.inflight[id] > 0
	c.mu.Unlock()
	if cached || busy {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		// detached from the originating request; the generation runs to
		// completion even if no one ends up displaying it
		c.RequestImage(context.Background(), id, name, description)
	}()
}

// Wait blocks until all background generations settle.
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Lookup returns the cached URL for a snack id.
func (c *Cache) Lookup(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	url, ok := c.urls[id]
	return url, ok
}

// Loading reports whether any generation for id is outstanding.
func (c *Cache) Loading(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight[id] > 0
}

func (c *Cache) addInflight(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight[id] += delta
	if c.inflight[id] <= 0 {
		delete(c.inflight, id)
	}
}
