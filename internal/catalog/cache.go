package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hoplist.org/internal/audit"
	"hoplist.org/internal/obs"
)

// DefaultPerPage is the upstream page size used during ingestion.
const DefaultPerPage = 80

type state int

const (
	stateEmpty state = iota
	stateLoading
	stateLoaded
)

// Cache holds the full upstream dataset in memory. It is populated exactly
// once: the first EnsureLoaded caller performs the load while holding the
// cache lock, concurrent callers block on the same lock and then observe the
// loaded state. A failed load reverts to empty so a later request retries.
type Cache struct {
	mu       sync.Mutex
	state    state
	source   Source
	perPage  int
	beers    []Beer
	index    *Index
	loadedAt time.Time
	now      func() time.Time
}

// CacheOption configures Cache behavior.
type CacheOption func(*Cache)

// WithPerPage overrides the upstream ingestion page size.
func WithPerPage(n int) CacheOption {
	return func(c *Cache) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithCacheClock overrides the time source (useful for tests).
func WithCacheClock(fn func() time.Time) CacheOption {
	return func(c *Cache) {
		if fn != nil {
			c.now = fn
		}
	}
}

// NewCache constructs an empty cache over the given source.
func NewCache(source Source, opts ...CacheOption) *Cache {
	c := &Cache{
		source:  source,
		perPage: DefaultPerPage,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnsureLoaded makes the dataset available, performing the one-time load if
// needed. Idempotent and safe to call on every request.
func (c *Cache) EnsureLoaded(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateLoaded {
		return nil
	}
	c.state = stateLoading
	started := c.now()

	var all []Beer
	for page := 1; ; page++ {
		batch, err := c.source.FetchPage(ctx, page, c.perPage)
		if err != nil {
			// Discard partial data; the next request retries from scratch.
			c.state = stateEmpty
			return fmt.Errorf("load catalog page %d: %w", page, err)
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, batch...)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	c.beers = all
	c.index = NewIndex(all)
	c.loadedAt = c.now()
	c.state = stateLoaded
	took := c.loadedAt.Sub(started)
	obs.SetCatalogLoaded(len(all), took)
	_ = audit.LogEvent(ctx, "catalog.load", map[string]any{
		"entries":     len(all),
		"duration_ms": float64(took.Microseconds()) / 1000.0,
	})
	return nil
}

// Search returns the name-sorted dataset narrowed by the query, or the full
// dataset when the query is empty. Returns nil before a successful load.
func (c *Cache) Search(query string) []Beer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != stateLoaded {
		return nil
	}
	return c.index.Search(query)
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.beers)
}

// LoadedAt reports when the load completed; zero before that.
func (c *Cache) LoadedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadedAt
}
