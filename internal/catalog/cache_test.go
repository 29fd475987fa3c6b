package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource serves a fixed dataset page by page and counts fetches.
type stubSource struct {
	mu      sync.Mutex
	beers   []Beer
	fetches int
	failOn  int // fail when fetching this page; 0 disables
}

func (s *stubSource) FetchPage(ctx context.Context, page, perPage int) ([]Beer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	if s.failOn != 0 && page == s.failOn {
		return nil, errors.New("upstream unavailable")
	}
	start := (page - 1) * perPage
	if start >= len(s.beers) {
		return nil, nil
	}
	end := start + perPage
	if end > len(s.beers) {
		end = len(s.beers)
	}
	return s.beers[start:end], nil
}

func (s *stubSource) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

func namedBeers(names ...string) []Beer {
	out := make([]Beer, len(names))
	for i, n := range names {
		out[i] = Beer{ID: i + 1, Name: n}
	}
	return out
}

func TestCacheLoadsAllPagesAndSorts(t *testing.T) {
	src := &stubSource{beers: namedBeers("Punk IPA", "Buzz", "Trashy Blonde", "Arcade Nation", "Libertine Porter")}
	cache := NewCache(src, WithPerPage(2))

	require.NoError(t, cache.EnsureLoaded(context.Background()))
	require.Equal(t, 5, cache.Len())

	got := cache.Search("")
	names := make([]string, len(got))
	for i, b := range got {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"Arcade Nation", "Buzz", "Libertine Porter", "Punk IPA", "Trashy Blonde"}, names)

	// 3 full pages plus the empty terminator.
	assert.Equal(t, 4, src.fetchCount())
}

func TestCacheLoadIsIdempotent(t *testing.T) {
	src := &stubSource{beers: namedBeers("Buzz", "Punk IPA")}
	cache := NewCache(src, WithPerPage(80))

	require.NoError(t, cache.EnsureLoaded(context.Background()))
	first := src.fetchCount()

	require.NoError(t, cache.EnsureLoaded(context.Background()))
	require.NoError(t, cache.EnsureLoaded(context.Background()))
	assert.Equal(t, first, src.fetchCount(), "loaded cache must not refetch")
}

func TestCacheLoadFailureDiscardsPartialData(t *testing.T) {
	src := &stubSource{beers: namedBeers("Buzz", "Punk IPA", "Trashy Blonde"), failOn: 2}
	cache := NewCache(src, WithPerPage(2))

	err := cache.EnsureLoaded(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
	assert.Nil(t, cache.Search(""))
	assert.True(t, cache.LoadedAt().IsZero())

	// The next request retries from page one.
	src.mu.Lock()
	src.failOn = 0
	src.mu.Unlock()

	require.NoError(t, cache.EnsureLoaded(context.Background()))
	assert.Equal(t, 3, cache.Len())
}

func TestCacheConcurrentColdStartLoadsOnce(t *testing.T) {
	src := &stubSource{beers: namedBeers("Buzz", "Punk IPA", "Trashy Blonde")}
	cache := NewCache(src, WithPerPage(80))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cache.EnsureLoaded(context.Background()))
		}()
	}
	wg.Wait()

	// One data page plus the empty terminator, regardless of caller count.
	assert.Equal(t, 2, src.fetchCount())
	assert.Equal(t, 3, cache.Len())
}

func TestCacheSearchBeforeLoad(t *testing.T) {
	cache := NewCache(&stubSource{})
	assert.Nil(t, cache.Search("punk"))
	assert.Equal(t, 0, cache.Len())
}
