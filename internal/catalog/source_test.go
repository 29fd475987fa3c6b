package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSourceFetchPage(t *testing.T) {
	data := namedBeers("Buzz", "Punk IPA", "Trashy Blonde")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/beers", r.URL.Path)
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		perPage, err := strconv.Atoi(r.URL.Query().Get("per_page"))
		require.NoError(t, err)

		start := (page - 1) * perPage
		if start > len(data) {
			start = len(data)
		}
		end := start + perPage
		if end > len(data) {
			end = len(data)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(data[start:end])
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL, WithHTTPClient(srv.Client()))

	page, err := src.FetchPage(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Buzz", page[0].Name)

	page, err = src.FetchPage(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)

	page, err = src.FetchPage(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestHTTPSourceRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL, WithHTTPClient(srv.Client()))
	_, err := src.FetchPage(context.Background(), 1, 80)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPSourceRejectsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)

	src := NewHTTPSource(srv.URL, WithHTTPClient(srv.Client()))
	_, err := src.FetchPage(context.Background(), 1, 80)
	require.Error(t, err)
}

func TestHTTPSourceHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewHTTPSource(srv.URL, WithHTTPClient(srv.Client()))
	_, err := src.FetchPage(ctx, 1, 80)
	require.Error(t, err)
}
