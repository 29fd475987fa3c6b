package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Source yields fixed-size pages of beers from the upstream dataset. An empty
// page signals end-of-data.
type Source interface {
	FetchPage(ctx context.Context, page, perPage int) ([]Beer, error)
}

// HTTPSource fetches pages from a PunkAPI-compatible JSON endpoint.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

var _ Source = (*HTTPSource)(nil)

// HTTPSourceOption configures HTTPSource behavior.
type HTTPSourceOption func(*HTTPSource)

// WithHTTPClient overrides the underlying client (useful for tests).
func WithHTTPClient(client *http.Client) HTTPSourceOption {
	return func(s *HTTPSource) {
		if client != nil {
			s.client = client
		}
	}
}

// NewHTTPSource points at a base URL such as https://api.punkapi.com/v2.
func NewHTTPSource(baseURL string, opts ...HTTPSourceOption) *HTTPSource {
	s := &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSource) FetchPage(ctx context.Context, page, perPage int) ([]Beer, error) {
	url := fmt.Sprintf("%s/beers?page=%d&per_page=%d", s.baseURL, page, perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	var beers []Beer
	if err := json.NewDecoder(resp.Body).Decode(&beers); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return beers, nil
}
