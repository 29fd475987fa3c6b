package httpapi

import (
	"net/http"
	"testing"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"empty", "", "", true},
		{"wrong scheme", "Basic abc123", "", true},
		{"bearer only", "Bearer ", "", true},
		{"valid", "Bearer token123", "token123", false},
		{"case insensitive scheme", "bearer token123", "token123", false},
		{"padded", "  Bearer token123  ", "token123", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractBearerToken(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAuthGateRejectsBadTokens(t *testing.T) {
	c := newTestAPI(t)
	c.signup("admin", "batata")

	headers := []map[string]string{
		nil,
		{"Authorization": "Bearer garbage"},
		{"Authorization": "Basic YWRtaW46YmF0YXRh"},
		{"Authorization": "Bearer "},
	}
	for _, h := range headers {
		resp := c.get("/api/beers", nil, h)
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("headers %v: expected 401, got %d", h, resp.StatusCode)
		}
		if resp.Header.Get("WWW-Authenticate") == "" {
			t.Fatalf("headers %v: expected WWW-Authenticate challenge", h)
		}
	}
}

func TestAuthGateAcceptsValidToken(t *testing.T) {
	c := newTestAPI(t)
	c.signup("admin", "batata")
	token := c.login("admin", "batata")

	resp := c.get("/api/beers", nil, authz(token))
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestPublicPathsSkipAuth(t *testing.T) {
	c := newTestAPI(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp := c.get(path, nil, nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200 without a token, got %d", path, resp.StatusCode)
		}
	}
}

func TestForcedUserMode(t *testing.T) {
	c := newTestAPI(t, WithForcedUser("admin"))
	c.signup("admin", "batata")

	// No token required; every request runs as the pinned user.
	resp := c.get("/api/beers", nil, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 without token in forced mode, got %d", resp.StatusCode)
	}

	resp = c.do(http.MethodDelete, "/api/users/self", nil, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 deleting pinned user, got %d", resp.StatusCode)
	}

	// The pinned record is gone, so every request now fails authentication.
	resp = c.get("/api/beers", nil, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after pinned user removed, got %d", resp.StatusCode)
	}
}
