package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"hoplist.org/internal/auth"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

var publicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/",
}

// withAuth guards everything under the base path except login. When a forced
// user is configured the token check is skipped entirely and every request is
// resolved to that username.
func (a *API) withAuth(next http.Handler) http.Handler {
	if a.forceUser != "" {
		return a.withForcedUser(next)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || a.isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r.Header.Get(authHeader))
		if err != nil {
			unauthorized(w, r)
			return
		}

		userID, err := a.authsvc.Codec().Verify(token)
		if err != nil {
			unauthorized(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), userID)))
	})
}

// withForcedUser resolves the pinned username on every request. The record is
// looked up each time rather than cached, so deleting the user locks the
// development session out just like an expired token would.
func (a *API) withForcedUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || a.isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		user, err := a.users.FindByUsername(r.Context(), a.forceUser)
		if err != nil {
			unauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), user.ID)))
	})
}

func (a *API) isPublicPath(path string) bool {
	if path == a.base+"/login" {
		return true
	}
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}
