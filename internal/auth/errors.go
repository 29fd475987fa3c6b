package auth

import "errors"

var (
	// ErrNotFound indicates the referenced user record does not exist.
	ErrNotFound = errors.New("auth: user not found")

	// ErrInvalidCredentials covers every failed login, regardless of whether
	// the username exists. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken indicates the bearer token failed validation.
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrUsernameTaken carries the client-facing message verbatim.
	ErrUsernameTaken = errors.New("'username' must be unique")
)
