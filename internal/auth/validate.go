package auth

import "errors"

// Client-facing messages kept byte-for-byte stable; the web UI matches on them.
var (
	errUsernameFormat = errors.New("'username' must be a string between 1 and 64 characters in length")
	errPasswordFormat = errors.New("'password' must be a string between 6 and 64 characters in length")
)

// ValidateUsername enforces the 1-64 character constraint.
func ValidateUsername(username string) error {
	if len(username) == 0 || len(username) > 64 {
		return errUsernameFormat
	}
	return nil
}

// ValidatePassword enforces the 6-64 character constraint.
func ValidatePassword(password string) error {
	if len(password) < 6 || len(password) > 64 {
		return errPasswordFormat
	}
	return nil
}

// IsValidationError reports whether err is one of the client-facing
// validation failures (including the duplicate-username case).
func IsValidationError(err error) bool {
	return errors.Is(err, errUsernameFormat) ||
		errors.Is(err, errPasswordFormat) ||
		errors.Is(err, ErrUsernameTaken)
}
