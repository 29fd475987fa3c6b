package auth

import "context"

// UserStore describes the persistence operations required by the auth subsystem.
// Implementations must enforce username uniqueness at creation time.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	Find(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	Delete(ctx context.Context, userID string) error
}
