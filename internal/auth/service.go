package auth

import (
	"context"
	"errors"
	"fmt"
)

// Service ties credential verification, token issuance, and the user
// lifecycle together on top of a UserStore.
type Service struct {
	store UserStore
	codec *Codec
}

// NewService constructs a Service.
func NewService(store UserStore, codec *Codec) (*Service, error) {
	if store == nil {
		return nil, errors.New("user store is required")
	}
	if codec == nil {
		return nil, errors.New("token codec is required")
	}
	return &Service{store: store, codec: codec}, nil
}

// Codec exposes the token codec for the HTTP gate.
func (s *Service) Codec() *Codec { return s.codec }

// Login verifies the credentials and issues a session token. Any credential
// mismatch yields ErrInvalidCredentials; whether the username exists is not
// observable through the error or, thanks to the placeholder comparison,
// through response timing.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			burnComparison()
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.codec.Issue(user.ID)
}

// Signup creates a new user. Validation failures and duplicate usernames
// surface with their client-facing messages.
func (s *Service) Signup(ctx context.Context, username, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if err := ValidateUsername(username); err != nil {
		return err
	}
	if _, err := s.store.FindByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("find user: %w", err)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.store.Create(ctx, &User{Username: username, PasswordHash: hash})
}

// ChangePassword replaces the caller's password hash. ErrNotFound means the
// authenticated identity refers to a user that no longer exists.
func (s *Service) ChangePassword(ctx context.Context, userID, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if _, err := s.store.Find(ctx, userID); err != nil {
		return err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.store.UpdatePassword(ctx, userID, hash)
}

// DeleteUser removes the caller's own record.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.store.Find(ctx, userID); err != nil {
		return err
	}
	return s.store.Delete(ctx, userID)
}
