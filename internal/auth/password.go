package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost matches the original deployment so existing hashes keep verifying.
const bcryptCost = 10

// placeholderHash is compared against on the unknown-username path so that a
// login probe costs one bcrypt comparison whether or not the user exists.
// Computed once at process start from a constant plaintext.
var placeholderHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("foobar"), bcryptCost)
	if err != nil {
		panic(err)
	}
	return hash
}()

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with the stored hash.
func VerifyPassword(hash, password string) error {
	if hash == "" {
		return errors.New("password hash is empty")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// burnComparison performs a bcrypt comparison against the placeholder hash.
// It always fails; its only purpose is keeping the not-found path as slow as
// the wrong-password path.
func burnComparison() {
	_ = bcrypt.CompareHashAndPassword(placeholderHash, []byte("barfoo"))
}
