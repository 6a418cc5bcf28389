// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"clinicdesk/config"
	"clinicdesk/internal/domain/service"
)

// minBcryptCost is the lowest work factor this service accepts; configured
// values below it are ignored.
const minBcryptCost = 10

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := cfg.Auth.BcryptCost
	if cost < minBcryptCost {
		cost = minBcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		// bcrypt only reads the first 72 bytes; anything longer is rejected
		// as bad input rather than surfacing as an internal failure.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", service.ErrPasswordTooLong
		}

		return "", err
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
