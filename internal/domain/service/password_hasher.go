// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrPasswordTooLong is returned by Hash when the plaintext exceeds the
// algorithm's input limit. Callers treat it as invalid input, not a failure.
var ErrPasswordTooLong = errors.New("password exceeds maximum length")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Returns
	// ErrPasswordTooLong when the input is over the algorithm's limit.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
