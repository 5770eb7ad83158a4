// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "tasker/internal/domain/entity"

// PasswordHasher defines the interface for password hashing and verification.
// The hash input combines the password with its CredentialContext so the same
// password never hashes alike across accounts.
type PasswordHasher interface {
	// Hash returns a salted one-way hash. Any empty input is rejected.
	Hash(password string, cc entity.CredentialContext) (string, error)

	// Verify re-derives the input from cc and compares it against storedHash.
	Verify(password string, cc entity.CredentialContext, storedHash string) bool
}
