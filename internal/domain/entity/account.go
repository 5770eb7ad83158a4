// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Account is a registered user. The email is only ever held encrypted;
// EmailIndex is its deterministic blind index used for uniqueness.
type Account struct {
	ID             string         // Store-assigned identifier (ObjectID hex or UUID).
	Username       string         // Unique login name.
	EncryptedEmail string         // Randomized ciphertext of the normalized email.
	EmailIndex     string         // HMAC blind index of the normalized email.
	PasswordHash   string         // bcrypt hash of the derived credential input.
	PasswordNonce  string         // Nonce mixed into the hash input at signup.
	Auth           AuthExtensions // Optional third-party identities, unused by signup/login.
	ListIDs        []string       // Lists owned by this account.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AuthExtensions carries identity fields reserved for OAuth and 2FA.
type AuthExtensions struct {
	GoogleID        string
	FacebookID      string
	GithubID        string
	TwoFactorSecret string
	APIKeys         []string
}

// CredentialContext is everything mixed into a password hash besides the password itself.
type CredentialContext struct {
	Email    string
	Username string
	Nonce    string
}

// NormalizeEmail is the canonical email form used for ciphertext, blind index and hashing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
