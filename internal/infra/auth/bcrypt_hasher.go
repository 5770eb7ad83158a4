// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"tasker/config"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/service"
	"tasker/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher hashes "email:username:password-nonce" with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher from auth.bcryptCost.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit work factor.
func NewBcryptHasherWithCost(cost int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(password string, cc entity.CredentialContext) (string, error) {
	input, err := deriveInput(password, cc)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword(input, h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "bcrypt")
	}

	return string(hash), nil
}

func (h *bcryptHasher) Verify(password string, cc entity.CredentialContext, storedHash string) bool {
	input, err := deriveInput(password, cc)
	if err != nil || storedHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(storedHash), input) == nil
}

// deriveInput combines the credential parts and pre-hashes them so the
// combined string never runs into bcrypt's 72 byte input limit.
func deriveInput(password string, cc entity.CredentialContext) ([]byte, error) {
	if password == "" || cc.Email == "" || cc.Username == "" || cc.Nonce == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "hash input has an empty field")
	}

	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s:%s-%s", cc.Email, cc.Username, password, cc.Nonce))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])

	return out, nil
}
