package service

import "context"

// EmailCipher protects the stored email.
type EmailCipher interface {
	// Encrypt returns randomized, authenticated ciphertext. Never use it as a lookup key.
	Encrypt(ctx context.Context, email string) (string, error)

	// Decrypt reverses Encrypt.
	Decrypt(ctx context.Context, ciphertext string) (string, error)

	// BlindIndex is a deterministic keyed digest of the normalized email, safe to index.
	BlindIndex(email string) string
}
