package secret

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	"tasker/config"
	domainerrors "tasker/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testKey() [keySize]byte {
	var key [keySize]byte
	for i := range key {
		key[i] = byte(i + 1)
	}

	return key
}

func newTestCipher(t *testing.T) *emailCipher {
	t.Helper()

	c, err := NewLocalEmailCipher(testKey())
	require.NoError(t, err)

	return c.(*emailCipher)
}

func TestEmailCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)
	ctx := context.Background()

	ciphertext, err := c.Encrypt(ctx, "  Ada@Example.com ")
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "example")

	plaintext, err := c.Decrypt(ctx, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", plaintext)
}

func TestEmailCipher_EncryptIsRandomized(t *testing.T) {
	c := newTestCipher(t)
	ctx := context.Background()

	first, err := c.Encrypt(ctx, "ada@example.com")
	require.NoError(t, err)
	second, err := c.Encrypt(ctx, "ada@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestEmailCipher_BlindIndexIsDeterministic(t *testing.T) {
	c := newTestCipher(t)

	assert.Equal(t, c.BlindIndex("ada@example.com"), c.BlindIndex(" ADA@example.com"))
	assert.NotEqual(t, c.BlindIndex("ada@example.com"), c.BlindIndex("bob@example.com"))
	assert.Len(t, c.BlindIndex("ada@example.com"), 64)

	var otherKey [keySize]byte
	other, err := NewLocalEmailCipher(otherKey)
	require.NoError(t, err)
	assert.NotEqual(t, c.BlindIndex("ada@example.com"), other.BlindIndex("ada@example.com"))
}

func TestEmailCipher_DecryptRejectsTampering(t *testing.T) {
	c := newTestCipher(t)
	ctx := context.Background()

	ciphertext, err := c.Encrypt(ctx, "ada@example.com")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff

	_, err = c.Decrypt(ctx, base64.StdEncoding.EncodeToString(raw))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEncryptionFailed))

	_, err = c.Decrypt(ctx, "%%%")
	assert.Error(t, err)
}

func TestEmailCipher_EncryptEmpty(t *testing.T) {
	c := newTestCipher(t)

	_, err := c.Encrypt(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestDecodeKey(t *testing.T) {
	key := testKey()

	got, err := decodeKey(base64.StdEncoding.EncodeToString(key[:]))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = decodeKey(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorContains(t, err, "key must be 32 bytes")

	_, err = decodeKey("not base64!")
	assert.Error(t, err)
}

func TestNewEmailCipher_FromConfig(t *testing.T) {
	key := testKey()
	cfg := &config.Config{}
	cfg.Crypto.EmailKey = base64.StdEncoding.EncodeToString(key[:])

	lc := fxtest.NewLifecycle(t)
	c, err := NewEmailCipher(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	// Same master key means the same index as the directly built cipher.
	assert.Equal(t, newTestCipher(t).BlindIndex("ada@example.com"), c.BlindIndex("ada@example.com"))

	lc.RequireStart().RequireStop()
}

func TestNewEmailCipher_InvalidKeyFailsStartup(t *testing.T) {
	tests := map[string]func(*config.Config){
		"missing":       func(*config.Config) {},
		"short key":     func(c *config.Config) { c.Crypto.EmailKey = base64.StdEncoding.EncodeToString([]byte("abc")) },
		"url bad index": func(c *config.Config) { c.Crypto.KeeperURL = "base64key://"; c.Crypto.IndexKey = strings.Repeat("!", 8) },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Config{}
			mutate(cfg)

			_, err := NewEmailCipher(Params{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: cfg,
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			assert.Error(t, err)
		})
	}
}
