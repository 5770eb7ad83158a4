// Package secret implements email protection on top of gocloud.dev/secrets.
package secret

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"
	"log/slog"
	"strings"

	"tasker/config"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/service"
	"tasker/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/secrets"
	"gocloud.dev/secrets/localsecrets"
	"golang.org/x/crypto/hkdf"
)

const (
	keySize        = 32
	blindIndexInfo = "email-blind-index"
)

type emailCipher struct {
	keeper   *secrets.Keeper
	indexKey []byte
}

// Params holds dependencies for the email cipher, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEmailCipher opens the keeper named by crypto config. A missing or
// malformed key fails construction, which aborts startup.
func NewEmailCipher(params Params) (service.EmailCipher, error) {
	cfg := params.Config.Crypto

	var (
		keeper   *secrets.Keeper
		indexKey []byte
	)

	switch {
	case cfg.EmailKey != "":
		key, err := decodeKey(cfg.EmailKey)
		if err != nil {
			return nil, errors.Wrap(err, "crypto.emailKey")
		}
		keeper = localsecrets.NewKeeper(key)
		indexKey, err = deriveIndexKey(key[:])
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using local email keeper")

	case cfg.KeeperURL != "":
		raw, err := decodeKey(cfg.IndexKey)
		if err != nil {
			return nil, errors.Wrap(err, "crypto.indexKey")
		}
		keeper, err = secrets.OpenKeeper(params.Ctx, cfg.KeeperURL)
		if err != nil {
			return nil, errors.Wrap(err, "open email keeper")
		}
		indexKey, err = deriveIndexKey(raw[:])
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using email keeper from URL")

	default:
		return nil, errors.New("no email encryption key configured")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(keeper.Close())
		},
	})

	return &emailCipher{keeper: keeper, indexKey: indexKey}, nil
}

// NewLocalEmailCipher builds a cipher directly from a 32 byte key.
func NewLocalEmailCipher(key [keySize]byte) (service.EmailCipher, error) {
	indexKey, err := deriveIndexKey(key[:])
	if err != nil {
		return nil, err
	}

	return &emailCipher{keeper: localsecrets.NewKeeper(key), indexKey: indexKey}, nil
}

func (c *emailCipher) Encrypt(ctx context.Context, email string) (string, error) {
	normalized := entity.NormalizeEmail(email)
	if normalized == "" {
		return "", errors.Wrap(domainerrors.ErrInvalidInput, "empty email")
	}

	ciphertext, err := c.keeper.Encrypt(ctx, []byte(normalized))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrEncryptionFailed.WithDetails(err.Error()), "encrypt email")
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (c *emailCipher) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrEncryptionFailed.WithDetails(err.Error()), "decode email ciphertext")
	}

	plaintext, err := c.keeper.Decrypt(ctx, raw)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrEncryptionFailed.WithDetails(err.Error()), "decrypt email")
	}

	return string(plaintext), nil
}

func (c *emailCipher) BlindIndex(email string) string {
	mac := hmac.New(sha256.New, c.indexKey)
	mac.Write([]byte(entity.NormalizeEmail(email)))

	return hex.EncodeToString(mac.Sum(nil))
}

func decodeKey(encoded string) ([keySize]byte, error) {
	var key [keySize]byte

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return key, errors.Wrap(err, "key is not valid base64")
	}
	if len(raw) != keySize {
		return key, errors.Errorf("key must be %d bytes, got %d", keySize, len(raw))
	}
	copy(key[:], raw)

	return key, nil
}

func deriveIndexKey(master []byte) ([]byte, error) {
	out := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(blindIndexInfo)), out); err != nil {
		return nil, errors.Wrap(err, "derive blind index key")
	}

	return out, nil
}
