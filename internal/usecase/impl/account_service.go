// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/domain/service"
	"tasker/internal/errors"
	"tasker/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dummyCredential is hashed once and verified against whenever the username
// is unknown, so both login failures cost one bcrypt comparison.
var dummyCredential = entity.CredentialContext{
	Email:    "nobody@invalid",
	Username: "nobody",
	Nonce:    "00000000-0000-0000-0000-000000000000",
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	accounts repository.AccountRepository
	cipher   service.EmailCipher
	hasher   service.PasswordHasher
	validate *validator.Validate
	logger   *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Accounts repository.AccountRepository
	Cipher   service.EmailCipher
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accounts: params.Accounts,
		cipher:   params.Cipher,
		hasher:   params.Hasher,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup encrypts the email, hashes the password and inserts the account in one write.
// Duplicate usernames or emails surface as a conflict from the store's unique indexes.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput)
	}

	in := usecase.SignupInput{
		Email:    entity.NormalizeEmail(input.Email),
		Username: strings.TrimSpace(input.Username),
		Password: input.Password,
	}
	if err := srv.validate.StructCtx(ctx, &in); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput.WithDetails(err.Error()), "signup input")
	}

	encryptedEmail, err := srv.cipher.Encrypt(ctx, in.Email)
	if err != nil {
		return nil, srv.internal(ctx, "Failed to encrypt email during signup", err, in.Username)
	}

	account := &entity.Account{
		Username:       in.Username,
		EncryptedEmail: encryptedEmail,
		EmailIndex:     srv.cipher.BlindIndex(in.Email),
		PasswordNonce:  uuid.NewString(),
	}

	account.PasswordHash, err = srv.hasher.Hash(in.Password, entity.CredentialContext{
		Email:    in.Email,
		Username: in.Username,
		Nonce:    account.PasswordNonce,
	})
	if err != nil {
		return nil, srv.internal(ctx, "Failed to hash password during signup", err, in.Username)
	}

	if err := srv.accounts.Insert(ctx, account); err != nil {
		if storeErr, ok := errors.Find[*repository.StoreError](err); ok && storeErr.Kind == repository.KindConstraintViolation {
			srv.log(ctx).Info("Signup rejected by unique constraint",
				slog.String("username", in.Username),
				slog.String("field", string(storeErr.Field)),
			)

			return nil, errors.Wrap(domainerrors.ErrAccountConflict.WithDetails(string(storeErr.Field)), "insert account")
		}

		return nil, srv.internal(ctx, "Failed to insert account", err, in.Username)
	}

	srv.log(ctx).Info("Account created", slog.String("account_id", account.ID), slog.String("username", in.Username))

	return &usecase.SignupOutput{AccountID: account.ID}, nil
}

// Login looks the account up by username only and verifies the password locally.
// Unknown usernames and wrong passwords return the same error.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingLoginFields)
	}

	in := usecase.LoginInput{
		Username: strings.TrimSpace(input.Username),
		Password: input.Password,
	}
	if err := srv.validate.StructCtx(ctx, &in); err != nil {
		return nil, errors.Wrap(domainerrors.ErrMissingLoginFields.WithDetails(err.Error()), "login input")
	}

	account, err := srv.accounts.FindOne(ctx, repository.AccountFilter{Field: repository.FieldUsername, Value: in.Username})
	if repository.IsNotFound(err) {
		srv.burnVerification(in.Password)
		srv.log(ctx).Info("Login failed", slog.String("username", in.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
	}
	if err != nil {
		return nil, srv.internal(ctx, "Failed to load account for login", err, in.Username)
	}

	email, err := srv.cipher.Decrypt(ctx, account.EncryptedEmail)
	if err != nil {
		return nil, srv.internal(ctx, "Failed to decrypt stored email", err, in.Username)
	}

	cc := entity.CredentialContext{Email: email, Username: account.Username, Nonce: account.PasswordNonce}
	if !srv.hasher.Verify(in.Password, cc, account.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("username", in.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("account_id", account.ID))

	return &usecase.LoginOutput{AccountID: account.ID}, nil
}

func (srv *accountService) burnVerification(password string) {
	srv.dummyOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyCredential.Username, dummyCredential)
		if err != nil {
			srv.logger.Error("Failed to prepare dummy hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	_ = srv.hasher.Verify(password, dummyCredential, srv.dummyHash)
}

// internal logs the detailed cause and returns an internal error. A cause that
// already carries an AppError keeps it so callers see its code.
func (srv *accountService) internal(ctx context.Context, msg string, err error, username string) error {
	srv.log(ctx).Error(msg, slog.String("username", username), slog.Any("error", err))

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.WithMessage(err, msg)
	}

	return errors.Wrap(domainerrors.ErrStoreUnavailable.WithDetails(err.Error()), msg)
}
