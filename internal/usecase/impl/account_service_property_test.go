package impl

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/infra/auth"
	"tasker/internal/infra/persistence/memory"
	"tasker/internal/infra/secret"
	"tasker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newRealAccountService wires real crypto and the in-memory store.
func newRealAccountService(t *testing.T) (usecase.AccountUsecase, repository.AccountRepository) {
	t.Helper()

	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	var key [32]byte
	copy(key[:], "0123456789abcdef0123456789abcdef")
	cipher, err := secret.NewLocalEmailCipher(key)
	require.NoError(t, err)

	accounts := memory.NewAccountRepository()

	return NewAccountService(AccountServiceParams{
		Accounts: accounts,
		Cipher:   cipher,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	}), accounts
}

func TestAccountFlow_SignupThenLogin(t *testing.T) {
	svc, accounts := newRealAccountService(t)
	ctx := context.Background()

	signup := usecase.SignupResult(svc.Signup(ctx, &usecase.SignupInput{Email: "Ada@Example.com", Username: "ada", Password: "correct horse"}))
	require.False(t, signup.Error, signup.Message)
	assert.Equal(t, http.StatusOK, signup.Status)
	assert.Equal(t, usecase.MessageAccountCreated, signup.Message)

	stored, err := accounts.FindOne(ctx, repository.AccountFilter{Field: repository.FieldUsername, Value: "ada"})
	require.NoError(t, err)
	assert.NotContains(t, stored.EncryptedEmail, "ada@example.com")
	assert.NotContains(t, stored.PasswordHash, "correct horse")

	login := usecase.LoginResult(svc.Login(ctx, &usecase.LoginInput{Username: "ada", Password: "correct horse"}))
	assert.Equal(t, usecase.Result{Status: http.StatusOK, Message: usecase.MessageLoggedIn, AccountID: signup.AccountID}, login)
}

func TestAccountFlow_FailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newRealAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &usecase.SignupInput{Email: "ada@example.com", Username: "ada", Password: "correct horse"})
	require.NoError(t, err)

	wrongPassword := usecase.LoginResult(svc.Login(ctx, &usecase.LoginInput{Username: "ada", Password: "correct horsf"}))
	unknownUser := usecase.LoginResult(svc.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "correct horse"}))

	assert.Equal(t, wrongPassword, unknownUser)
	assert.Equal(t, usecase.Result{Error: true, Status: http.StatusBadRequest, Message: domainerrors.MessageInvalidCredentials}, unknownUser)
}

func TestAccountFlow_EmptyFieldsAreInvalidInput(t *testing.T) {
	svc, _ := newRealAccountService(t)

	for _, in := range []usecase.SignupInput{
		{Email: "", Username: "u", Password: "p"},
		{Email: "e", Username: "", Password: "p"},
		{Email: "e", Username: "u", Password: ""},
	} {
		result := usecase.SignupResult(svc.Signup(context.Background(), &in))

		assert.True(t, result.Error)
		assert.Equal(t, http.StatusBadRequest, result.Status)
		assert.Equal(t, domainerrors.ErrInvalidInput.Message(), result.Message)
	}
}

func TestAccountFlow_ConcurrentSignupSameUsername(t *testing.T) {
	svc, _ := newRealAccountService(t)
	ctx := context.Background()

	const workers = 8
	results := make([]usecase.Result, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			results[i] = usecase.SignupResult(svc.Signup(ctx, &usecase.SignupInput{
				Email:    fmt.Sprintf("user%d@example.com", i),
				Username: "ada",
				Password: "correct horse",
			}))
		}()
	}
	wg.Wait()

	successes := 0
	for _, r := range results {
		if !r.Error {
			successes++

			continue
		}
		assert.Equal(t, http.StatusBadRequest, r.Status)
		assert.Equal(t, domainerrors.ErrAccountConflict.Message(), r.Message)
	}
	assert.Equal(t, 1, successes)
}

func TestAccountFlow_DuplicateEmailConflicts(t *testing.T) {
	svc, _ := newRealAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &usecase.SignupInput{Email: "ada@example.com", Username: "ada", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &usecase.SignupInput{Email: " ADA@example.com", Username: "ada2", Password: "pw"})
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestAccountFlow_RepeatedHashesDiffer(t *testing.T) {
	svc, accounts := newRealAccountService(t)
	ctx := context.Background()

	first, err := svc.Signup(ctx, &usecase.SignupInput{Email: "a@example.com", Username: "first", Password: "same"})
	require.NoError(t, err)
	second, err := svc.Signup(ctx, &usecase.SignupInput{Email: "b@example.com", Username: "second", Password: "same"})
	require.NoError(t, err)

	a, err := accounts.FindOne(ctx, repository.AccountFilter{Field: repository.FieldID, Value: first.AccountID})
	require.NoError(t, err)
	b, err := accounts.FindOne(ctx, repository.AccountFilter{Field: repository.FieldID, Value: second.AccountID})
	require.NoError(t, err)

	assert.NotEqual(t, a.PasswordNonce, b.PasswordNonce)
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)

	// Identical credential context still hashes differently through the bcrypt salt.
	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)
	cc := entity.CredentialContext{Email: "a@example.com", Username: "first", Nonce: a.PasswordNonce}
	again, err := hasher.Hash("same", cc)
	require.NoError(t, err)
	assert.NotEqual(t, a.PasswordHash, again)
	assert.True(t, hasher.Verify("same", cc, again))
}
