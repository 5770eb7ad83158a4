package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"tasker/internal/domain/entity"
	"tasker/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(username, emailIndex string) *entity.Account {
	return &entity.Account{
		Username:       username,
		EncryptedEmail: "cipher-" + username,
		EmailIndex:     emailIndex,
		PasswordHash:   "hash",
		PasswordNonce:  "nonce",
	}
}

func TestAccountRepository_InsertAndFind(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	account := newAccount("ada", "idx-ada")
	require.NoError(t, repo.Insert(ctx, account))
	require.NotEmpty(t, account.ID)
	assert.False(t, account.CreatedAt.IsZero())

	for _, filter := range []repository.AccountFilter{
		{Field: repository.FieldID, Value: account.ID},
		{Field: repository.FieldUsername, Value: "ada"},
		{Field: repository.FieldEmailIndex, Value: "idx-ada"},
	} {
		got, err := repo.FindOne(ctx, filter)
		require.NoError(t, err, filter.Field)
		assert.Equal(t, account.ID, got.ID)
		assert.Equal(t, "cipher-ada", got.EncryptedEmail)
	}
}

func TestAccountRepository_FindMissing(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.FindOne(context.Background(), repository.AccountFilter{Field: repository.FieldUsername, Value: "ghost"})
	assert.True(t, repository.IsNotFound(err))

	_, err = repo.FindOne(context.Background(), repository.AccountFilter{Field: "password", Value: "x"})
	assert.True(t, repository.IsNotFound(err))
}

func TestAccountRepository_UniqueFields(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newAccount("ada", "idx-ada")))

	err := repo.Insert(ctx, newAccount("ada", "idx-other"))
	require.True(t, repository.IsConstraintViolation(err))
	var storeErr *repository.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, repository.FieldUsername, storeErr.Field)

	err = repo.Insert(ctx, newAccount("bob", "idx-ada"))
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, repository.FieldEmailIndex, storeErr.Field)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newAccount("ada", "idx-ada")))

	got, err := repo.FindOne(ctx, repository.AccountFilter{Field: repository.FieldUsername, Value: "ada"})
	require.NoError(t, err)
	got.PasswordHash = "tampered"

	again, err := repo.FindOne(ctx, repository.AccountFilter{Field: repository.FieldUsername, Value: "ada"})
	require.NoError(t, err)
	assert.Equal(t, "hash", again.PasswordHash)
}

func TestAccountRepository_CanceledContext(t *testing.T) {
	repo := NewAccountRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Insert(ctx, newAccount("ada", "idx-ada"))
	assert.Equal(t, repository.KindInfrastructure, repository.KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAccountRepository_ConcurrentInsertSameUsername(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	const workers = 32
	var (
		wg         sync.WaitGroup
		successes  atomic.Int32
		violations atomic.Int32
	)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := repo.Insert(ctx, newAccount("ada", fmt.Sprintf("idx-%d", i)))
			switch {
			case err == nil:
				successes.Add(1)
			case repository.IsConstraintViolation(err):
				violations.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, successes.Load())
	assert.EqualValues(t, workers-1, violations.Load())
}
