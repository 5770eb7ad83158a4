// Package memory is an in-process account store for local runs and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"tasker/internal/domain/entity"
	"tasker/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	mu           sync.RWMutex
	byID         map[string]*entity.Account
	byUsername   map[string]string
	byEmailIndex map[string]string
}

// NewAccountRepository returns an empty store. Inserts are serialized so the
// unique checks and the write happen atomically.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		byID:         make(map[string]*entity.Account),
		byUsername:   make(map[string]string),
		byEmailIndex: make(map[string]string),
	}
}

func (r *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	const op = "insert account"

	if err := ctx.Err(); err != nil {
		return repository.Infrastructure(op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[account.Username]; exists {
		return repository.ConstraintViolation(op, repository.FieldUsername, nil)
	}
	if _, exists := r.byEmailIndex[account.EmailIndex]; exists {
		return repository.ConstraintViolation(op, repository.FieldEmailIndex, nil)
	}

	now := time.Now().UTC()
	account.ID = uuid.NewString()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	stored := clone(account)
	r.byID[stored.ID] = stored
	r.byUsername[stored.Username] = stored.ID
	r.byEmailIndex[stored.EmailIndex] = stored.ID

	return nil
}

func (r *accountRepository) FindOne(ctx context.Context, filter repository.AccountFilter) (*entity.Account, error) {
	const op = "find account"

	if err := ctx.Err(); err != nil {
		return nil, repository.Infrastructure(op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var id string
	switch filter.Field {
	case repository.FieldID:
		id = filter.Value
	case repository.FieldUsername:
		id = r.byUsername[filter.Value]
	case repository.FieldEmailIndex:
		id = r.byEmailIndex[filter.Value]
	}

	account, ok := r.byID[id]
	if !ok {
		return nil, repository.NotFound(op)
	}

	return clone(account), nil
}

// clone keeps callers from mutating stored records.
func clone(a *entity.Account) *entity.Account {
	c := *a
	c.ListIDs = append([]string(nil), a.ListIDs...)
	c.Auth.APIKeys = append([]string(nil), a.Auth.APIKeys...)

	return &c
}
