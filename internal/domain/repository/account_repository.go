// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tasker/internal/domain/entity"
)

// AccountField names a field FindOne may filter on.
type AccountField string

const (
	FieldID         AccountField = "id"
	FieldUsername   AccountField = "username"
	FieldEmailIndex AccountField = "email_index"
)

// AccountFilter selects at most one account by an exact field match.
type AccountFilter struct {
	Field AccountField
	Value string
}

// AccountRepository is the account store contract.
type AccountRepository interface {
	// Insert persists a new account and sets its ID. Uniqueness of username and
	// email index is enforced by the store in the same atomic write.
	// Errors are *StoreError of kind ConstraintViolation or Infrastructure.
	Insert(ctx context.Context, account *entity.Account) error

	// FindOne returns the single account matching filter.
	// Errors are *StoreError of kind NotFound or Infrastructure.
	FindOne(ctx context.Context, filter AccountFilter) (*entity.Account, error)
}
