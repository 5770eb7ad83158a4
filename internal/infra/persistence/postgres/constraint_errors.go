package postgres

import (
	"tasker/internal/domain/repository"
	"tasker/internal/errors"
	"tasker/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE unique_violation
const pgUniqueViolation = "23505"

// classify turns GORM and pgx errors into store error kinds.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.NotFound(op)
	case isUniqueConstraintViolation(err):
		return repository.ConstraintViolation(op, violatedField(err), err)
	default:
		return repository.Infrastructure(op, err)
	}
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func violatedField(err error) repository.AccountField {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}

	switch pgErr.ConstraintName {
	case model.IndexAccountUsername:
		return repository.FieldUsername
	case model.IndexAccountEmailIndex:
		return repository.FieldEmailIndex
	default:
		return ""
	}
}
