package mongodb

import (
	"regexp"

	"tasker/internal/domain/repository"
	"tasker/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var dupIndexPattern = regexp.MustCompile(`index: (\S+) dup key`)

// classify turns driver errors into store error kinds.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.NotFound(op)
	case mongo.IsDuplicateKeyError(err):
		return repository.ConstraintViolation(op, violatedField(err), err)
	default:
		return repository.Infrastructure(op, err)
	}
}

// violatedField reads the index name out of the E11000 message.
func violatedField(err error) repository.AccountField {
	match := dupIndexPattern.FindStringSubmatch(err.Error())
	if len(match) != 2 {
		return ""
	}

	switch match[1] {
	case indexUsername:
		return repository.FieldUsername
	case indexEmailIndex:
		return repository.FieldEmailIndex
	default:
		return ""
	}
}
