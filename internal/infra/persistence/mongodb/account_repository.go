package mongodb

import (
	"context"
	"time"

	"tasker/config"
	"tasker/internal/domain/entity"
	"tasker/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type accountRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewAccountRepository stores accounts in the accounts collection.
func NewAccountRepository(db *mongo.Database, cfg *config.Config) repository.AccountRepository {
	return &accountRepository{
		coll:    db.Collection(collectionAccounts),
		timeout: cfg.Store.Timeout,
	}
}

func (r *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	const op = "insert account"

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	doc := toAccountDocument(account)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return classify(op, err)
	}

	account.ID = doc.ID.Hex()

	return nil
}

func (r *accountRepository) FindOne(ctx context.Context, filter repository.AccountFilter) (*entity.Account, error) {
	const op = "find account"

	query, ok := buildFilter(filter)
	if !ok {
		return nil, repository.NotFound(op)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc accountDocument
	if err := r.coll.FindOne(ctx, query).Decode(&doc); err != nil {
		return nil, classify(op, err)
	}

	return doc.toEntity(), nil
}

// buildFilter maps a field filter to a query. ok is false when no document can match.
func buildFilter(filter repository.AccountFilter) (bson.D, bool) {
	switch filter.Field {
	case repository.FieldID:
		oid, err := primitive.ObjectIDFromHex(filter.Value)
		if err != nil {
			return nil, false
		}

		return bson.D{{Key: "_id", Value: oid}}, true
	case repository.FieldUsername:
		return bson.D{{Key: "username", Value: filter.Value}}, true
	case repository.FieldEmailIndex:
		return bson.D{{Key: "email_index", Value: filter.Value}}, true
	default:
		return nil, false
	}
}
