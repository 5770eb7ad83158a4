package mongodb

import (
	"context"

	"tasker/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionAccounts = "accounts"
	collectionLists    = "lists"
	collectionTasks    = "tasks"

	indexUsername   = "username_unique"
	indexEmailIndex = "email_index_unique"

	codeNamespaceExists = 48
)

// EnsureSchema creates the collections with their validators and indexes.
// Running it against an initialized database is a no-op.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	for name, validator := range collectionValidators() {
		if err := ensureCollection(ctx, db, name, validator); err != nil {
			return err
		}
	}

	for name, models := range collectionIndexes() {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "create %s indexes", name)
		}
	}

	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	opts := options.CreateCollection().SetValidator(validator)

	err := db.CreateCollection(ctx, name, opts)
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		return nil
	}

	return errors.Wrapf(err, "create %s collection", name)
}

func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		collectionAccounts: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(indexUsername),
			},
			{
				Keys:    bson.D{{Key: "email_index", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(indexEmailIndex),
			},
		},
		collectionLists: {
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}},
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		collectionTasks: {
			{Keys: bson.D{{Key: "title", Value: 1}, {Key: "checklist.title", Value: 1}, {Key: "_id", Value: 1}}},
			{Keys: bson.D{{Key: "list_id", Value: 1}}},
		},
	}
}

func collectionValidators() map[string]bson.M {
	return map[string]bson.M{
		collectionAccounts: jsonSchema(bson.M{
			"required": bson.A{"username", "email", "email_index", "authorization"},
		}),
		collectionLists: jsonSchema(bson.M{
			"required": bson.A{"name"},
		}),
		collectionTasks: jsonSchema(bson.M{
			"required": bson.A{"title", "list_id"},
			"properties": bson.M{
				"checklist": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"title"},
					},
				},
				"activity": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"properties": bson.M{
							"action": bson.M{"enum": bson.A{"CREATED", "UPDATE", "ARCHIVE"}},
						},
					},
				},
			},
		}),
	}
}

func jsonSchema(body bson.M) bson.M {
	body["bsonType"] = "object"

	return bson.M{"$jsonSchema": body}
}
