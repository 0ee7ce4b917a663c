package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadwatch/report-system/internal/core/ports"
)

const collectionMirror = "mirror"

// mirrorDoc is one persisted key/value pair; the mirror key doubles as the
// document id so Set is a natural upsert.
type mirrorDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Mirror persists dashboard state as one document per mirror key in the
// mirror collection.
type Mirror struct {
	col *mongo.Collection
}

func NewMirror(db *mongo.Database) *Mirror {
	return &Mirror{col: db.Collection(collectionMirror)}
}

func (m *Mirror) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mirrorDoc
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ports.ErrKeyNotFound
		}
		return "", fmt.Errorf("mirror get: %w", err)
	}
	return doc.Value, nil
}

func (m *Mirror) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.col.ReplaceOne(ctx,
		bson.M{"_id": key},
		mirrorDoc{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mirror set: %w", err)
	}
	return nil
}

// Delete removes key; deleting an absent key is not an error.
func (m *Mirror) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := m.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mirror delete: %w", err)
	}
	return nil
}
