package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one document per key in a single collection, with the
// snapshot held as raw JSON. Selected when MONGOURI is configured.
type MongoStore struct {
	coll *mongo.Collection
}

type blobDoc struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (m *MongoStore) Load(key string, dest any) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc blobDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch blob %s: %w", key, err)
	}
	if err := json.Unmarshal(doc.Data, dest); err != nil {
		return false, fmt.Errorf("failed to decode blob %s: %w", key, err)
	}
	return true, nil
}

func (m *MongoStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, blobDoc{Key: key, Data: data}, opts); err != nil {
		return fmt.Errorf("failed to save blob %s: %w", key, err)
	}
	return nil
}
