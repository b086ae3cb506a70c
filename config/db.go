package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB connects to MongoDB using MONGOURI. Used only when the Mongo
// storage backend is selected.
func ConnectDB() (*mongo.Client, error) {
	MONGO_URI := os.Getenv("MONGOURI")
	if MONGO_URI == "" {
		return nil, fmt.Errorf("MONGOURI not set in environment")
	}

	clientOptions := options.Client().ApplyURI(MONGO_URI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	log.Info().Msg("Connected to MongoDB")
	return client, nil
}

// BlobCollection returns the collection holding the site's storage blobs,
// one document per storage key.
func BlobCollection(client *mongo.Client) *mongo.Collection {
	dbName := Getenv("DB", "cedar_lux_site")
	return client.Database(dbName).Collection("blobs")
}

// CloseDBConnection disconnects the Mongo client.
func CloseDBConnection(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Fatal().Err(err).Msg("Error closing database connection")
	}
	log.Info().Msg("MongoDB connection closed")
}
