package database

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voguevault/voguevault-backend-go/config"
)

// DB is the process-wide database handle, set by Connect.
var DB *mongo.Database

var (
	mu     sync.Mutex
	client *mongo.Client
)

// Connect dials MongoDB, verifies the connection and bootstraps the unique
// indexes the signup path relies on. Calling it again after a successful
// connect is a no-op.
func Connect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoURI := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return err
	}

	if err := cl.Ping(ctx, nil); err != nil {
		return err
	}

	db := cl.Database(config.GetEnv("MONGODB_DATABASE", "voguevault"))
	if err := ensureIndexes(ctx, db); err != nil {
		return err
	}

	client = cl
	DB = db
	log.Println("Connected to MongoDB")
	return nil
}

// Disconnect tears down the client. Safe to call when never connected.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return nil
	}

	err := client.Disconnect(ctx)
	client = nil
	DB = nil
	return err
}

// ensureIndexes enforces global uniqueness of email and mobile. The signup
// pre-check can race; the index is what actually guarantees the invariant.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "mobile", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
