package database

import (
	"context"
	"log"
	"time"

	"tidybook/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// MongoClient is the global MongoDB client backing orders and preferences.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection with a ping.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB is unreachable: %v", err)
	}

	MongoClient = client
	log.Println("Connected to MongoDB")
}
