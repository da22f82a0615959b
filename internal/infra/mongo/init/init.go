package infra_mongo_init

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/humanbelnik/cineverse/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection           = "users"
	WatchPartiesCollection    = "watchparties"
	NotificationsCollection   = "notifications"
	RecommendationsCollection = "recommendations"
)

func MustEstablishConn(cfg config.Mongo) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Fatal("mongo connect failed: ", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("mongo ping failed: ", err)
	}

	db := client.Database(cfg.DBName)
	if err := EnsureIndexes(ctx, db); err != nil {
		log.Fatal("mongo indexes: ", err)
	}

	slog.Info("connected to MongoDB", slog.String("db", cfg.DBName))
	return db
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		WatchPartiesCollection: {
			{Keys: bson.D{{Key: "organizerId", Value: 1}}},
			{Keys: bson.D{{Key: "attendees.userId", Value: 1}}},
		},
		NotificationsCollection: {
			{Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		RecommendationsCollection: {
			{Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
