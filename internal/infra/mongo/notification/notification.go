package infra_mongo_notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	infra_mongo_init "github.com/humanbelnik/cineverse/internal/infra/mongo/init"
	"github.com/humanbelnik/cineverse/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Driver struct {
	coll *mongo.Collection
}

func New(
	db *mongo.Database,
) *Driver {
	return &Driver{coll: db.Collection(infra_mongo_init.NotificationsCollection)}
}

func (d *Driver) Create(ctx context.Context, n model.Notification) error {
	if _, err := d.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (d *Driver) ListByRecipient(ctx context.Context, recipientID string) ([]model.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := d.coll.Find(ctx, bson.D{{Key: "recipientId", Value: recipientID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	feed := []model.Notification{}
	if err := cursor.All(ctx, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return feed, nil
}

func (d *Driver) MarkRead(ctx context.Context, id string, at time.Time) (model.Notification, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isRead", Value: true},
		{Key: "updatedAt", Value: at},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n model.Notification
	if err := d.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Notification{}, model.ErrNotFound
		}
		return model.Notification{}, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return n, nil
}
