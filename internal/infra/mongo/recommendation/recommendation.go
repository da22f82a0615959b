package infra_mongo_recommendation

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
	return &Driver{coll: db.Collection(infra_mongo_init.RecommendationsCollection)}
}

func (d *Driver) Create(ctx context.Context, r model.Recommendation) error {
	if _, err := d.coll.InsertOne(ctx, r); err != nil {
		return fmt.Errorf("failed to insert recommendation: %w", err)
	}
	return nil
}

func (d *Driver) ListByRecipient(ctx context.Context, recipientID string) ([]model.Recommendation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := d.coll.Find(ctx, bson.D{{Key: "recipientId", Value: recipientID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	feed := []model.Recommendation{}
	if err := cursor.All(ctx, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	return feed, nil
}

func (d *Driver) MarkRead(ctx context.Context, id string, at time.Time) (model.Recommendation, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isRead", Value: true},
		{Key: "updatedAt", Value: at},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var r model.Recommendation
	if err := d.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Recommendation{}, model.ErrNotFound
		}
		return model.Recommendation{}, fmt.Errorf("failed to mark recommendation read: %w", err)
	}
	return r, nil
}

func (d *Driver) Delete(ctx context.Context, id string) error {
	res, err := d.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
