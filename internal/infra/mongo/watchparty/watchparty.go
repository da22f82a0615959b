package infra_mongo_watchparty

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
	return &Driver{coll: db.Collection(infra_mongo_init.WatchPartiesCollection)}
}

func (d *Driver) Create(ctx context.Context, party model.WatchParty) error {
	if _, err := d.coll.InsertOne(ctx, party); err != nil {
		return fmt.Errorf("failed to insert watch party: %w", err)
	}
	return nil
}

func (d *Driver) ListByUser(ctx context.Context, userID string) ([]model.WatchParty, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "organizerId", Value: userID}},
		bson.D{{Key: "attendees.userId", Value: userID}},
	}}}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledTime", Value: -1}})

	cursor, err := d.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list watch parties: %w", err)
	}

	parties := []model.WatchParty{}
	if err := cursor.All(ctx, &parties); err != nil {
		return nil, fmt.Errorf("failed to decode watch parties: %w", err)
	}
	return parties, nil
}

func (d *Driver) GetByID(ctx context.Context, partyID string) (model.WatchParty, error) {
	var party model.WatchParty
	err := d.coll.FindOne(ctx, bson.D{{Key: "_id", Value: partyID}}).Decode(&party)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.WatchParty{}, model.ErrNotFound
		}
		return model.WatchParty{}, fmt.Errorf("failed to load watch party: %w", err)
	}
	return party, nil
}

// SetAttendeeStatus relies on the positional operator: the filter pins both
// the party and the attendee, so either exactly one element changes or none.
func (d *Driver) SetAttendeeStatus(ctx context.Context, partyID, userID string, status model.AttendeeStatus, at time.Time) (model.WatchParty, error) {
	filter := bson.D{
		{Key: "_id", Value: partyID},
		{Key: "attendees.userId", Value: userID},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "attendees.$.status", Value: status},
		{Key: "updatedAt", Value: at},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var party model.WatchParty
	if err := d.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&party); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.WatchParty{}, model.ErrNotFound
		}
		return model.WatchParty{}, fmt.Errorf("failed to update attendee: %w", err)
	}
	return party, nil
}

func (d *Driver) DeleteByOrganizer(ctx context.Context, partyID, organizerID string) error {
	res, err := d.coll.DeleteOne(ctx, bson.D{
		{Key: "_id", Value: partyID},
		{Key: "organizerId", Value: organizerID},
	})
	if err != nil {
		return fmt.Errorf("failed to delete watch party: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
