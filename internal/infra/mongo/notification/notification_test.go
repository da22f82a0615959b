//go:build !integration
// +build !integration

package infra_mongo_notification

import (
	"context"
	"testing"
	"time"

	"github.com/humanbelnik/cineverse/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var createdAt = time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

func notificationDoc(id string, read bool, at time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "recipientId", Value: "u2"},
		{Key: "senderId", Value: "u1"},
		{Key: "type", Value: "recommendation"},
		{Key: "message", Value: "try this"},
		{Key: "isRead", Value: read},
		{Key: "createdAt", Value: at},
		{Key: "updatedAt", Value: at},
	}
}

func TestNotificationMongoDriver(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("feed is requested newest first", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.notifications", mtest.FirstBatch,
			notificationDoc("n2", false, createdAt),
			notificationDoc("n1", true, createdAt.Add(-time.Hour)),
		))

		feed, err := New(mt.DB).ListByRecipient(ctx, "u2")

		require.NoError(mt, err)
		require.Len(mt, feed, 2)
		assert.Equal(mt, "n2", feed[0].ID)
		assert.True(mt, feed[1].IsRead)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "u2", evt.Command.Lookup("filter", "recipientId").StringValue())
		assert.Equal(mt, int64(-1), evt.Command.Lookup("sort", "createdAt").AsInt64())
	})

	mt.Run("empty feed is an empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.notifications", mtest.FirstBatch))

		feed, err := New(mt.DB).ListByRecipient(ctx, "nobody")

		require.NoError(mt, err)
		assert.NotNil(mt, feed)
		assert.Empty(mt, feed)
	})

	mt.Run("mark read twice stays read", func(mt *mtest.T) {
		readAt := createdAt.Add(time.Minute)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: notificationDoc("n1", true, createdAt)}),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: notificationDoc("n1", true, createdAt)}),
		)
		driver := New(mt.DB)

		first, err := driver.MarkRead(ctx, "n1", readAt)
		require.NoError(mt, err)
		second, err := driver.MarkRead(ctx, "n1", readAt)
		require.NoError(mt, err)

		assert.True(mt, first.IsRead)
		assert.True(mt, second.IsRead)
	})

	mt.Run("mark read of missing notification is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := New(mt.DB).MarkRead(ctx, "missing", createdAt)

		assert.ErrorIs(mt, err, model.ErrNotFound)
	})
}
