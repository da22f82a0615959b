//go:build !integration
// +build !integration

package infra_mongo_recommendation

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

var sentAt = time.Date(2025, 4, 4, 18, 0, 0, 0, time.UTC)

func recommendationDoc(id, title string, read bool, at time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "senderId", Value: "u1"},
		{Key: "recipientId", Value: "u2"},
		{Key: "movieId", Value: int64(603)},
		{Key: "message", Value: "watch it"},
		{Key: "movieTitle", Value: title},
		{Key: "movieYear", Value: 1999},
		{Key: "isRead", Value: read},
		{Key: "createdAt", Value: at},
		{Key: "updatedAt", Value: at},
	}
}

func TestRecommendationMongoDriver(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("feed is requested newest first", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.recommendations", mtest.FirstBatch,
			recommendationDoc("r2", "Inception", false, sentAt),
			recommendationDoc("r1", "The Matrix", true, sentAt.Add(-time.Hour)),
		))

		feed, err := New(mt.DB).ListByRecipient(ctx, "u2")

		require.NoError(mt, err)
		require.Len(mt, feed, 2)
		assert.Equal(mt, "Inception", feed[0].MovieTitle)
		assert.Equal(mt, 1999, feed[1].MovieYear)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, int64(-1), evt.Command.Lookup("sort", "createdAt").AsInt64())
	})

	mt.Run("mark read twice stays read", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: recommendationDoc("r1", "The Matrix", true, sentAt)}),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: recommendationDoc("r1", "The Matrix", true, sentAt)}),
		)
		driver := New(mt.DB)

		first, err := driver.MarkRead(ctx, "r1", sentAt)
		require.NoError(mt, err)
		second, err := driver.MarkRead(ctx, "r1", sentAt)
		require.NoError(mt, err)

		assert.True(mt, first.IsRead)
		assert.Equal(mt, first, second)
	})

	mt.Run("mark read of missing recommendation is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := New(mt.DB).MarkRead(ctx, "missing", sentAt)

		assert.ErrorIs(mt, err, model.ErrNotFound)
	})

	mt.Run("delete removes existing recommendation", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, New(mt.DB).Delete(ctx, "r1"))
	})

	mt.Run("delete of missing recommendation is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := New(mt.DB).Delete(ctx, "missing")

		assert.ErrorIs(mt, err, model.ErrNotFound)
	})
}
