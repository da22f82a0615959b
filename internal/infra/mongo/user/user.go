package infra_mongo_user

import (
	"context"
	"errors"
	"fmt"
	"sort"
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
	return &Driver{coll: db.Collection(infra_mongo_init.UsersCollection)}
}

func byUID(uid string) bson.D {
	return bson.D{{Key: "uid", Value: uid}}
}

func (d *Driver) Upsert(ctx context.Context, profile model.Profile, at time.Time) (model.User, error) {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "email", Value: profile.Email},
			{Key: "displayName", Value: profile.DisplayName},
			{Key: "photoURL", Value: profile.PhotoURL},
			{Key: "updatedAt", Value: at},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "searchHistory", Value: bson.A{}},
			{Key: "favorites", Value: bson.A{}},
			{Key: "createdAt", Value: at},
		}},
	}
	if _, err := d.coll.UpdateOne(ctx, byUID(profile.UID), update, options.Update().SetUpsert(true)); err != nil {
		return model.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}
	return d.Get(ctx, profile.UID)
}

func (d *Driver) Get(ctx context.Context, uid string) (model.User, error) {
	user, err := d.find(ctx, uid, nil)
	if err != nil {
		return model.User{}, err
	}
	sortFavorites(user.Favorites)
	if len(user.SearchHistory) > model.MaxSearchHistory {
		user.SearchHistory = user.SearchHistory[:model.MaxSearchHistory]
	}
	return user, nil
}

func (d *Driver) Favorites(ctx context.Context, uid string) ([]model.Favorite, error) {
	user, err := d.find(ctx, uid, bson.D{{Key: "favorites", Value: 1}})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []model.Favorite{}, nil
		}
		return nil, err
	}
	sortFavorites(user.Favorites)
	return user.Favorites, nil
}

// AddFavorite pushes only when no favorite with the same movie id exists,
// in one document update.
func (d *Driver) AddFavorite(ctx context.Context, uid string, fav model.Favorite) (bool, error) {
	filter := bson.D{
		{Key: "uid", Value: uid},
		{Key: "favorites.movieId", Value: bson.D{{Key: "$ne", Value: fav.MovieID}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "favorites", Value: fav}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: fav.AddedAt}}},
	}

	res, err := d.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	if res.MatchedCount == 1 {
		return true, nil
	}

	count, err := d.coll.CountDocuments(ctx, byUID(uid))
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	if count == 0 {
		return false, model.ErrNotFound
	}
	return false, nil
}

func (d *Driver) RemoveFavorite(ctx context.Context, uid string, movieID int64) error {
	update := bson.D{{Key: "$pull", Value: bson.D{
		{Key: "favorites", Value: bson.D{{Key: "movieId", Value: movieID}}},
	}}}
	if _, err := d.coll.UpdateOne(ctx, byUID(uid), update); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// SearchHistory relies on PushSearch keeping the array newest first.
func (d *Driver) SearchHistory(ctx context.Context, uid string, limit int) ([]model.SearchEntry, error) {
	user, err := d.find(ctx, uid, bson.D{{Key: "searchHistory", Value: 1}})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []model.SearchEntry{}, nil
		}
		return nil, err
	}
	history := user.SearchHistory
	if len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

// PushSearch rewrites the history with an aggregation pipeline update so the
// filter, prepend and truncate happen atomically on the server.
func (d *Driver) PushSearch(ctx context.Context, uid string, entry model.SearchEntry, limit int) error {
	existing := bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$searchHistory", bson.A{}}}}},
		{Key: "as", Value: "h"},
		{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{
			"$$h.query",
			bson.D{{Key: "$literal", Value: entry.Query}},
		}}}},
	}}}
	fresh := bson.D{{Key: "$literal", Value: bson.A{
		bson.D{{Key: "query", Value: entry.Query}, {Key: "timestamp", Value: entry.Timestamp}},
	}}}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "searchHistory", Value: bson.D{{Key: "$slice", Value: bson.A{
				bson.D{{Key: "$concatArrays", Value: bson.A{fresh, existing}}},
				limit,
			}}}},
			{Key: "updatedAt", Value: entry.Timestamp},
		}}},
	}

	res, err := d.coll.UpdateOne(ctx, byUID(uid), pipeline)
	if err != nil {
		return fmt.Errorf("failed to push search: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (d *Driver) ClearSearchHistory(ctx context.Context, uid string) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "searchHistory", Value: bson.A{}}}}}
	if _, err := d.coll.UpdateOne(ctx, byUID(uid), update); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	return nil
}

func (d *Driver) RemoveSearch(ctx context.Context, uid, query string) error {
	update := bson.D{{Key: "$pull", Value: bson.D{
		{Key: "searchHistory", Value: bson.D{{Key: "query", Value: query}}},
	}}}
	if _, err := d.coll.UpdateOne(ctx, byUID(uid), update); err != nil {
		return fmt.Errorf("failed to remove search: %w", err)
	}
	return nil
}

func (d *Driver) find(ctx context.Context, uid string, projection bson.D) (model.User, error) {
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var user model.User
	if err := d.coll.FindOne(ctx, byUID(uid), opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Favorites == nil {
		user.Favorites = []model.Favorite{}
	}
	if user.SearchHistory == nil {
		user.SearchHistory = []model.SearchEntry{}
	}
	return user, nil
}

func sortFavorites(favorites []model.Favorite) {
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].AddedAt.After(favorites[j].AddedAt)
	})
}
