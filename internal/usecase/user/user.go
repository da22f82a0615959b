package usecase_user

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/humanbelnik/cineverse/internal/model"
)

var (
	ErrInvalidProfile   = errors.New("uid, email and displayName are required")
	ErrUserNotFound     = errors.New("User not found")
	ErrFavoriteRequired = errors.New("Movie ID and title are required")
	ErrQueryRequired    = errors.New("Query is required")
)

//go:generate mockery --name=Repository --output=./mocks/user/repository --filename=repository.go
type Repository interface {
	Upsert(ctx context.Context, profile model.Profile, at time.Time) (model.User, error)
	Get(ctx context.Context, uid string) (model.User, error)

	// Favorites returns the favorites of uid newest first. Unknown users
	// have no favorites.
	Favorites(ctx context.Context, uid string) ([]model.Favorite, error)
	// AddFavorite reports false when the movie is already a favorite.
	AddFavorite(ctx context.Context, uid string, fav model.Favorite) (bool, error)
	RemoveFavorite(ctx context.Context, uid string, movieID int64) error

	SearchHistory(ctx context.Context, uid string, limit int) ([]model.SearchEntry, error)
	// PushSearch moves entry to the front of the history, dropping any equal
	// query and everything past limit.
	PushSearch(ctx context.Context, uid string, entry model.SearchEntry, limit int) error
	ClearSearchHistory(ctx context.Context, uid string) error
	RemoveSearch(ctx context.Context, uid, query string) error
}

type FavoriteRequest struct {
	MovieID     int64  `validate:"required"`
	Title       string `validate:"required"`
	Poster      string
	Rating      string
	Year        int
	Description string
	Backdrop    string
}

type Usecase struct {
	Repository Repository

	validate *validator.Validate
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(repository Repository, opts ...Option) *Usecase {
	u := &Usecase{
		Repository: repository,
		validate:   validator.New(),
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SyncProfile stores the identity provider profile, creating the user on
// first sign in.
func (u *Usecase) SyncProfile(ctx context.Context, profile model.Profile) (model.User, error) {
	if err := u.validate.Struct(profile); err != nil {
		return model.User{}, errors.Join(model.ErrValidation, ErrInvalidProfile)
	}

	user, err := u.Repository.Upsert(ctx, profile, u.now().UTC())
	if err != nil {
		return model.User{}, errors.Join(model.ErrInternal, err)
	}
	return user, nil
}

func (u *Usecase) Profile(ctx context.Context, uid string) (model.User, error) {
	user, err := u.Repository.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, errors.Join(model.ErrNotFound, ErrUserNotFound)
		}
		return model.User{}, errors.Join(model.ErrInternal, err)
	}
	return user, nil
}

func (u *Usecase) Favorites(ctx context.Context, uid string) ([]model.Favorite, error) {
	favorites, err := u.Repository.Favorites(ctx, uid)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	if favorites == nil {
		favorites = []model.Favorite{}
	}
	return favorites, nil
}

// AddFavorite returns added=false when the movie was already a favorite.
func (u *Usecase) AddFavorite(ctx context.Context, uid string, req FavoriteRequest) (added bool, err error) {
	if err := u.validate.Struct(req); err != nil {
		return false, errors.Join(model.ErrValidation, ErrFavoriteRequired)
	}

	added, err = u.Repository.AddFavorite(ctx, uid, model.Favorite{
		MovieID:     req.MovieID,
		Title:       req.Title,
		Poster:      req.Poster,
		Rating:      req.Rating,
		Year:        req.Year,
		Description: req.Description,
		Backdrop:    req.Backdrop,
		AddedAt:     u.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, errors.Join(model.ErrNotFound, ErrUserNotFound)
		}
		return false, errors.Join(model.ErrInternal, err)
	}
	return added, nil
}

func (u *Usecase) RemoveFavorite(ctx context.Context, uid string, movieID int64) error {
	if err := u.Repository.RemoveFavorite(ctx, uid, movieID); err != nil {
		return errors.Join(model.ErrInternal, err)
	}
	return nil
}

func (u *Usecase) SearchHistory(ctx context.Context, uid string) ([]string, error) {
	entries, err := u.Repository.SearchHistory(ctx, uid, model.MaxSearchHistory)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}

	queries := make([]string, 0, len(entries))
	for _, e := range entries {
		queries = append(queries, e.Query)
	}
	return queries, nil
}

func (u *Usecase) AddSearch(ctx context.Context, uid, query string) error {
	query = NormalizeQuery(query)
	if query == "" {
		return errors.Join(model.ErrValidation, ErrQueryRequired)
	}

	err := u.Repository.PushSearch(ctx, uid, model.SearchEntry{
		Query:     query,
		Timestamp: u.now().UTC(),
	}, model.MaxSearchHistory)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errors.Join(model.ErrNotFound, ErrUserNotFound)
		}
		return errors.Join(model.ErrInternal, err)
	}
	return nil
}

func (u *Usecase) ClearSearchHistory(ctx context.Context, uid string) error {
	if err := u.Repository.ClearSearchHistory(ctx, uid); err != nil {
		return errors.Join(model.ErrInternal, err)
	}
	return nil
}

// RemoveSearch drops one query. The query is normalized the same way
// AddSearch stores it.
func (u *Usecase) RemoveSearch(ctx context.Context, uid, query string) error {
	query = NormalizeQuery(query)
	if query == "" {
		return nil
	}
	if err := u.Repository.RemoveSearch(ctx, uid, query); err != nil {
		return errors.Join(model.ErrInternal, err)
	}
	return nil
}

func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
