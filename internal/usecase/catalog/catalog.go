package usecase_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/humanbelnik/cineverse/internal/model"
)

var (
	ErrQueryRequired = errors.New("search query is required")
	ErrUnknownList   = errors.New("unknown listing")
	ErrMovieNotFound = errors.New("movie not found")
	ErrCatalogDown   = errors.New("catalog is unavailable, try again later")
)

const DefaultRegion = "US"

//go:generate mockery --name=Provider --output=./mocks/catalog/provider --filename=provider.go
type Provider interface {
	List(ctx context.Context, kind model.ListKind, includeAdult bool) ([]model.Movie, error)
	Search(ctx context.Context, query string, includeAdult bool) ([]model.Movie, error)
	Genres(ctx context.Context) ([]model.Genre, error)
	Discover(ctx context.Context, genreID int64, includeAdult bool) ([]model.Movie, error)
	Details(ctx context.Context, movieID int64) (model.MovieDetails, error)
	Recommendations(ctx context.Context, movieID int64) ([]model.Movie, error)
	WatchProviders(ctx context.Context, movieID int64, region string) (model.WatchProviders, error)
}

// Cache returns an empty value on miss.
//
//go:generate mockery --name=Cache --output=./mocks/catalog/cache --filename=cache.go
type Cache interface {
	Get(key string) (string, error)
	Set(key string, value string, ttl time.Duration) error
}

type Usecase struct {
	Provider Provider
	Cache    Cache

	ttl    time.Duration
	logger *slog.Logger
}

// New builds the catalog use case. A nil cache disables caching.
func New(provider Provider, cache Cache, ttl time.Duration) *Usecase {
	return &Usecase{
		Provider: provider,
		Cache:    cache,
		ttl:      ttl,
		logger:   slog.Default(),
	}
}

func (u *Usecase) WithLogger(logger *slog.Logger) *Usecase {
	u.logger = logger
	return u
}

func IsListKind(kind model.ListKind) bool {
	switch kind {
	case model.ListTrending, model.ListPopular, model.ListTopRated, model.ListNowPlaying, model.ListUpcoming:
		return true
	}
	return false
}

// List never fails on upstream errors: browsing stays usable with an empty
// result when the catalog is flaky.
func (u *Usecase) List(ctx context.Context, kind model.ListKind, includeAdult bool) ([]model.Movie, error) {
	if !IsListKind(kind) {
		return nil, errors.Join(model.ErrValidation, ErrUnknownList)
	}

	key := fmt.Sprintf("list:%s:%t", kind, includeAdult)
	movies, err := readThrough(ctx, u, key, func(ctx context.Context) ([]model.Movie, error) {
		return u.Provider.List(ctx, kind, includeAdult)
	})
	return u.softMovies(movies, err, key), nil
}

func (u *Usecase) Search(ctx context.Context, query string, includeAdult bool) ([]model.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Join(model.ErrValidation, ErrQueryRequired)
	}

	key := fmt.Sprintf("search:%s:%t", strings.ToLower(query), includeAdult)
	movies, err := readThrough(ctx, u, key, func(ctx context.Context) ([]model.Movie, error) {
		return u.Provider.Search(ctx, query, includeAdult)
	})
	return u.softMovies(movies, err, key), nil
}

func (u *Usecase) Genres(ctx context.Context) ([]model.Genre, error) {
	genres, err := readThrough(ctx, u, "genres", u.Provider.Genres)
	if err != nil {
		u.logger.Warn("catalog genres unavailable", slog.String("error", err.Error()))
		return []model.Genre{}, nil
	}
	if genres == nil {
		genres = []model.Genre{}
	}
	return genres, nil
}

func (u *Usecase) Discover(ctx context.Context, genreID int64, includeAdult bool) ([]model.Movie, error) {
	key := fmt.Sprintf("discover:%d:%t", genreID, includeAdult)
	movies, err := readThrough(ctx, u, key, func(ctx context.Context) ([]model.Movie, error) {
		return u.Provider.Discover(ctx, genreID, includeAdult)
	})
	return u.softMovies(movies, err, key), nil
}

func (u *Usecase) Recommendations(ctx context.Context, movieID int64) ([]model.Movie, error) {
	key := fmt.Sprintf("recommendations:%d", movieID)
	movies, err := readThrough(ctx, u, key, func(ctx context.Context) ([]model.Movie, error) {
		return u.Provider.Recommendations(ctx, movieID)
	})
	return u.softMovies(movies, err, key), nil
}

func (u *Usecase) WatchProviders(ctx context.Context, movieID int64, region string) (model.WatchProviders, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultRegion
	}

	key := fmt.Sprintf("providers:%d:%s", movieID, region)
	providers, err := readThrough(ctx, u, key, func(ctx context.Context) (model.WatchProviders, error) {
		return u.Provider.WatchProviders(ctx, movieID, region)
	})
	if err != nil {
		u.logger.Warn("catalog providers unavailable", slog.String("key", key), slog.String("error", err.Error()))
		return model.WatchProviders{Region: region}, nil
	}
	return providers, nil
}

// Details is the only catalog call that surfaces upstream failures.
func (u *Usecase) Details(ctx context.Context, movieID int64) (model.MovieDetails, error) {
	key := fmt.Sprintf("details:%d", movieID)
	details, err := readThrough(ctx, u, key, func(ctx context.Context) (model.MovieDetails, error) {
		return u.Provider.Details(ctx, movieID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.MovieDetails{}, errors.Join(model.ErrNotFound, ErrMovieNotFound)
		}
		u.logger.Error("catalog details unavailable", slog.Int64("movie_id", movieID), slog.String("error", err.Error()))
		return model.MovieDetails{}, errors.Join(model.ErrUnavailable, ErrCatalogDown)
	}
	return details, nil
}

func (u *Usecase) softMovies(movies []model.Movie, err error, key string) []model.Movie {
	if err != nil {
		u.logger.Warn("catalog listing unavailable", slog.String("key", key), slog.String("error", err.Error()))
		return []model.Movie{}
	}
	if movies == nil {
		return []model.Movie{}
	}
	return movies
}

func readThrough[T any](ctx context.Context, u *Usecase, key string, fetch func(context.Context) (T, error)) (T, error) {
	var value T
	if u.Cache != nil {
		raw, err := u.Cache.Get(key)
		if err != nil {
			u.logger.Warn("catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		} else if raw != "" {
			if err := json.Unmarshal([]byte(raw), &value); err == nil {
				return value, nil
			}
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	if u.Cache != nil {
		if raw, err := json.Marshal(value); err == nil {
			if err := u.Cache.Set(key, string(raw), u.ttl); err != nil {
				u.logger.Warn("catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
			}
		}
	}
	return value, nil
}
