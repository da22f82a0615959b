//go:build !integration
// +build !integration

package usecase_catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/humanbelnik/cineverse/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cache_mocks "github.com/humanbelnik/cineverse/internal/usecase/catalog/mocks/catalog/cache"
	provider_mocks "github.com/humanbelnik/cineverse/internal/usecase/catalog/mocks/catalog/provider"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseCatalogUnitSuite struct {
	suite.Suite
}

const ttl = time.Minute

type resources struct {
	usecase  *Usecase
	provider *provider_mocks.Provider
	cache    *cache_mocks.Cache
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	p := provider_mocks.NewProvider(t)
	c := cache_mocks.NewCache(t)
	return &resources{
		usecase:  New(p, c, ttl),
		provider: p,
		cache:    c,
		ctx:      context.Background(),
	}
}

func matrix() model.Movie {
	return model.Movie{
		ID:          603,
		Title:       "The Matrix",
		Poster:      "https://image.tmdb.org/t/p/w500/poster.jpg",
		Backdrop:    "https://image.tmdb.org/t/p/original/backdrop.jpg",
		Rating:      "8.2",
		Year:        1999,
		Description: "Set in the 22nd century.",
		Popularity:  "85.3",
	}
}

func (s *UsecaseCatalogUnitSuite) TestList(t provider.T) {
	t.Parallel()

	movies := []model.Movie{matrix()}
	encoded, _ := json.Marshal(movies)

	testCases := []struct {
		name       string
		kind       model.ListKind
		setupMocks func(r *resources)
		want       []model.Movie
		expectErr  error
	}{
		{
			name: "Should fetch on miss and fill the cache",
			kind: model.ListPopular,
			setupMocks: func(r *resources) {
				r.cache.On("Get", "list:popular:false").Return("", nil).Once()
				r.provider.On("List", r.ctx, model.ListPopular, false).Return(movies, nil).Once()
				r.cache.On("Set", "list:popular:false", string(encoded), ttl).Return(nil).Once()
			},
			want: movies,
		},
		{
			name: "Should serve cached listing without calling upstream",
			kind: model.ListTrending,
			setupMocks: func(r *resources) {
				r.cache.On("Get", "list:trending:false").Return(string(encoded), nil).Once()
			},
			want: movies,
		},
		{
			name: "Should degrade to empty list when upstream fails",
			kind: model.ListUpcoming,
			setupMocks: func(r *resources) {
				r.cache.On("Get", "list:upcoming:false").Return("", nil).Once()
				r.provider.On("List", r.ctx, model.ListUpcoming, false).Return(nil, errors.New("503")).Once()
			},
			want: []model.Movie{},
		},
		{
			name: "Should still fetch when cache is down",
			kind: model.ListTopRated,
			setupMocks: func(r *resources) {
				r.cache.On("Get", "list:top_rated:false").Return("", errors.New("dial tcp")).Once()
				r.provider.On("List", r.ctx, model.ListTopRated, false).Return(movies, nil).Once()
				r.cache.On("Set", "list:top_rated:false", mock.Anything, ttl).Return(errors.New("dial tcp")).Once()
			},
			want: movies,
		},
		{
			name:       "Should reject unknown listing",
			kind:       "best_ever",
			setupMocks: func(r *resources) {},
			expectErr:  model.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.List(r.ctx, tc.kind, false)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func (s *UsecaseCatalogUnitSuite) TestSearch(t provider.T) {
	t.Parallel()

	t.Run("Should reject blank query", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.Search(r.ctx, "  ", false)
		assert.ErrorIs(t, err, ErrQueryRequired)
	})

	t.Run("Should key cache by lower-cased query", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.cache.On("Get", "search:matrix:true").Return("", nil).Once()
		r.provider.On("Search", r.ctx, "Matrix", true).Return([]model.Movie{matrix()}, nil).Once()
		r.cache.On("Set", "search:matrix:true", mock.Anything, ttl).Return(nil).Once()

		got, err := r.usecase.Search(r.ctx, " Matrix ", true)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func (s *UsecaseCatalogUnitSuite) TestDetails(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		upstreamErr error
		expectErr   error
	}{
		{name: "Should return details"},
		{name: "Should map missing movie to not found", upstreamErr: model.ErrNotFound, expectErr: model.ErrNotFound},
		{name: "Should surface outage as unavailable", upstreamErr: errors.New("circuit breaker is open"), expectErr: model.ErrUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			details := model.MovieDetails{Movie: matrix(), Runtime: 136}

			r.cache.On("Get", "details:603").Return("", nil).Once()
			if tc.upstreamErr != nil {
				r.provider.On("Details", r.ctx, int64(603)).Return(model.MovieDetails{}, tc.upstreamErr).Once()
			} else {
				r.provider.On("Details", r.ctx, int64(603)).Return(details, nil).Once()
				r.cache.On("Set", "details:603", mock.Anything, ttl).Return(nil).Once()
			}

			got, err := r.usecase.Details(r.ctx, 603)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, details, got)
		})
	}
}

func (s *UsecaseCatalogUnitSuite) TestWatchProvidersDefaultRegion(t provider.T) {
	r := initResources(t)
	r.cache.On("Get", "providers:603:US").Return("", nil).Once()
	r.provider.On("WatchProviders", r.ctx, int64(603), "US").Return(model.WatchProviders{}, errors.New("timeout")).Once()

	got, err := r.usecase.WatchProviders(r.ctx, 603, "")

	require.NoError(t, err)
	assert.Equal(t, "US", got.Region)
}

func (s *UsecaseCatalogUnitSuite) TestWithoutCache(t provider.T) {
	p := provider_mocks.NewProvider(t)
	uc := New(p, nil, ttl)
	p.On("Genres", mock.Anything).Return([]model.Genre{{ID: 28, Name: "Action"}}, nil).Once()

	genres, err := uc.Genres(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.Genre{{ID: 28, Name: "Action"}}, genres)
}

func TestUsecaseCatalogUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseCatalogUnitSuite))
}
