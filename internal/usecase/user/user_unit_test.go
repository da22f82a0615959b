//go:build !integration
// +build !integration

package usecase_user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/humanbelnik/cineverse/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo_mocks "github.com/humanbelnik/cineverse/internal/usecase/user/mocks/user/repository"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseUserUnitSuite struct {
	suite.Suite
}

var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	return &resources{
		usecase:    New(repository, WithClock(func() time.Time { return fixedNow })),
		repository: repository,
		ctx:        context.Background(),
	}
}

func matrixFavorite() FavoriteRequest {
	return FavoriteRequest{
		MovieID:     603,
		Title:       "The Matrix",
		Poster:      "https://image.tmdb.org/t/p/w500/poster.jpg",
		Rating:      "8.2",
		Year:        1999,
		Description: "Set in the 22nd century.",
		Backdrop:    "https://image.tmdb.org/t/p/original/backdrop.jpg",
	}
}

func (s *UsecaseUserUnitSuite) TestSyncProfile(t provider.T) {
	t.Parallel()

	profile := model.Profile{UID: "u1", Email: "neo@example.com", DisplayName: "Neo"}

	testCases := []struct {
		name       string
		profile    model.Profile
		setupMocks func(r *resources)
		expectErr  error
	}{
		{
			name:    "Should upsert a complete profile",
			profile: profile,
			setupMocks: func(r *resources) {
				r.repository.On("Upsert", r.ctx, profile, fixedNow).Return(model.User{Profile: profile}, nil).Once()
			},
		},
		{
			name:       "Should reject profile without email",
			profile:    model.Profile{UID: "u1", DisplayName: "Neo"},
			setupMocks: func(r *resources) {},
			expectErr:  ErrInvalidProfile,
		},
		{
			name:       "Should reject malformed avatar url",
			profile:    model.Profile{UID: "u1", Email: "neo@example.com", DisplayName: "Neo", PhotoURL: "not a url"},
			setupMocks: func(r *resources) {},
			expectErr:  model.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			user, err := r.usecase.SyncProfile(r.ctx, tc.profile)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.UID)
		})
	}
}

func (s *UsecaseUserUnitSuite) TestAddFavorite(t provider.T) {
	t.Parallel()

	stored := model.Favorite{
		MovieID:     603,
		Title:       "The Matrix",
		Poster:      "https://image.tmdb.org/t/p/w500/poster.jpg",
		Rating:      "8.2",
		Year:        1999,
		Description: "Set in the 22nd century.",
		Backdrop:    "https://image.tmdb.org/t/p/original/backdrop.jpg",
		AddedAt:     fixedNow,
	}

	testCases := []struct {
		name       string
		req        FavoriteRequest
		setupMocks func(r *resources)
		wantAdded  bool
		expectErr  error
	}{
		{
			name: "Should add new favorite",
			req:  matrixFavorite(),
			setupMocks: func(r *resources) {
				r.repository.On("AddFavorite", r.ctx, "u1", stored).Return(true, nil).Once()
			},
			wantAdded: true,
		},
		{
			name: "Should treat repeated add as success without insert",
			req:  matrixFavorite(),
			setupMocks: func(r *resources) {
				r.repository.On("AddFavorite", r.ctx, "u1", stored).Return(false, nil).Once()
			},
			wantAdded: false,
		},
		{
			name: "Should require title",
			req: func() FavoriteRequest {
				f := matrixFavorite()
				f.Title = ""
				return f
			}(),
			setupMocks: func(r *resources) {},
			expectErr:  ErrFavoriteRequired,
		},
		{
			name: "Should report unknown user",
			req:  matrixFavorite(),
			setupMocks: func(r *resources) {
				r.repository.On("AddFavorite", r.ctx, "u1", stored).Return(false, model.ErrNotFound).Once()
			},
			expectErr: ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			added, err := r.usecase.AddFavorite(r.ctx, "u1", tc.req)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAdded, added)
		})
	}
}

func (s *UsecaseUserUnitSuite) TestFavoritesOfUnknownUserAreEmpty(t provider.T) {
	r := initResources(t)
	r.repository.On("Favorites", r.ctx, "ghost").Return(nil, nil).Once()

	favorites, err := r.usecase.Favorites(r.ctx, "ghost")

	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func (s *UsecaseUserUnitSuite) TestRemoveFavoriteIsIdempotent(t provider.T) {
	r := initResources(t)
	r.repository.On("RemoveFavorite", r.ctx, "u1", int64(42)).Return(nil).Twice()

	assert.NoError(t, r.usecase.RemoveFavorite(r.ctx, "u1", 42))
	assert.NoError(t, r.usecase.RemoveFavorite(r.ctx, "u1", 42))
}

func (s *UsecaseUserUnitSuite) TestAddSearch(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		query      string
		setupMocks func(r *resources)
		expectErr  error
	}{
		{
			name:  "Should store trimmed lower-cased query",
			query: "  The MATRIX ",
			setupMocks: func(r *resources) {
				r.repository.On("PushSearch", r.ctx, "u1",
					model.SearchEntry{Query: "the matrix", Timestamp: fixedNow},
					model.MaxSearchHistory,
				).Return(nil).Once()
			},
		},
		{
			name:       "Should reject blank query",
			query:      "   ",
			setupMocks: func(r *resources) {},
			expectErr:  ErrQueryRequired,
		},
		{
			name:  "Should report unknown user",
			query: "matrix",
			setupMocks: func(r *resources) {
				r.repository.On("PushSearch", r.ctx, "u1",
					model.SearchEntry{Query: "matrix", Timestamp: fixedNow},
					model.MaxSearchHistory,
				).Return(model.ErrNotFound).Once()
			},
			expectErr: model.ErrNotFound,
		},
		{
			name:  "Should wrap store failure",
			query: "matrix",
			setupMocks: func(r *resources) {
				r.repository.On("PushSearch", r.ctx, "u1",
					model.SearchEntry{Query: "matrix", Timestamp: fixedNow},
					model.MaxSearchHistory,
				).Return(errors.New("deadlock detected")).Once()
			},
			expectErr: model.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.AddSearch(r.ctx, "u1", tc.query)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func (s *UsecaseUserUnitSuite) TestSearchHistoryReturnsQueries(t provider.T) {
	r := initResources(t)
	r.repository.On("SearchHistory", r.ctx, "u1", model.MaxSearchHistory).Return([]model.SearchEntry{
		{Query: "matrix", Timestamp: fixedNow},
		{Query: "inception", Timestamp: fixedNow.Add(-time.Minute)},
	}, nil).Once()

	history, err := r.usecase.SearchHistory(r.ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"matrix", "inception"}, history)
}

func (s *UsecaseUserUnitSuite) TestRemoveSearchNormalizes(t provider.T) {
	r := initResources(t)
	r.repository.On("RemoveSearch", r.ctx, "u1", "matrix").Return(nil).Once()

	assert.NoError(t, r.usecase.RemoveSearch(r.ctx, "u1", " Matrix"))
	assert.NoError(t, r.usecase.RemoveSearch(r.ctx, "u1", "   "))
}

func (s *UsecaseUserUnitSuite) TestClearSearchHistory(t provider.T) {
	r := initResources(t)
	r.repository.On("ClearSearchHistory", r.ctx, "u1").Return(nil).Once()

	assert.NoError(t, r.usecase.ClearSearchHistory(r.ctx, "u1"))
}

func TestUsecaseUserUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseUserUnitSuite))
}
