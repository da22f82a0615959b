//go:build !integration
// +build !integration

package http_user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/humanbelnik/cineverse/internal/model"
	usecase_user "github.com/humanbelnik/cineverse/internal/usecase/user"
	repo_mocks "github.com/humanbelnik/cineverse/internal/usecase/user/mocks/user/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UserControllerSuite struct {
	suite.Suite
}

var now = time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC)

func newRouter(t provider.T) (*gin.Engine, *repo_mocks.Repository) {
	repository := repo_mocks.NewRepository(t)
	uc := usecase_user.New(repository, usecase_user.WithClock(func() time.Time { return now }))

	engine := gin.New()
	New(uc).RegisterRoutes(engine.Group("/api"))
	return engine, repository
}

func serve(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func (s *UserControllerSuite) TestSyncProfile(t provider.T) {
	t.Parallel()

	t.Run("Should upsert profile keyed by path uid", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		profile := model.Profile{UID: "u1", Email: "neo@zion.io", DisplayName: "Neo"}
		repository.On("Upsert", mock.Anything, profile, now).
			Return(model.User{Profile: profile, SearchHistory: []model.SearchEntry{}, Favorites: []model.Favorite{}}, nil).Once()

		w := serve(engine, http.MethodPut, "/api/users/u1", `{"uid": "ignored", "email": "neo@zion.io", "displayName": "Neo"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp UserResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "u1", resp.User.UID)
	})

	t.Run("Should reject profile without email", func(t provider.T) {
		t.Parallel()
		engine, _ := newRouter(t)

		w := serve(engine, http.MethodPut, "/api/users/u1", `{"displayName": "Neo"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *UserControllerSuite) TestFavorites(t provider.T) {
	t.Parallel()

	t.Run("Should add favorite", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("AddFavorite", mock.Anything, "u1", mock.MatchedBy(func(f model.Favorite) bool {
			return f.MovieID == 603 && f.AddedAt.Equal(now)
		})).Return(true, nil).Once()

		w := serve(engine, http.MethodPost, "/api/users/u1/favorites", `{"id": 603, "title": "The Matrix"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
	})

	t.Run("Should accept catalog movie payload", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("AddFavorite", mock.Anything, "u1", model.Favorite{
			MovieID: 603,
			Title:   "The Matrix",
			Rating:  "8.2",
			Year:    1999,
			AddedAt: now,
		}).Return(true, nil).Once()

		w := serve(engine, http.MethodPost, "/api/users/u1/favorites", `{"id": 603, "title": "The Matrix", "rating": "8.2", "year": 1999}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should list favorites in catalog shape", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("Favorites", mock.Anything, "u1").Return([]model.Favorite{{
			MovieID:     603,
			Title:       "The Matrix",
			Poster:      "https://image.tmdb.org/t/p/w500/m.jpg",
			Rating:      "8.2",
			Year:        1999,
			Description: "Wake up, Neo.",
			Backdrop:    "https://image.tmdb.org/t/p/original/b.jpg",
			AddedAt:     now,
		}}, nil).Once()

		w := serve(engine, http.MethodGet, "/api/users/u1/favorites", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"favorites": [{
			"id": 603,
			"title": "The Matrix",
			"poster": "https://image.tmdb.org/t/p/w500/m.jpg",
			"rating": "8.2",
			"year": 1999,
			"description": "Wake up, Neo.",
			"backdrop": "https://image.tmdb.org/t/p/original/b.jpg"
		}]}`, w.Body.String())
	})

	t.Run("Should report duplicate favorite", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("AddFavorite", mock.Anything, "u1", mock.Anything).Return(false, nil).Once()

		w := serve(engine, http.MethodPost, "/api/users/u1/favorites", `{"id": 603, "title": "The Matrix"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "message": "Already in favorites"}`, w.Body.String())
	})

	t.Run("Should reject favorite without title", func(t provider.T) {
		t.Parallel()
		engine, _ := newRouter(t)

		w := serve(engine, http.MethodPost, "/api/users/u1/favorites", `{"id": 603}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Movie ID and title are required"}`, w.Body.String())
	})

	t.Run("Should report unknown user", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("AddFavorite", mock.Anything, "ghost", mock.Anything).Return(false, model.ErrNotFound).Once()

		w := serve(engine, http.MethodPost, "/api/users/ghost/favorites", `{"id": 603, "title": "The Matrix"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "User not found"}`, w.Body.String())
	})

	t.Run("Should reject non numeric movie id on removal", func(t provider.T) {
		t.Parallel()
		engine, _ := newRouter(t)

		w := serve(engine, http.MethodDelete, "/api/users/u1/favorites/matrix", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should list empty favorites for unknown user", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("Favorites", mock.Anything, "ghost").Return([]model.Favorite{}, nil).Once()

		w := serve(engine, http.MethodGet, "/api/users/ghost/favorites", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"favorites": []}`, w.Body.String())
	})
}

func (s *UserControllerSuite) TestSearchHistory(t provider.T) {
	t.Parallel()

	t.Run("Should store normalized query", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("PushSearch", mock.Anything, "u1", model.SearchEntry{Query: "the matrix", Timestamp: now}, model.MaxSearchHistory).
			Return(nil).Once()

		w := serve(engine, http.MethodPost, "/api/users/u1/search-history", `{"query": "  The Matrix "}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should reject blank query", func(t provider.T) {
		t.Parallel()
		engine, _ := newRouter(t)

		w := serve(engine, http.MethodPost, "/api/users/u1/search-history", `{"query": "   "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Query is required"}`, w.Body.String())
	})

	t.Run("Should list queries newest first", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("SearchHistory", mock.Anything, "u1", model.MaxSearchHistory).Return([]model.SearchEntry{
			{Query: "matrix", Timestamp: now},
			{Query: "inception", Timestamp: now.Add(-time.Minute)},
		}, nil).Once()

		w := serve(engine, http.MethodGet, "/api/users/u1/search-history", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"searchHistory": ["matrix", "inception"]}`, w.Body.String())
	})

	t.Run("Should remove one query", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("RemoveSearch", mock.Anything, "u1", "matrix").Return(nil).Once()

		w := serve(engine, http.MethodDelete, "/api/users/u1/search-history/Matrix", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should clear history", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("ClearSearchHistory", mock.Anything, "u1").Return(nil).Once()

		w := serve(engine, http.MethodDelete, "/api/users/u1/search-history", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUserControllerSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(UserControllerSuite))
}
