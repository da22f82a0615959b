//go:build !integration
// +build !integration

package http_movie

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/cineverse/internal/model"
	usecase_catalog "github.com/humanbelnik/cineverse/internal/usecase/catalog"
	provider_mocks "github.com/humanbelnik/cineverse/internal/usecase/catalog/mocks/catalog/provider"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MovieControllerSuite struct {
	suite.Suite
}

func newRouter(t provider.T) (*gin.Engine, *provider_mocks.Provider) {
	catalog := provider_mocks.NewProvider(t)
	engine := gin.New()
	New(usecase_catalog.New(catalog, nil, 0)).RegisterRoutes(engine.Group("/api"))
	return engine, catalog
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (s *MovieControllerSuite) TestListings(t provider.T) {
	t.Parallel()

	testCases := []struct {
		path string
		kind model.ListKind
	}{
		{"/api/movies/trending", model.ListTrending},
		{"/api/movies/popular", model.ListPopular},
		{"/api/movies/top-rated", model.ListTopRated},
		{"/api/movies/now-playing", model.ListNowPlaying},
		{"/api/movies/upcoming", model.ListUpcoming},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t provider.T) {
			t.Parallel()
			engine, catalog := newRouter(t)
			catalog.On("List", mock.Anything, tc.kind, true).
				Return([]model.Movie{{ID: 603, Title: "The Matrix", Rating: "8.2"}}, nil).Once()

			w := get(engine, tc.path+"?includeAdult=true")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"title":"The Matrix"`)
		})
	}
}

func (s *MovieControllerSuite) TestListingFailsSoft(t provider.T) {
	engine, catalog := newRouter(t)
	catalog.On("List", mock.Anything, model.ListPopular, false).Return(nil, errors.Join(model.ErrUnavailable, errors.New("503"))).Once()

	w := get(engine, "/api/movies/popular")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"movies": []}`, w.Body.String())
}

func (s *MovieControllerSuite) TestSearchRequiresQuery(t provider.T) {
	engine, _ := newRouter(t)

	w := get(engine, "/api/movies/search?q=%20")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func (s *MovieControllerSuite) TestDetails(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		path       string
		setupMock  func(p *provider_mocks.Provider)
		wantStatus int
	}{
		{
			name: "Should return details",
			path: "/api/movies/603",
			setupMock: func(p *provider_mocks.Provider) {
				p.On("Details", mock.Anything, int64(603)).Return(model.MovieDetails{Movie: model.Movie{ID: 603}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Should map missing movie to 404",
			path: "/api/movies/42",
			setupMock: func(p *provider_mocks.Provider) {
				p.On("Details", mock.Anything, int64(42)).Return(model.MovieDetails{}, model.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Should map outage to 502",
			path: "/api/movies/7",
			setupMock: func(p *provider_mocks.Provider) {
				p.On("Details", mock.Anything, int64(7)).Return(model.MovieDetails{}, model.ErrUnavailable).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "Should reject non numeric id",
			path:       "/api/movies/matrix",
			setupMock:  func(p *provider_mocks.Provider) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			engine, catalog := newRouter(t)
			tc.setupMock(catalog)

			w := get(engine, tc.path)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func (s *MovieControllerSuite) TestProvidersDefaultRegion(t provider.T) {
	engine, catalog := newRouter(t)
	catalog.On("WatchProviders", mock.Anything, int64(603), "US").
		Return(model.WatchProviders{Region: "US", Stream: []model.Provider{{ID: 8, Name: "Netflix"}}}, nil).Once()

	w := get(engine, "/api/movies/603/providers")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"flatrate":[{"id":8,"name":"Netflix","logo":""}]`)
}

func (s *MovieControllerSuite) TestDiscoverAndGenres(t provider.T) {
	engine, catalog := newRouter(t)
	catalog.On("Discover", mock.Anything, int64(28), false).Return([]model.Movie{}, nil).Once()
	catalog.On("Genres", mock.Anything).Return([]model.Genre{{ID: 28, Name: "Action"}}, nil).Once()

	assert.Equal(t, http.StatusOK, get(engine, "/api/movies/discover?genre=28").Code)
	assert.Equal(t, http.StatusBadRequest, get(engine, "/api/movies/discover?genre=action").Code)
	assert.JSONEq(t, `{"genres": [{"id": 28, "name": "Action"}]}`, get(engine, "/api/movies/genres").Body.String())
}

func TestMovieControllerSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(MovieControllerSuite))
}
