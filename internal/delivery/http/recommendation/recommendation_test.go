//go:build !integration
// +build !integration

package http_recommendation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/cineverse/internal/model"
	usecase_recommendation "github.com/humanbelnik/cineverse/internal/usecase/recommendation"
	repo_mocks "github.com/humanbelnik/cineverse/internal/usecase/recommendation/mocks/recommendation/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RecommendationControllerSuite struct {
	suite.Suite
}

func newRouter(t provider.T) (*gin.Engine, *repo_mocks.Repository) {
	repository := repo_mocks.NewRepository(t)
	engine := gin.New()
	New(usecase_recommendation.New(repository)).RegisterRoutes(engine.Group("/api"))
	return engine, repository
}

func (s *RecommendationControllerSuite) TestSend(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		body       string
		setupMock  func(r *repo_mocks.Repository)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Should store recommendation",
			body: `{"senderId": "u1", "recipientId": "u2", "movieId": 603, "movieTitle": "The Matrix"}`,
			setupMock: func(r *repo_mocks.Repository) {
				r.On("Create", mock.Anything, mock.AnythingOfType("model.Recommendation")).Return(nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Should reject missing recipient",
			body:       `{"senderId": "u1", "movieId": 603}`,
			setupMock:  func(r *repo_mocks.Repository) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "Sender ID, Recipient ID, and Movie ID are required."}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			engine, repository := newRouter(t)
			tc.setupMock(repository)

			req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

func (s *RecommendationControllerSuite) TestDelete(t provider.T) {
	t.Parallel()

	t.Run("Should delete", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("Delete", mock.Anything, "r1").Return(nil).Once()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/recommendations/r1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "message": "Recommendation deleted successfully"}`, w.Body.String())
	})

	t.Run("Should report missing", func(t provider.T) {
		t.Parallel()
		engine, repository := newRouter(t)
		repository.On("Delete", mock.Anything, "r9").Return(model.ErrNotFound).Once()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/recommendations/r9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecommendationControllerSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(RecommendationControllerSuite))
}
