//go:build !integration
// +build !integration

package http_init

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ControllerPoolSuite struct {
	suite.Suite
}

type pingController struct{}

func (pingController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (s *ControllerPoolSuite) TestRoutes(t provider.T) {
	pool := NewControllerPool("https://cineverse.example")
	pool.Add(pingController{})
	pool.Register()

	testCases := []struct {
		path       string
		wantStatus int
	}{
		{"/api/health", http.StatusOK},
		{"/api/test", http.StatusOK},
		{"/api/ping", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/ping", http.StatusNotFound},
	}

	for _, tc := range testCases {
		w := httptest.NewRecorder()
		pool.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.wantStatus, w.Code, tc.path)
	}
}

func TestControllerPoolSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(ControllerPoolSuite))
}
