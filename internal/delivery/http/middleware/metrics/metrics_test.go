//go:build !integration
// +build !integration

package http_metrics_middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type MetricsMiddlewareSuite struct {
	suite.Suite
}

func (s *MetricsMiddlewareSuite) TestCountsByRouteTemplate(t provider.T) {
	engine := gin.New()
	engine.Use(Requests())
	engine.GET("/api/watchparties/:userId", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"u1", "u2"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/watchparties/"+id, nil))
	}
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(requests.WithLabelValues("/api/watchparties/:userId", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(requests.WithLabelValues("unmatched", http.MethodGet, "404")))
}

func TestMetricsMiddlewareSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(MetricsMiddlewareSuite))
}
