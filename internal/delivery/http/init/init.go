package http_init

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_cors_middleware "github.com/humanbelnik/cineverse/internal/delivery/http/middleware/cors"
	http_metrics_middleware "github.com/humanbelnik/cineverse/internal/delivery/http/middleware/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiPrefix       = "/api"
	shutdownTimeout = 10 * time.Second
)

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
}

func NewControllerPool(clientURL string) *ControllerPool {
	engine := gin.Default()
	engine.Use(
		http_cors_middleware.AllowClient(clientURL),
		http_metrics_middleware.Requests(),
	)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rg := engine.Group(apiPrefix)
	rg.GET("/health", alive)
	rg.GET("/test", alive)

	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     rg,
		engine: engine,
	}
}

type AliveResponse struct {
	Message string `json:"message" example:"CineVerse API is running!"`
}

// Alive
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} AliveResponse
// @Router /health [get]
// @Router /test [get]
func alive(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, AliveResponse{Message: "CineVerse API is running!"})
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// RunAll serves until ctx is cancelled, then drains in-flight requests.
func (pool *ControllerPool) RunAll(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           pool.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
