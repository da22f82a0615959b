package infra_tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/humanbelnik/cineverse/internal/config"
	"github.com/humanbelnik/cineverse/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const breakerName = "tmdb"

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cineverse_tmdb_requests_total",
		Help: "TMDB requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	upstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cineverse_tmdb_request_duration_seconds",
		Help:    "TMDB request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	breakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cineverse_circuit_breaker_state",
		Help: "Circuit breaker state (0 closed, 1 half-open, 2 open).",
	}, []string{"name"})
)

var errNotFound = errors.New("tmdb: resource not found")

var listPaths = map[model.ListKind]string{
	model.ListTrending:   "trending/movie/week",
	model.ListPopular:    "movie/popular",
	model.ListTopRated:   "movie/top_rated",
	model.ListNowPlaying: "movie/now_playing",
	model.ListUpcoming:   "movie/upcoming",
}

type Driver struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
	logger  *slog.Logger
}

func New(cfg config.TMDB, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "tmdb"))

	failures := cfg.Breaker
	if failures == 0 {
		failures = 5
	}
	breakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// A missing movie is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			breakerState.WithLabelValues(name).Set(float64(to))
		},
	})

	return &Driver{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), max(1, int(cfg.RPS))),
		cb:      cb,
		logger:  logger,
	}
}

func (d *Driver) List(ctx context.Context, kind model.ListKind, includeAdult bool) ([]model.Movie, error) {
	path, ok := listPaths[kind]
	if !ok {
		return nil, fmt.Errorf("tmdb: unknown listing %q", kind)
	}
	var page pageDTO
	if err := d.fetch(ctx, string(kind), path, adult(includeAdult), &page); err != nil {
		return nil, err
	}
	return page.toDomain(), nil
}

func (d *Driver) Search(ctx context.Context, query string, includeAdult bool) ([]model.Movie, error) {
	params := adult(includeAdult)
	params.Set("query", query)

	var page pageDTO
	if err := d.fetch(ctx, "search", "search/movie", params, &page); err != nil {
		return nil, err
	}
	return page.toDomain(), nil
}

func (d *Driver) Genres(ctx context.Context) ([]model.Genre, error) {
	var out genresDTO
	if err := d.fetch(ctx, "genres", "genre/movie/list", url.Values{}, &out); err != nil {
		return nil, err
	}
	if out.Genres == nil {
		return []model.Genre{}, nil
	}
	return out.Genres, nil
}

func (d *Driver) Discover(ctx context.Context, genreID int64, includeAdult bool) ([]model.Movie, error) {
	params := adult(includeAdult)
	params.Set("with_genres", strconv.FormatInt(genreID, 10))
	params.Set("sort_by", "popularity.desc")

	var page pageDTO
	if err := d.fetch(ctx, "discover", "discover/movie", params, &page); err != nil {
		return nil, err
	}
	return page.toDomain(), nil
}

func (d *Driver) Details(ctx context.Context, movieID int64) (model.MovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,videos,similar")

	var out detailsDTO
	if err := d.fetch(ctx, "details", fmt.Sprintf("movie/%d", movieID), params, &out); err != nil {
		return model.MovieDetails{}, err
	}
	return out.toDomain(), nil
}

func (d *Driver) Recommendations(ctx context.Context, movieID int64) ([]model.Movie, error) {
	var page pageDTO
	if err := d.fetch(ctx, "recommendations", fmt.Sprintf("movie/%d/recommendations", movieID), url.Values{}, &page); err != nil {
		return nil, err
	}
	return page.toDomain(), nil
}

// WatchProviders returns empty lists when the region has no offers.
func (d *Driver) WatchProviders(ctx context.Context, movieID int64, region string) (model.WatchProviders, error) {
	var out providersDTO
	if err := d.fetch(ctx, "providers", fmt.Sprintf("movie/%d/watch/providers", movieID), url.Values{}, &out); err != nil {
		return model.WatchProviders{}, err
	}

	offers := out.Results[strings.ToUpper(region)]
	return model.WatchProviders{
		Link:   offers.Link,
		Stream: providersToDomain(offers.Flatrate),
		Rent:   providersToDomain(offers.Rent),
		Buy:    providersToDomain(offers.Buy),
		Region: strings.ToUpper(region),
	}, nil
}

func adult(include bool) url.Values {
	params := url.Values{}
	params.Set("include_adult", strconv.FormatBool(include))
	return params
}

func (d *Driver) fetch(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	start := time.Now()
	body, err := d.cb.Execute(func() ([]byte, error) {
		return d.get(ctx, path, params)
	})
	upstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, errNotFound):
			upstreamRequests.WithLabelValues(endpoint, "not_found").Inc()
			return errors.Join(model.ErrNotFound, err)
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			upstreamRequests.WithLabelValues(endpoint, "rejected").Inc()
		default:
			upstreamRequests.WithLabelValues(endpoint, "failure").Inc()
		}
		d.logger.Error("tmdb request failed", slog.String("endpoint", endpoint), slog.Any("error", err))
		return errors.Join(model.ErrUnavailable, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		upstreamRequests.WithLabelValues(endpoint, "failure").Inc()
		return errors.Join(model.ErrUnavailable, fmt.Errorf("tmdb: decode %s: %w", endpoint, err))
	}
	upstreamRequests.WithLabelValues(endpoint, "success").Inc()
	return nil
}

func (d *Driver) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params.Set("api_key", d.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/"+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb: %s responded %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
