package http_movie

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cineverse/internal/delivery/http/common"
	"github.com/humanbelnik/cineverse/internal/model"
	usecase_catalog "github.com/humanbelnik/cineverse/internal/usecase/catalog"
)

// Controller serves the catalog. Fail-soft reads are logged by the use case.
type Controller struct {
	usecase *usecase_catalog.Usecase
}

func New(usecase *usecase_catalog.Usecase) *Controller {
	return &Controller{usecase: usecase}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		movies.GET("/trending", c.listing(model.ListTrending))
		movies.GET("/popular", c.listing(model.ListPopular))
		movies.GET("/top-rated", c.listing(model.ListTopRated))
		movies.GET("/now-playing", c.listing(model.ListNowPlaying))
		movies.GET("/upcoming", c.listing(model.ListUpcoming))
		movies.GET("/search", c.search)
		movies.GET("/genres", c.genres)
		movies.GET("/discover", c.discover)

		movies.GET("/:movieId", c.details)
		movies.GET("/:movieId/recommendations", c.recommendations)
		movies.GET("/:movieId/providers", c.providers)
	}
}

type MoviesResponseDTO struct {
	Movies []model.Movie `json:"movies"`
}

type GenresResponseDTO struct {
	Genres []model.Genre `json:"genres"`
}

type ProvidersResponseDTO struct {
	Providers model.WatchProviders `json:"providers"`
}

// Listing
// @Summary Curated listing
// @Description Trending (weekly), popular, top rated, now playing or upcoming. Empty on catalog failure.
// @Tags Movies
// @Produce json
// @Param includeAdult query bool false "Include adult titles"
// @Success 200 {object} MoviesResponseDTO
// @Router /movies/trending [get]
// @Router /movies/popular [get]
// @Router /movies/top-rated [get]
// @Router /movies/now-playing [get]
// @Router /movies/upcoming [get]
func (c *Controller) listing(kind model.ListKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		movies, err := c.usecase.List(ctx, kind, http_common.IncludeAdult(ctx))
		if err != nil {
			http_common.WriteError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, MoviesResponseDTO{Movies: movies})
	}
}

// Search
// @Summary Search by title
// @Tags Movies
// @Produce json
// @Param q query string true "Query"
// @Param includeAdult query bool false "Include adult titles"
// @Success 200 {object} MoviesResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Router /movies/search [get]
func (c *Controller) search(ctx *gin.Context) {
	movies, err := c.usecase.Search(ctx, ctx.Query("q"), http_common.IncludeAdult(ctx))
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MoviesResponseDTO{Movies: movies})
}

// Genres
// @Summary Movie genres
// @Tags Movies
// @Produce json
// @Success 200 {object} GenresResponseDTO
// @Router /movies/genres [get]
func (c *Controller) genres(ctx *gin.Context) {
	genres, err := c.usecase.Genres(ctx)
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, GenresResponseDTO{Genres: genres})
}

// Discover
// @Summary Popular movies of a genre
// @Tags Movies
// @Produce json
// @Param genre query int true "Genre ID"
// @Param includeAdult query bool false "Include adult titles"
// @Success 200 {object} MoviesResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Router /movies/discover [get]
func (c *Controller) discover(ctx *gin.Context) {
	genreID, err := strconv.ParseInt(ctx.Query("genre"), 10, 64)
	if err != nil {
		http_common.BadRequest(ctx, "genre must be numeric")
		return
	}

	movies, err := c.usecase.Discover(ctx, genreID, http_common.IncludeAdult(ctx))
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MoviesResponseDTO{Movies: movies})
}

// Details
// @Summary Movie details
// @Description Runtime, genres, cast, key crew, trailer and similar titles
// @Tags Movies
// @Produce json
// @Param movieId path int true "Movie ID"
// @Success 200 {object} model.MovieDetails
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 502 {object} http_common.ErrorResponse
// @Router /movies/{movieId} [get]
func (c *Controller) details(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	details, err := c.usecase.Details(ctx, movieID)
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// Recommendations
// @Summary Movies similar in taste to a movie
// @Tags Movies
// @Produce json
// @Param movieId path int true "Movie ID"
// @Success 200 {object} MoviesResponseDTO
// @Router /movies/{movieId}/recommendations [get]
func (c *Controller) recommendations(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	movies, err := c.usecase.Recommendations(ctx, movieID)
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MoviesResponseDTO{Movies: movies})
}

// Providers
// @Summary Where to watch
// @Tags Movies
// @Produce json
// @Param movieId path int true "Movie ID"
// @Param region query string false "ISO 3166-1 region" default(US)
// @Success 200 {object} ProvidersResponseDTO
// @Router /movies/{movieId}/providers [get]
func (c *Controller) providers(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	providers, err := c.usecase.WatchProviders(ctx, movieID, ctx.Query("region"))
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ProvidersResponseDTO{Providers: providers})
}

func (c *Controller) movieID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("movieId"), 10, 64)
	if err != nil || id <= 0 {
		http_common.BadRequest(ctx, "movieId must be a positive number")
		return 0, false
	}
	return id, true
}
