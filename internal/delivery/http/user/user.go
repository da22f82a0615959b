package http_user

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cineverse/internal/delivery/http/common"
	"github.com/humanbelnik/cineverse/internal/model"
	usecase_user "github.com/humanbelnik/cineverse/internal/usecase/user"
)

type Controller struct {
	usecase *usecase_user.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_user.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users/:userId")
	{
		users.PUT("", c.sync)
		users.GET("", c.profile)

		users.GET("/search-history", c.searchHistory)
		users.POST("/search-history", c.addSearch)
		users.DELETE("/search-history", c.clearSearchHistory)
		users.DELETE("/search-history/:query", c.removeSearch)

		users.GET("/favorites", c.favorites)
		users.POST("/favorites", c.addFavorite)
		users.DELETE("/favorites/:movieId", c.removeFavorite)
	}
}

type ProfileRequestDTO struct {
	Email       string `json:"email" example:"neo@zion.io"`
	DisplayName string `json:"displayName" example:"Neo"`
	PhotoURL    string `json:"photoURL" example:"https://example.com/neo.png"`
}

type UserResponseDTO struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

type SearchRequestDTO struct {
	Query string `json:"query" example:"the matrix"`
}

type SearchHistoryResponseDTO struct {
	SearchHistory []string `json:"searchHistory"`
}

type FavoriteRequestDTO struct {
	MovieID     int64  `json:"id" example:"603"`
	Title       string `json:"title" example:"The Matrix"`
	Poster      string `json:"poster"`
	Rating      string `json:"rating" example:"8.2"`
	Year        int    `json:"year" example:"1999"`
	Description string `json:"description"`
	Backdrop    string `json:"backdrop"`
}

// FavoriteMovieDTO is a favorite in the same shape the movie listings use.
type FavoriteMovieDTO struct {
	ID          int64  `json:"id" example:"603"`
	Title       string `json:"title" example:"The Matrix"`
	Poster      string `json:"poster"`
	Rating      string `json:"rating" example:"8.2"`
	Year        int    `json:"year" example:"1999"`
	Description string `json:"description"`
	Backdrop    string `json:"backdrop"`
}

type FavoritesResponseDTO struct {
	Favorites []FavoriteMovieDTO `json:"favorites"`
}

func toFavoriteMovies(favorites []model.Favorite) []FavoriteMovieDTO {
	out := make([]FavoriteMovieDTO, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, FavoriteMovieDTO{
			ID:          f.MovieID,
			Title:       f.Title,
			Poster:      f.Poster,
			Rating:      f.Rating,
			Year:        f.Year,
			Description: f.Description,
			Backdrop:    f.Backdrop,
		})
	}
	return out
}

// Sync
// @Summary Sync identity profile
// @Description Creates the user on first sign in, refreshes the profile afterwards
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Param request body ProfileRequestDTO true "Profile"
// @Success 200 {object} UserResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /users/{userId} [put]
func (c *Controller) sync(ctx *gin.Context) {
	var req ProfileRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request body")
		return
	}

	user, err := c.usecase.SyncProfile(ctx, model.Profile{
		UID:         ctx.Param("userId"),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		c.logger.Error("failed to sync profile", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, UserResponseDTO{Success: true, User: user})
}

// Profile
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Success 200 {object} UserResponseDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /users/{userId} [get]
func (c *Controller) profile(ctx *gin.Context) {
	user, err := c.usecase.Profile(ctx, ctx.Param("userId"))
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, UserResponseDTO{Success: true, User: user})
}

// SearchHistory
// @Summary Recent searches, newest first
// @Tags Users
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Success 200 {object} SearchHistoryResponseDTO
// @Failure 500 {object} http_common.ErrorResponse
// @Router /users/{userId}/search-history [get]
func (c *Controller) searchHistory(ctx *gin.Context) {
	history, err := c.usecase.SearchHistory(ctx, ctx.Param("userId"))
	if err != nil {
		c.logger.Error("failed to load search history", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SearchHistoryResponseDTO{SearchHistory: history})
}

// AddSearch
// @Summary Record a search
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Param request body SearchRequestDTO true "Query"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Router /users/{userId}/search-history [post]
func (c *Controller) addSearch(ctx *gin.Context) {
	var req SearchRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, usecase_user.ErrQueryRequired.Error())
		return
	}

	if err := c.usecase.AddSearch(ctx, ctx.Param("userId"), req.Query); err != nil {
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.SuccessResponse{Success: true})
}

// ClearSearchHistory
// @Summary Clear search history
// @Tags Users
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Success 200 {object} http_common.SuccessResponse
// @Router /users/{userId}/search-history [delete]
func (c *Controller) clearSearchHistory(ctx *gin.Context) {
	if err := c.usecase.ClearSearchHistory(ctx, ctx.Param("userId")); err != nil {
		c.logger.Error("failed to clear search history", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.SuccessResponse{Success: true})
}

// RemoveSearch
// @Summary Remove one query from search history
// @Tags Users
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Param query path string true "Query"
// @Success 200 {object} http_common.SuccessResponse
// @Router /users/{userId}/search-history/{query} [delete]
func (c *Controller) removeSearch(ctx *gin.Context) {
	if err := c.usecase.RemoveSearch(ctx, ctx.Param("userId"), ctx.Param("query")); err != nil {
		c.logger.Error("failed to remove search", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.SuccessResponse{Success: true})
}

// Favorites
// @Summary Favorites, newest first
// @Tags Users
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Success 200 {object} FavoritesResponseDTO
// @Router /users/{userId}/favorites [get]
func (c *Controller) favorites(ctx *gin.Context) {
	favorites, err := c.usecase.Favorites(ctx, ctx.Param("userId"))
	if err != nil {
		c.logger.Error("failed to load favorites", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, FavoritesResponseDTO{Favorites: toFavoriteMovies(favorites)})
}

// AddFavorite
// @Summary Add a favorite
// @Description Adding a movie twice keeps one entry
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Param request body FavoriteRequestDTO true "Movie"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Router /users/{userId}/favorites [post]
func (c *Controller) addFavorite(ctx *gin.Context) {
	var req FavoriteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, usecase_user.ErrFavoriteRequired.Error())
		return
	}

	added, err := c.usecase.AddFavorite(ctx, ctx.Param("userId"), usecase_user.FavoriteRequest{
		MovieID:     req.MovieID,
		Title:       req.Title,
		Poster:      req.Poster,
		Rating:      req.Rating,
		Year:        req.Year,
		Description: req.Description,
		Backdrop:    req.Backdrop,
	})
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}

	resp := http_common.SuccessResponse{Success: true}
	if !added {
		resp.Message = "Already in favorites"
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemoveFavorite
// @Summary Remove a favorite
// @Tags Users
// @Produce json
// @Param userId path string true "Identity provider UID"
// @Param movieId path int true "Movie ID"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse
// @Router /users/{userId}/favorites/{movieId} [delete]
func (c *Controller) removeFavorite(ctx *gin.Context) {
	movieID, err := strconv.ParseInt(ctx.Param("movieId"), 10, 64)
	if err != nil {
		http_common.BadRequest(ctx, "movieId must be numeric")
		return
	}

	if err := c.usecase.RemoveFavorite(ctx, ctx.Param("userId"), movieID); err != nil {
		c.logger.Error("failed to remove favorite", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.SuccessResponse{Success: true})
}
