package http_recommendation

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cineverse/internal/delivery/http/common"
	"github.com/humanbelnik/cineverse/internal/model"
	usecase_recommendation "github.com/humanbelnik/cineverse/internal/usecase/recommendation"
)

type Controller struct {
	usecase *usecase_recommendation.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_recommendation.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	recommendations := router.Group("/recommendations")
	{
		recommendations.POST("", c.send)
		recommendations.GET("/:userId", c.list)
		recommendations.POST("/:recommendationId/read", c.markRead)
		recommendations.DELETE("/:recommendationId", c.delete)
	}
}

type SendRequestDTO struct {
	SenderID    string `json:"senderId" example:"u1"`
	RecipientID string `json:"recipientId" example:"u2"`
	MovieID     int64  `json:"movieId" example:"603"`
	Message     string `json:"message" example:"You have to see this"`
	MovieTitle  string `json:"movieTitle" example:"The Matrix"`
	MoviePoster string `json:"moviePoster"`
	MovieYear   int    `json:"movieYear" example:"1999"`
}

type RecommendationResponseDTO struct {
	Success        bool                 `json:"success"`
	Recommendation model.Recommendation `json:"recommendation"`
}

type RecommendationsResponseDTO struct {
	Success         bool                   `json:"success"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// Send
// @Summary Recommend a movie to another user
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body SendRequestDTO true "Recommendation"
// @Success 201 {object} RecommendationResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /recommendations [post]
func (c *Controller) send(ctx *gin.Context) {
	var req SendRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, usecase_recommendation.ErrInvalidRecommendation.Error())
		return
	}

	r, err := c.usecase.Send(ctx, usecase_recommendation.SendRequest{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		MovieID:     req.MovieID,
		Message:     req.Message,
		MovieTitle:  req.MovieTitle,
		MoviePoster: req.MoviePoster,
		MovieYear:   req.MovieYear,
	})
	if err != nil {
		c.logger.Error("failed to send recommendation", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, RecommendationResponseDTO{Success: true, Recommendation: r})
}

// List
// @Summary Recommendations received by a user, newest first
// @Tags Recommendations
// @Produce json
// @Param userId path string true "Recipient ID"
// @Success 200 {object} RecommendationsResponseDTO
// @Router /recommendations/{userId} [get]
func (c *Controller) list(ctx *gin.Context) {
	feed, err := c.usecase.List(ctx, ctx.Param("userId"))
	if err != nil {
		c.logger.Error("failed to list recommendations", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, RecommendationsResponseDTO{Success: true, Recommendations: feed})
}

// MarkRead
// @Summary Mark a recommendation read
// @Tags Recommendations
// @Produce json
// @Param recommendationId path string true "Recommendation ID"
// @Success 200 {object} RecommendationResponseDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /recommendations/{recommendationId}/read [post]
func (c *Controller) markRead(ctx *gin.Context) {
	r, err := c.usecase.MarkRead(ctx, ctx.Param("recommendationId"))
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, RecommendationResponseDTO{Success: true, Recommendation: r})
}

// Delete
// @Summary Delete a recommendation
// @Tags Recommendations
// @Produce json
// @Param recommendationId path string true "Recommendation ID"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Router /recommendations/{recommendationId} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	if err := c.usecase.Delete(ctx, ctx.Param("recommendationId")); err != nil {
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.SuccessResponse{
		Success: true,
		Message: "Recommendation deleted successfully",
	})
}
