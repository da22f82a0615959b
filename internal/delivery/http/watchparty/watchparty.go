package http_watchparty

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cineverse/internal/delivery/http/common"
	"github.com/humanbelnik/cineverse/internal/model"
	usecase_watchparty "github.com/humanbelnik/cineverse/internal/usecase/watchparty"
)

type Controller struct {
	usecase *usecase_watchparty.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_watchparty.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) WithLogger(logger *slog.Logger) *Controller {
	c.logger = logger
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	parties := router.Group("/watchparties")
	{
		parties.POST("", c.create)
		parties.GET("/:userId", c.list)
		parties.GET("/details/:partyId", c.details)
		parties.POST("/:partyId/respond", c.respond)
		parties.DELETE("/:partyId", c.cancel)
	}
}

type CreateRequestDTO struct {
	OrganizerID   string              `json:"organizerId" example:"u1"`
	MovieID       int64               `json:"movieId" example:"603"`
	MovieTitle    string              `json:"movieTitle" example:"The Matrix"`
	MoviePoster   string              `json:"moviePoster" example:"https://image.tmdb.org/t/p/w500/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"`
	MovieYear     int                 `json:"movieYear" example:"1999"`
	ScheduledTime time.Time           `json:"scheduledTime" example:"2025-12-01T20:00:00Z"`
	Location      model.PartyLocation `json:"location" example:"Virtual"`
	InvitedUsers  []string            `json:"invitedUsers" example:"u2,u3"`
}

func (r CreateRequestDTO) toUsecase() usecase_watchparty.CreateRequest {
	return usecase_watchparty.CreateRequest{
		OrganizerID:    r.OrganizerID,
		MovieID:        r.MovieID,
		MovieTitle:     r.MovieTitle,
		MoviePoster:    r.MoviePoster,
		MovieYear:      r.MovieYear,
		ScheduledTime:  r.ScheduledTime,
		Location:       r.Location,
		InvitedUserIDs: r.InvitedUsers,
	}
}

type RespondRequestDTO struct {
	UserID string               `json:"userId" example:"u2"`
	Status model.AttendeeStatus `json:"status" example:"accepted"`
}

type CancelRequestDTO struct {
	OrganizerID string `json:"organizerId" example:"u1"`
}

type WatchPartyResponseDTO struct {
	Success    bool             `json:"success"`
	WatchParty model.WatchParty `json:"watchParty"`
}

type WatchPartiesResponseDTO struct {
	Success      bool               `json:"success"`
	WatchParties []model.WatchParty `json:"watchParties"`
}

// Create schedules a watch party
// @Summary Create a watch party
// @Description The organizer joins as accepted, every other invitee as pending
// @Tags WatchParties
// @Accept json
// @Produce json
// @Param request body CreateRequestDTO true "Watch party"
// @Success 201 {object} WatchPartyResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /watchparties [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request body")
		return
	}

	party, err := c.usecase.Create(ctx, req.toUsecase())
	if err != nil {
		c.logger.Error("failed to create watch party", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, WatchPartyResponseDTO{
		Success:    true,
		WatchParty: party,
	})
}

// List returns parties a user organizes or is invited to
// @Summary List watch parties of a user
// @Description Upcoming parties first (soonest first), then past parties (most recent first)
// @Tags WatchParties
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} WatchPartiesResponseDTO
// @Failure 500 {object} http_common.ErrorResponse
// @Router /watchparties/{userId} [get]
func (c *Controller) list(ctx *gin.Context) {
	parties, err := c.usecase.List(ctx, ctx.Param("userId"))
	if err != nil {
		c.logger.Error("failed to list watch parties", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, WatchPartiesResponseDTO{
		Success:      true,
		WatchParties: parties,
	})
}

// Details
// @Summary Get a watch party
// @Tags WatchParties
// @Produce json
// @Param partyId path string true "Party ID"
// @Success 200 {object} WatchPartyResponseDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /watchparties/details/{partyId} [get]
func (c *Controller) details(ctx *gin.Context) {
	party, err := c.usecase.Details(ctx, ctx.Param("partyId"))
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, WatchPartyResponseDTO{
		Success:    true,
		WatchParty: party,
	})
}

// Respond accepts or declines an invitation
// @Summary Respond to an invitation
// @Tags WatchParties
// @Accept json
// @Produce json
// @Param partyId path string true "Party ID"
// @Param request body RespondRequestDTO true "Response"
// @Success 200 {object} WatchPartyResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /watchparties/{partyId}/respond [post]
func (c *Controller) respond(ctx *gin.Context) {
	var req RespondRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request body")
		return
	}

	party, err := c.usecase.Respond(ctx, ctx.Param("partyId"), req.UserID, req.Status)
	if err != nil {
		if !errors.Is(err, model.ErrValidation) {
			c.logger.Error("failed to respond", slog.String("error", err.Error()))
		}
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, WatchPartyResponseDTO{
		Success:    true,
		WatchParty: party,
	})
}

// Cancel deletes a party on behalf of its organizer
// @Summary Cancel a watch party
// @Description organizerId may come in the body or as a query parameter
// @Tags WatchParties
// @Accept json
// @Produce json
// @Param partyId path string true "Party ID"
// @Param request body CancelRequestDTO false "Organizer"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /watchparties/{partyId} [delete]
func (c *Controller) cancel(ctx *gin.Context) {
	var req CancelRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		http_common.BadRequest(ctx, "invalid request body")
		return
	}
	if req.OrganizerID == "" {
		req.OrganizerID = ctx.Query("organizerId")
	}

	if err := c.usecase.Cancel(ctx, ctx.Param("partyId"), req.OrganizerID); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			c.logger.Error("failed to cancel watch party", slog.String("error", err.Error()))
		}
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.SuccessResponse{
		Success: true,
		Message: "Watch party cancelled successfully",
	})
}
