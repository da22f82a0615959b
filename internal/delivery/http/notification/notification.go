package http_notification

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cineverse/internal/delivery/http/common"
	"github.com/humanbelnik/cineverse/internal/model"
	usecase_notification "github.com/humanbelnik/cineverse/internal/usecase/notification"
)

type Controller struct {
	usecase *usecase_notification.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_notification.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.POST("", c.create)
		notifications.GET("/:userId", c.list)
		notifications.POST("/:notificationId/read", c.markRead)
	}
}

type CreateRequestDTO struct {
	RecipientID string                 `json:"recipientId" example:"u2"`
	SenderID    string                 `json:"senderId" example:"u1"`
	Type        model.NotificationType `json:"type" example:"watch_party_invite"`
	Message     string                 `json:"message" example:"u1 invited you to The Matrix"`
	MovieID     *int64                 `json:"movieId" example:"603"`
	Link        string                 `json:"link" example:"/watchparties/details/p1"`
}

type NotificationResponseDTO struct {
	Success      bool               `json:"success"`
	Notification model.Notification `json:"notification"`
}

type NotificationsResponseDTO struct {
	Success       bool                 `json:"success"`
	Notifications []model.Notification `json:"notifications"`
}

// Create
// @Summary Create a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body CreateRequestDTO true "Notification"
// @Success 201 {object} NotificationResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Router /notifications [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request body")
		return
	}

	n, err := c.usecase.Create(ctx, usecase_notification.CreateRequest{
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Message:     req.Message,
		MovieID:     req.MovieID,
		Link:        req.Link,
	})
	if err != nil {
		c.logger.Error("failed to create notification", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NotificationResponseDTO{Success: true, Notification: n})
}

// List
// @Summary Notifications of a user, newest first
// @Tags Notifications
// @Produce json
// @Param userId path string true "Recipient ID"
// @Success 200 {object} NotificationsResponseDTO
// @Failure 500 {object} http_common.ErrorResponse
// @Router /notifications/{userId} [get]
func (c *Controller) list(ctx *gin.Context) {
	feed, err := c.usecase.List(ctx, ctx.Param("userId"))
	if err != nil {
		c.logger.Error("failed to list notifications", slog.String("error", err.Error()))
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NotificationsResponseDTO{Success: true, Notifications: feed})
}

// MarkRead
// @Summary Mark a notification read
// @Tags Notifications
// @Produce json
// @Param notificationId path string true "Notification ID"
// @Success 200 {object} NotificationResponseDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /notifications/{notificationId}/read [post]
func (c *Controller) markRead(ctx *gin.Context) {
	n, err := c.usecase.MarkRead(ctx, ctx.Param("notificationId"))
	if err != nil {
		http_common.WriteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NotificationResponseDTO{Success: true, Notification: n})
}
