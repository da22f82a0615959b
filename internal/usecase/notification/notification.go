package usecase_notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/humanbelnik/cineverse/internal/model"
)

var (
	ErrInvalidNotification  = errors.New("recipientId, a known type and message are required")
	ErrNotificationNotFound = errors.New("Notification not found")
)

//go:generate mockery --name=Repository --output=./mocks/notification/repository --filename=repository.go
type Repository interface {
	Create(ctx context.Context, n model.Notification) error
	ListByRecipient(ctx context.Context, recipientID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) (model.Notification, error)
}

type CreateRequest struct {
	RecipientID string `validate:"required"`
	SenderID    string
	Type        model.NotificationType `validate:"required,oneof=recommendation watchlist_update watch_party_invite system_message favorite_activity"`
	Message     string                 `validate:"required"`
	MovieID     *int64
	Link        string
}

type Usecase struct {
	Repository Repository

	validate *validator.Validate
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(repository Repository, opts ...Option) *Usecase {
	u := &Usecase{
		Repository: repository,
		validate:   validator.New(),
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) Create(ctx context.Context, req CreateRequest) (model.Notification, error) {
	if err := u.validate.Struct(req); err != nil {
		return model.Notification{}, errors.Join(model.ErrValidation, ErrInvalidNotification)
	}

	now := u.now().UTC()
	n := model.Notification{
		ID:          uuid.NewString(),
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Message:     req.Message,
		MovieID:     req.MovieID,
		Link:        req.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.Repository.Create(ctx, n); err != nil {
		u.logger.Error("failed to store notification",
			slog.String("recipient_id", n.RecipientID),
			slog.String("error", err.Error()),
		)
		return model.Notification{}, errors.Join(model.ErrInternal, err)
	}

	u.logger.Info("notification created",
		slog.String("notification_id", n.ID),
		slog.String("recipient_id", n.RecipientID),
		slog.String("type", string(n.Type)),
	)
	return n, nil
}

// List returns the feed of recipientID, newest first.
func (u *Usecase) List(ctx context.Context, recipientID string) ([]model.Notification, error) {
	feed, err := u.Repository.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	if feed == nil {
		feed = []model.Notification{}
	}
	return feed, nil
}

func (u *Usecase) MarkRead(ctx context.Context, id string) (model.Notification, error) {
	n, err := u.Repository.MarkRead(ctx, id, u.now().UTC())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Notification{}, errors.Join(model.ErrNotFound, ErrNotificationNotFound)
		}
		return model.Notification{}, errors.Join(model.ErrInternal, err)
	}
	return n, nil
}
