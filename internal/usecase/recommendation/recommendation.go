package usecase_recommendation

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
	ErrInvalidRecommendation  = errors.New("Sender ID, Recipient ID, and Movie ID are required.")
	ErrRecommendationNotFound = errors.New("Recommendation not found")
)

//go:generate mockery --name=Repository --output=./mocks/recommendation/repository --filename=repository.go
type Repository interface {
	Create(ctx context.Context, r model.Recommendation) error
	ListByRecipient(ctx context.Context, recipientID string) ([]model.Recommendation, error)
	MarkRead(ctx context.Context, id string, at time.Time) (model.Recommendation, error)
	Delete(ctx context.Context, id string) error
}

type SendRequest struct {
	SenderID    string `validate:"required"`
	RecipientID string `validate:"required"`
	MovieID     int64  `validate:"required"`
	Message     string
	MovieTitle  string
	MoviePoster string
	MovieYear   int
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

// Send stores a recommendation. Movie fields are copied as given and never
// refreshed from the catalog.
func (u *Usecase) Send(ctx context.Context, req SendRequest) (model.Recommendation, error) {
	if err := u.validate.Struct(req); err != nil {
		return model.Recommendation{}, errors.Join(model.ErrValidation, ErrInvalidRecommendation)
	}

	now := u.now().UTC()
	r := model.Recommendation{
		ID:          uuid.NewString(),
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		MovieID:     req.MovieID,
		Message:     req.Message,
		MovieTitle:  req.MovieTitle,
		MoviePoster: req.MoviePoster,
		MovieYear:   req.MovieYear,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.Repository.Create(ctx, r); err != nil {
		u.logger.Error("failed to store recommendation",
			slog.String("sender_id", r.SenderID),
			slog.String("error", err.Error()),
		)
		return model.Recommendation{}, errors.Join(model.ErrInternal, err)
	}

	u.logger.Info("recommendation sent",
		slog.String("recommendation_id", r.ID),
		slog.String("sender_id", r.SenderID),
		slog.String("recipient_id", r.RecipientID),
		slog.Int64("movie_id", r.MovieID),
	)
	return r, nil
}

func (u *Usecase) List(ctx context.Context, recipientID string) ([]model.Recommendation, error) {
	feed, err := u.Repository.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	if feed == nil {
		feed = []model.Recommendation{}
	}
	return feed, nil
}

func (u *Usecase) MarkRead(ctx context.Context, id string) (model.Recommendation, error) {
	r, err := u.Repository.MarkRead(ctx, id, u.now().UTC())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Recommendation{}, errors.Join(model.ErrNotFound, ErrRecommendationNotFound)
		}
		return model.Recommendation{}, errors.Join(model.ErrInternal, err)
	}
	return r, nil
}

// Delete removes a recommendation by id regardless of who asks.
// TODO: restrict to sender or recipient once requests carry an authenticated identity.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	if err := u.Repository.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errors.Join(model.ErrNotFound, ErrRecommendationNotFound)
		}
		return errors.Join(model.ErrInternal, err)
	}

	u.logger.Info("recommendation deleted", slog.String("recommendation_id", id))
	return nil
}
