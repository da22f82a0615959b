package usecase_watchparty

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/humanbelnik/cineverse/internal/model"
)

var (
	ErrMissingFields    = errors.New("organizerId, movieId, movieTitle and scheduledTime are required")
	ErrInvalidLocation  = errors.New("location must be Virtual or Physical")
	ErrInvalidResponse  = errors.New("userId and a valid status (accepted or declined) are required")
	ErrPartyNotFound    = errors.New("watch party not found")
	ErrAttendeeNotFound = errors.New("watch party or attendee not found")
	ErrNotOrganizer     = errors.New("watch party not found or you are not the organizer")
)

//go:generate mockery --name=Repository --output=./mocks/watchparty/repository --filename=repository.go
type Repository interface {
	Create(ctx context.Context, party model.WatchParty) error
	ListByUser(ctx context.Context, userID string) ([]model.WatchParty, error)
	GetByID(ctx context.Context, partyID string) (model.WatchParty, error)

	// SetAttendeeStatus updates exactly the attendee matching userID inside
	// partyID in one store operation, stamps the party with at and returns it.
	SetAttendeeStatus(ctx context.Context, partyID, userID string, status model.AttendeeStatus, at time.Time) (model.WatchParty, error)

	// DeleteByOrganizer removes the party only if organizerID owns it.
	DeleteByOrganizer(ctx context.Context, partyID, organizerID string) error
}

type CreateRequest struct {
	OrganizerID    string `validate:"required"`
	MovieID        int64  `validate:"required"`
	MovieTitle     string `validate:"required"`
	MoviePoster    string
	MovieYear      int
	ScheduledTime  time.Time           `validate:"required"`
	Location       model.PartyLocation `validate:"omitempty,oneof=Virtual Physical"`
	InvitedUserIDs []string
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

func New(
	repository Repository,
	opts ...Option,
) *Usecase {
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

func (u *Usecase) Create(ctx context.Context, req CreateRequest) (model.WatchParty, error) {
	if err := u.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) == 1 && fieldErrs[0].Field() == "Location" {
			return model.WatchParty{}, errors.Join(model.ErrValidation, ErrInvalidLocation)
		}
		return model.WatchParty{}, errors.Join(model.ErrValidation, ErrMissingFields)
	}

	location := req.Location
	if location == "" {
		location = model.LocationVirtual
	}

	invited := req.InvitedUserIDs
	if invited == nil {
		invited = []string{}
	}

	now := u.now().UTC()
	party := model.WatchParty{
		ID:            uuid.NewString(),
		OrganizerID:   req.OrganizerID,
		MovieID:       req.MovieID,
		MovieTitle:    req.MovieTitle,
		MoviePoster:   req.MoviePoster,
		MovieYear:     req.MovieYear,
		ScheduledTime: req.ScheduledTime.UTC(),
		Location:      location,
		InvitedUsers:  invited,
		Attendees:     BuildAttendees(req.OrganizerID, invited),
		Status:        model.PartyScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.Repository.Create(ctx, party); err != nil {
		return model.WatchParty{}, errors.Join(model.ErrInternal, err)
	}

	u.logger.Info("watch party created",
		slog.String("party_id", party.ID),
		slog.String("organizer_id", party.OrganizerID),
		slog.Int("attendees", len(party.Attendees)),
	)
	return party, nil
}

// BuildAttendees puts the organizer first as accepted and every other
// distinct invitee after it as pending, in order of first appearance.
func BuildAttendees(organizerID string, invited []string) []model.Attendee {
	attendees := make([]model.Attendee, 0, len(invited)+1)
	attendees = append(attendees, model.Attendee{
		UserID: organizerID,
		Status: model.AttendeeAccepted,
	})

	seen := map[string]struct{}{organizerID: {}}
	for _, id := range invited {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		attendees = append(attendees, model.Attendee{
			UserID: id,
			Status: model.AttendeePending,
		})
	}
	return attendees
}

// List returns the parties userID organizes or attends. Upcoming parties
// come first, soonest first, followed by past parties, most recent first.
func (u *Usecase) List(ctx context.Context, userID string) ([]model.WatchParty, error) {
	parties, err := u.Repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	if parties == nil {
		parties = []model.WatchParty{}
	}

	SortUpcomingFirst(parties, u.now())
	return parties, nil
}

func SortUpcomingFirst(parties []model.WatchParty, now time.Time) {
	sort.SliceStable(parties, func(i, j int) bool {
		a, b := parties[i].ScheduledTime, parties[j].ScheduledTime
		aUpcoming, bUpcoming := !a.Before(now), !b.Before(now)
		switch {
		case aUpcoming && bUpcoming:
			return a.Before(b)
		case aUpcoming != bUpcoming:
			return aUpcoming
		default:
			return a.After(b)
		}
	})
}

func (u *Usecase) Details(ctx context.Context, partyID string) (model.WatchParty, error) {
	party, err := u.Repository.GetByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.WatchParty{}, errors.Join(model.ErrNotFound, ErrPartyNotFound)
		}
		return model.WatchParty{}, errors.Join(model.ErrInternal, err)
	}
	return party, nil
}

func (u *Usecase) Respond(ctx context.Context, partyID, userID string, status model.AttendeeStatus) (model.WatchParty, error) {
	if userID == "" || !status.IsResponse() {
		return model.WatchParty{}, errors.Join(model.ErrValidation, ErrInvalidResponse)
	}

	party, err := u.Repository.SetAttendeeStatus(ctx, partyID, userID, status, u.now().UTC())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.WatchParty{}, errors.Join(model.ErrNotFound, ErrAttendeeNotFound)
		}
		return model.WatchParty{}, errors.Join(model.ErrInternal, err)
	}

	u.logger.Info("watch party response",
		slog.String("party_id", partyID),
		slog.String("user_id", userID),
		slog.String("status", string(status)),
	)
	return party, nil
}

func (u *Usecase) Cancel(ctx context.Context, partyID, organizerID string) error {
	if organizerID == "" {
		return errors.Join(model.ErrNotFound, ErrNotOrganizer)
	}

	if err := u.Repository.DeleteByOrganizer(ctx, partyID, organizerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errors.Join(model.ErrNotFound, ErrNotOrganizer)
		}
		return errors.Join(model.ErrInternal, err)
	}

	u.logger.Info("watch party cancelled", slog.String("party_id", partyID))
	return nil
}
