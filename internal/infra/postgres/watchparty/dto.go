package infra_postgres_watchparty

import (
	"time"

	"github.com/humanbelnik/cineverse/internal/model"
	"github.com/lib/pq"
)

type PartyDB struct {
	ID            string         `db:"id"`
	OrganizerID   string         `db:"organizer_id"`
	MovieID       int64          `db:"movie_id"`
	MovieTitle    string         `db:"movie_title"`
	MoviePoster   string         `db:"movie_poster"`
	MovieYear     int            `db:"movie_year"`
	ScheduledTime time.Time      `db:"scheduled_time"`
	Location      string         `db:"location"`
	InvitedUsers  pq.StringArray `db:"invited_users"`
	Status        string         `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type AttendeeDB struct {
	PartyID  string `db:"party_id"`
	Position int    `db:"position"`
	UserID   string `db:"user_id"`
	Status   string `db:"status"`
}

func (p *PartyDB) ToDomain(attendees []AttendeeDB) model.WatchParty {
	party := model.WatchParty{
		ID:            p.ID,
		OrganizerID:   p.OrganizerID,
		MovieID:       p.MovieID,
		MovieTitle:    p.MovieTitle,
		MoviePoster:   p.MoviePoster,
		MovieYear:     p.MovieYear,
		ScheduledTime: p.ScheduledTime.UTC(),
		Location:      model.PartyLocation(p.Location),
		InvitedUsers:  []string(p.InvitedUsers),
		Attendees:     make([]model.Attendee, 0, len(attendees)),
		Status:        model.PartyStatus(p.Status),
		CreatedAt:     p.CreatedAt.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
	if party.InvitedUsers == nil {
		party.InvitedUsers = []string{}
	}
	for _, a := range attendees {
		party.Attendees = append(party.Attendees, model.Attendee{
			UserID: a.UserID,
			Status: model.AttendeeStatus(a.Status),
		})
	}
	return party
}

func FromDomain(p model.WatchParty) (PartyDB, []AttendeeDB) {
	invited := p.InvitedUsers
	if invited == nil {
		invited = []string{}
	}
	party := PartyDB{
		ID:            p.ID,
		OrganizerID:   p.OrganizerID,
		MovieID:       p.MovieID,
		MovieTitle:    p.MovieTitle,
		MoviePoster:   p.MoviePoster,
		MovieYear:     p.MovieYear,
		ScheduledTime: p.ScheduledTime,
		Location:      string(p.Location),
		InvitedUsers:  pq.StringArray(invited),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	attendees := make([]AttendeeDB, 0, len(p.Attendees))
	for i, a := range p.Attendees {
		attendees = append(attendees, AttendeeDB{
			PartyID:  p.ID,
			Position: i,
			UserID:   a.UserID,
			Status:   string(a.Status),
		})
	}
	return party, attendees
}
