package model

import "time"

type AttendeeStatus string

const (
	AttendeePending  AttendeeStatus = "pending"
	AttendeeAccepted AttendeeStatus = "accepted"
	AttendeeDeclined AttendeeStatus = "declined"
)

// IsResponse reports whether s is a status an invitee may set.
func (s AttendeeStatus) IsResponse() bool {
	return s == AttendeeAccepted || s == AttendeeDeclined
}

type PartyLocation string

const (
	LocationVirtual  PartyLocation = "Virtual"
	LocationPhysical PartyLocation = "Physical"
)

type PartyStatus string

const (
	PartyScheduled PartyStatus = "scheduled"
	PartyActive    PartyStatus = "active"
	PartyCompleted PartyStatus = "completed"
	PartyCancelled PartyStatus = "cancelled"
)

type Attendee struct {
	UserID string         `json:"userId" bson:"userId"`
	Status AttendeeStatus `json:"status" bson:"status"`
}

type WatchParty struct {
	ID            string        `json:"_id" bson:"_id"`
	OrganizerID   string        `json:"organizerId" bson:"organizerId"`
	MovieID       int64         `json:"movieId" bson:"movieId"`
	MovieTitle    string        `json:"movieTitle" bson:"movieTitle"`
	MoviePoster   string        `json:"moviePoster,omitempty" bson:"moviePoster,omitempty"`
	MovieYear     int           `json:"movieYear,omitempty" bson:"movieYear,omitempty"`
	ScheduledTime time.Time     `json:"scheduledTime" bson:"scheduledTime"`
	Location      PartyLocation `json:"location" bson:"location"`
	InvitedUsers  []string      `json:"invitedUsers" bson:"invitedUsers"`
	Attendees     []Attendee    `json:"attendees" bson:"attendees"`
	Status        PartyStatus   `json:"status" bson:"status"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Involves reports whether userID organizes or attends the party.
func (p WatchParty) Involves(userID string) bool {
	if p.OrganizerID == userID {
		return true
	}
	for _, a := range p.Attendees {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// Attendee returns the attendee entry of userID, if any.
func (p WatchParty) Attendee(userID string) (Attendee, bool) {
	for _, a := range p.Attendees {
		if a.UserID == userID {
			return a, true
		}
	}
	return Attendee{}, false
}
