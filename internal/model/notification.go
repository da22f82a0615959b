package model

import "time"

type NotificationType string

const (
	NotificationRecommendation   NotificationType = "recommendation"
	NotificationWatchlistUpdate  NotificationType = "watchlist_update"
	NotificationWatchPartyInvite NotificationType = "watch_party_invite"
	NotificationSystemMessage    NotificationType = "system_message"
	NotificationFavoriteActivity NotificationType = "favorite_activity"
)

type Notification struct {
	ID          string           `json:"_id" bson:"_id"`
	RecipientID string           `json:"recipientId" bson:"recipientId"`
	SenderID    string           `json:"senderId,omitempty" bson:"senderId,omitempty"`
	Type        NotificationType `json:"type" bson:"type"`
	Message     string           `json:"message" bson:"message"`
	MovieID     *int64           `json:"movieId,omitempty" bson:"movieId,omitempty"`
	Link        string           `json:"link,omitempty" bson:"link,omitempty"`
	IsRead      bool             `json:"isRead" bson:"isRead"`
	CreatedAt   time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt" bson:"updatedAt"`
}

type Recommendation struct {
	ID          string    `json:"_id" bson:"_id"`
	SenderID    string    `json:"senderId" bson:"senderId"`
	RecipientID string    `json:"recipientId" bson:"recipientId"`
	MovieID     int64     `json:"movieId" bson:"movieId"`
	Message     string    `json:"message" bson:"message"`
	MovieTitle  string    `json:"movieTitle,omitempty" bson:"movieTitle,omitempty"`
	MoviePoster string    `json:"moviePoster,omitempty" bson:"moviePoster,omitempty"`
	MovieYear   int       `json:"movieYear,omitempty" bson:"movieYear,omitempty"`
	IsRead      bool      `json:"isRead" bson:"isRead"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
