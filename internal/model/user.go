package model

import "time"

const MaxSearchHistory = 10

type SearchEntry struct {
	Query     string    `json:"query" bson:"query"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type Favorite struct {
	MovieID     int64     `json:"movieId" bson:"movieId"`
	Title       string    `json:"title" bson:"title"`
	Poster      string    `json:"poster" bson:"poster"`
	Rating      string    `json:"rating" bson:"rating"`
	Year        int       `json:"year" bson:"year"`
	Description string    `json:"description" bson:"description"`
	Backdrop    string    `json:"backdrop" bson:"backdrop"`
	AddedAt     time.Time `json:"addedAt" bson:"addedAt"`
}

// Profile is what the identity provider hands over on sign in.
type Profile struct {
	UID         string `json:"uid" bson:"uid" validate:"required"`
	Email       string `json:"email" bson:"email" validate:"required"`
	DisplayName string `json:"displayName" bson:"displayName" validate:"required"`
	PhotoURL    string `json:"photoURL,omitempty" bson:"photoURL,omitempty" validate:"omitempty,url"`
}

type User struct {
	Profile       `bson:",inline"`
	SearchHistory []SearchEntry `json:"searchHistory" bson:"searchHistory"`
	Favorites     []Favorite    `json:"favorites" bson:"favorites"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}
