package infra_postgres_user

import (
	"time"

	"github.com/humanbelnik/cineverse/internal/model"
)

type UserDB struct {
	UID         string    `db:"uid"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	PhotoURL    string    `db:"photo_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type FavoriteDB struct {
	MovieID     int64     `db:"movie_id"`
	Title       string    `db:"title"`
	Poster      string    `db:"poster"`
	Rating      string    `db:"rating"`
	Year        int       `db:"year"`
	Description string    `db:"description"`
	Backdrop    string    `db:"backdrop"`
	AddedAt     time.Time `db:"added_at"`
}

type SearchDB struct {
	Query      string    `db:"query"`
	SearchedAt time.Time `db:"searched_at"`
}

func (u *UserDB) ToDomain() model.User {
	return model.User{
		Profile: model.Profile{
			UID:         u.UID,
			Email:       u.Email,
			DisplayName: u.DisplayName,
			PhotoURL:    u.PhotoURL,
		},
		SearchHistory: []model.SearchEntry{},
		Favorites:     []model.Favorite{},
		CreatedAt:     u.CreatedAt.UTC(),
		UpdatedAt:     u.UpdatedAt.UTC(),
	}
}

func (f *FavoriteDB) ToDomain() model.Favorite {
	return model.Favorite{
		MovieID:     f.MovieID,
		Title:       f.Title,
		Poster:      f.Poster,
		Rating:      f.Rating,
		Year:        f.Year,
		Description: f.Description,
		Backdrop:    f.Backdrop,
		AddedAt:     f.AddedAt.UTC(),
	}
}

func (s *SearchDB) ToDomain() model.SearchEntry {
	return model.SearchEntry{
		Query:     s.Query,
		Timestamp: s.SearchedAt.UTC(),
	}
}
