package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/humanbelnik/cineverse/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

func (d *Driver) Upsert(ctx context.Context, profile model.Profile, at time.Time) (model.User, error) {
	query := `
		INSERT INTO users (uid, email, display_name, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (uid) DO UPDATE
		SET email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			photo_url = EXCLUDED.photo_url,
			updated_at = EXCLUDED.updated_at
	`
	_, err := d.db.ExecContext(ctx, query, profile.UID, profile.Email, profile.DisplayName, profile.PhotoURL, at)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	return d.Get(ctx, profile.UID)
}

func (d *Driver) Get(ctx context.Context, uid string) (model.User, error) {
	var userDB UserDB
	query := `
		SELECT uid, email, display_name, photo_url, created_at, updated_at
		FROM users
		WHERE uid = $1
	`
	if err := d.db.GetContext(ctx, &userDB, query, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to load user: %w", err)
	}

	user := userDB.ToDomain()

	favorites, err := d.Favorites(ctx, uid)
	if err != nil {
		return model.User{}, err
	}
	history, err := d.SearchHistory(ctx, uid, model.MaxSearchHistory)
	if err != nil {
		return model.User{}, err
	}

	user.Favorites = favorites
	user.SearchHistory = history
	return user, nil
}

func (d *Driver) Favorites(ctx context.Context, uid string) ([]model.Favorite, error) {
	var rows []FavoriteDB
	query := `
		SELECT movie_id, title, poster, rating, year, description, backdrop, added_at
		FROM user_favorites
		WHERE uid = $1
		ORDER BY added_at DESC
	`
	if err := d.db.SelectContext(ctx, &rows, query, uid); err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	favorites := make([]model.Favorite, 0, len(rows))
	for _, f := range rows {
		favorites = append(favorites, f.ToDomain())
	}
	return favorites, nil
}

// AddFavorite inserts only for an existing user and only once per movie.
func (d *Driver) AddFavorite(ctx context.Context, uid string, fav model.Favorite) (bool, error) {
	query := `
		INSERT INTO user_favorites (uid, movie_id, title, poster, rating, year, description, backdrop, added_at)
		SELECT $1, $2::BIGINT, $3, $4, $5, $6::INTEGER, $7, $8, $9::TIMESTAMPTZ
		WHERE EXISTS (SELECT 1 FROM users WHERE uid = $1)
		ON CONFLICT (uid, movie_id) DO NOTHING
	`
	result, err := d.db.ExecContext(ctx, query,
		uid,
		fav.MovieID,
		fav.Title,
		fav.Poster,
		fav.Rating,
		fav.Year,
		fav.Description,
		fav.Backdrop,
		fav.AddedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rowsAffected == 1 {
		return true, nil
	}

	exists, err := d.exists(ctx, uid)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, model.ErrNotFound
	}
	return false, nil
}

func (d *Driver) RemoveFavorite(ctx context.Context, uid string, movieID int64) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM user_favorites WHERE uid = $1 AND movie_id = $2`, uid, movieID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (d *Driver) SearchHistory(ctx context.Context, uid string, limit int) ([]model.SearchEntry, error) {
	var rows []SearchDB
	query := `
		SELECT query, searched_at
		FROM user_search_history
		WHERE uid = $1
		ORDER BY searched_at DESC
		LIMIT $2
	`
	if err := d.db.SelectContext(ctx, &rows, query, uid, limit); err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}

	history := make([]model.SearchEntry, 0, len(rows))
	for _, s := range rows {
		history = append(history, s.ToDomain())
	}
	return history, nil
}

// PushSearch runs under a row lock on the user so concurrent pushes cannot
// exceed limit.
func (d *Driver) PushSearch(ctx context.Context, uid string, entry model.SearchEntry, limit int) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var locked string
	if err := tx.QueryRowxContext(ctx, `SELECT uid FROM users WHERE uid = $1 FOR UPDATE`, uid).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to lock user: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_search_history (uid, query, searched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid, query) DO UPDATE SET searched_at = EXCLUDED.searched_at
	`, uid, entry.Query, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to push search: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM user_search_history
		WHERE uid = $1 AND query NOT IN (
			SELECT query FROM user_search_history
			WHERE uid = $1
			ORDER BY searched_at DESC
			LIMIT $2
		)
	`, uid, limit)
	if err != nil {
		return fmt.Errorf("failed to trim search history: %w", err)
	}

	return tx.Commit()
}

func (d *Driver) ClearSearchHistory(ctx context.Context, uid string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM user_search_history WHERE uid = $1`, uid); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	return nil
}

func (d *Driver) RemoveSearch(ctx context.Context, uid, query string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM user_search_history WHERE uid = $1 AND query = $2`, uid, query); err != nil {
		return fmt.Errorf("failed to remove search: %w", err)
	}
	return nil
}

func (d *Driver) exists(ctx context.Context, uid string) (bool, error) {
	var exists bool
	if err := d.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE uid = $1)`, uid); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}
