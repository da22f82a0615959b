package infra_postgres_recommendation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
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

type recommendationDTO struct {
	ID          string    `db:"id"`
	SenderID    string    `db:"sender_id"`
	RecipientID string    `db:"recipient_id"`
	MovieID     int64     `db:"movie_id"`
	Message     string    `db:"message"`
	MovieTitle  string    `db:"movie_title"`
	MoviePoster string    `db:"movie_poster"`
	MovieYear   int       `db:"movie_year"`
	IsRead      bool      `db:"is_read"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *recommendationDTO) toDomain() model.Recommendation {
	return model.Recommendation{
		ID:          r.ID,
		SenderID:    r.SenderID,
		RecipientID: r.RecipientID,
		MovieID:     r.MovieID,
		Message:     r.Message,
		MovieTitle:  r.MovieTitle,
		MoviePoster: r.MoviePoster,
		MovieYear:   r.MovieYear,
		IsRead:      r.IsRead,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

const columns = `id, sender_id, recipient_id, movie_id, message, movie_title, movie_poster, movie_year, is_read, created_at, updated_at`

func (d *Driver) Create(ctx context.Context, r model.Recommendation) error {
	query := `
		INSERT INTO recommendations (` + columns + `)
		VALUES (:id, :sender_id, :recipient_id, :movie_id, :message, :movie_title, :movie_poster, :movie_year, :is_read, :created_at, :updated_at)
	`
	_, err := d.db.NamedExecContext(ctx, query, recommendationDTO{
		ID:          r.ID,
		SenderID:    r.SenderID,
		RecipientID: r.RecipientID,
		MovieID:     r.MovieID,
		Message:     r.Message,
		MovieTitle:  r.MovieTitle,
		MoviePoster: r.MoviePoster,
		MovieYear:   r.MovieYear,
		IsRead:      r.IsRead,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert recommendation: %w", err)
	}
	return nil
}

func (d *Driver) ListByRecipient(ctx context.Context, recipientID string) ([]model.Recommendation, error) {
	var rows []recommendationDTO
	query := `SELECT ` + columns + ` FROM recommendations WHERE recipient_id = $1 ORDER BY created_at DESC`
	if err := d.db.SelectContext(ctx, &rows, query, recipientID); err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	feed := make([]model.Recommendation, 0, len(rows))
	for _, r := range rows {
		feed = append(feed, r.toDomain())
	}
	return feed, nil
}

func (d *Driver) MarkRead(ctx context.Context, id string, at time.Time) (model.Recommendation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Recommendation{}, model.ErrNotFound
	}

	var dto recommendationDTO
	query := `
		UPDATE recommendations
		SET is_read = TRUE, updated_at = $2
		WHERE id = $1
		RETURNING ` + columns
	if err := d.db.GetContext(ctx, &dto, query, id, at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Recommendation{}, model.ErrNotFound
		}
		return model.Recommendation{}, fmt.Errorf("failed to mark recommendation read: %w", err)
	}
	return dto.toDomain(), nil
}

func (d *Driver) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrNotFound
	}

	result, err := d.db.ExecContext(ctx, `DELETE FROM recommendations WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
