package infra_postgres_notification

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

type notificationDTO struct {
	ID          string        `db:"id"`
	RecipientID string        `db:"recipient_id"`
	SenderID    string        `db:"sender_id"`
	Type        string        `db:"type"`
	Message     string        `db:"message"`
	MovieID     sql.NullInt64 `db:"movie_id"`
	Link        string        `db:"link"`
	IsRead      bool          `db:"is_read"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func (n *notificationDTO) toDomain() model.Notification {
	out := model.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		SenderID:    n.SenderID,
		Type:        model.NotificationType(n.Type),
		Message:     n.Message,
		Link:        n.Link,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt.UTC(),
		UpdatedAt:   n.UpdatedAt.UTC(),
	}
	if n.MovieID.Valid {
		id := n.MovieID.Int64
		out.MovieID = &id
	}
	return out
}

const columns = `id, recipient_id, sender_id, type, message, movie_id, link, is_read, created_at, updated_at`

func (d *Driver) Create(ctx context.Context, n model.Notification) error {
	dto := notificationDTO{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		SenderID:    n.SenderID,
		Type:        string(n.Type),
		Message:     n.Message,
		Link:        n.Link,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	if n.MovieID != nil {
		dto.MovieID = sql.NullInt64{Int64: *n.MovieID, Valid: true}
	}

	query := `
		INSERT INTO notifications (` + columns + `)
		VALUES (:id, :recipient_id, :sender_id, :type, :message, :movie_id, :link, :is_read, :created_at, :updated_at)
	`
	if _, err := d.db.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (d *Driver) ListByRecipient(ctx context.Context, recipientID string) ([]model.Notification, error) {
	var rows []notificationDTO
	query := `SELECT ` + columns + ` FROM notifications WHERE recipient_id = $1 ORDER BY created_at DESC`
	if err := d.db.SelectContext(ctx, &rows, query, recipientID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	feed := make([]model.Notification, 0, len(rows))
	for _, n := range rows {
		feed = append(feed, n.toDomain())
	}
	return feed, nil
}

func (d *Driver) MarkRead(ctx context.Context, id string, at time.Time) (model.Notification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Notification{}, model.ErrNotFound
	}

	var dto notificationDTO
	query := `
		UPDATE notifications
		SET is_read = TRUE, updated_at = $2
		WHERE id = $1
		RETURNING ` + columns
	if err := d.db.GetContext(ctx, &dto, query, id, at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, model.ErrNotFound
		}
		return model.Notification{}, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return dto.toDomain(), nil
}
