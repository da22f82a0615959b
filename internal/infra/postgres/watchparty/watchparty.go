package infra_postgres_watchparty

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

const partyColumns = `id, organizer_id, movie_id, movie_title, movie_poster, movie_year,
	scheduled_time, location, invited_users, status, created_at, updated_at`

func (d *Driver) Create(ctx context.Context, party model.WatchParty) error {
	partyDB, attendees := FromDomain(party)

	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO watch_parties (` + partyColumns + `)
		VALUES (:id, :organizer_id, :movie_id, :movie_title, :movie_poster, :movie_year,
			:scheduled_time, :location, :invited_users, :status, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, partyDB); err != nil {
		return fmt.Errorf("failed to insert watch party: %w", err)
	}

	for _, a := range attendees {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO watch_party_attendees (party_id, position, user_id, status)
			VALUES ($1, $2, $3, $4)
		`, a.PartyID, a.Position, a.UserID, a.Status)
		if err != nil {
			return fmt.Errorf("failed to insert attendee %s: %w", a.UserID, err)
		}
	}

	return tx.Commit()
}

func (d *Driver) ListByUser(ctx context.Context, userID string) ([]model.WatchParty, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM watch_parties p
		WHERE p.organizer_id = $1
		   OR EXISTS (
				SELECT 1 FROM watch_party_attendees a
				WHERE a.party_id = p.id AND a.user_id = $1
		   )
		ORDER BY p.scheduled_time DESC
	`

	var parties []PartyDB
	if err := d.db.SelectContext(ctx, &parties, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list watch parties: %w", err)
	}
	if len(parties) == 0 {
		return []model.WatchParty{}, nil
	}

	ids := make([]string, 0, len(parties))
	for _, p := range parties {
		ids = append(ids, p.ID)
	}
	byParty, err := d.loadAttendees(ctx, d.db, ids)
	if err != nil {
		return nil, err
	}

	result := make([]model.WatchParty, 0, len(parties))
	for _, p := range parties {
		result = append(result, p.ToDomain(byParty[p.ID]))
	}
	return result, nil
}

func (d *Driver) GetByID(ctx context.Context, partyID string) (model.WatchParty, error) {
	if _, err := uuid.Parse(partyID); err != nil {
		return model.WatchParty{}, model.ErrNotFound
	}
	return d.load(ctx, d.db, partyID)
}

func (d *Driver) SetAttendeeStatus(ctx context.Context, partyID, userID string, status model.AttendeeStatus, at time.Time) (model.WatchParty, error) {
	if _, err := uuid.Parse(partyID); err != nil {
		return model.WatchParty{}, model.ErrNotFound
	}

	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.WatchParty{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		UPDATE watch_party_attendees
		SET status = $3
		WHERE party_id = $1 AND user_id = $2
	`, partyID, userID, string(status))
	if err != nil {
		return model.WatchParty{}, fmt.Errorf("failed to update attendee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return model.WatchParty{}, err
	}
	if rowsAffected == 0 {
		return model.WatchParty{}, model.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `UPDATE watch_parties SET updated_at = $2 WHERE id = $1`, partyID, at); err != nil {
		return model.WatchParty{}, fmt.Errorf("failed to touch watch party: %w", err)
	}

	party, err := d.load(ctx, tx, partyID)
	if err != nil {
		return model.WatchParty{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.WatchParty{}, err
	}
	return party, nil
}

func (d *Driver) DeleteByOrganizer(ctx context.Context, partyID, organizerID string) error {
	if _, err := uuid.Parse(partyID); err != nil {
		return model.ErrNotFound
	}

	result, err := d.db.ExecContext(ctx, `
		DELETE FROM watch_parties
		WHERE id = $1 AND organizer_id = $2
	`, partyID, organizerID)
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

func (d *Driver) load(ctx context.Context, q sqlx.QueryerContext, partyID string) (model.WatchParty, error) {
	var party PartyDB
	err := sqlx.GetContext(ctx, q, &party, `SELECT `+partyColumns+` FROM watch_parties WHERE id = $1`, partyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WatchParty{}, model.ErrNotFound
		}
		return model.WatchParty{}, fmt.Errorf("failed to load watch party: %w", err)
	}

	byParty, err := d.loadAttendees(ctx, q, []string{partyID})
	if err != nil {
		return model.WatchParty{}, err
	}
	return party.ToDomain(byParty[partyID]), nil
}

func (d *Driver) loadAttendees(ctx context.Context, q sqlx.QueryerContext, partyIDs []string) (map[string][]AttendeeDB, error) {
	query, args, err := sqlx.In(`
		SELECT party_id, position, user_id, status
		FROM watch_party_attendees
		WHERE party_id IN (?)
		ORDER BY party_id, position
	`, partyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []AttendeeDB
	if err := sqlx.SelectContext(ctx, q, &rows, d.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load attendees: %w", err)
	}

	byParty := make(map[string][]AttendeeDB, len(partyIDs))
	for _, a := range rows {
		byParty[a.PartyID] = append(byParty[a.PartyID], a)
	}
	return byParty, nil
}
