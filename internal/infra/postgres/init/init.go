package infra_pg_init

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/humanbelnik/cineverse/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	if err := Migrate(db); err != nil {
		log.Fatal(err)
	}

	slog.Info("connected to PostgreSQL", slog.String("db", cfg.DBName))
	return db
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		uid          TEXT PRIMARY KEY,
		email        TEXT NOT NULL,
		display_name TEXT NOT NULL,
		photo_url    TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_favorites (
		uid         TEXT NOT NULL REFERENCES users(uid),
		movie_id    BIGINT NOT NULL,
		title       TEXT NOT NULL,
		poster      TEXT NOT NULL DEFAULT '',
		rating      TEXT NOT NULL DEFAULT '',
		year        INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		backdrop    TEXT NOT NULL DEFAULT '',
		added_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (uid, movie_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_search_history (
		uid         TEXT NOT NULL REFERENCES users(uid),
		query       TEXT NOT NULL,
		searched_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (uid, query)
	)`,
	`CREATE TABLE IF NOT EXISTS watch_parties (
		id             UUID PRIMARY KEY,
		organizer_id   TEXT NOT NULL,
		movie_id       BIGINT NOT NULL,
		movie_title    TEXT NOT NULL,
		movie_poster   TEXT NOT NULL DEFAULT '',
		movie_year     INTEGER NOT NULL DEFAULT 0,
		scheduled_time TIMESTAMPTZ NOT NULL,
		location       TEXT NOT NULL DEFAULT 'Virtual' CHECK (location IN ('Virtual', 'Physical')),
		invited_users  TEXT[] NOT NULL DEFAULT '{}',
		status         TEXT NOT NULL DEFAULT 'scheduled' CHECK (status IN ('scheduled', 'active', 'completed', 'cancelled')),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS watch_party_attendees (
		party_id UUID NOT NULL REFERENCES watch_parties(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		user_id  TEXT NOT NULL,
		status   TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'declined')),
		PRIMARY KEY (party_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_watch_parties_organizer ON watch_parties(organizer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_watch_party_attendees_user ON watch_party_attendees(user_id)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id           UUID PRIMARY KEY,
		recipient_id TEXT NOT NULL,
		sender_id    TEXT NOT NULL DEFAULT '',
		type         TEXT NOT NULL CHECK (type IN ('recommendation', 'watchlist_update', 'watch_party_invite', 'system_message', 'favorite_activity')),
		message      TEXT NOT NULL,
		movie_id     BIGINT,
		link         TEXT NOT NULL DEFAULT '',
		is_read      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS recommendations (
		id           UUID PRIMARY KEY,
		sender_id    TEXT NOT NULL,
		recipient_id TEXT NOT NULL,
		movie_id     BIGINT NOT NULL,
		message      TEXT NOT NULL DEFAULT '',
		movie_title  TEXT NOT NULL DEFAULT '',
		movie_poster TEXT NOT NULL DEFAULT '',
		movie_year   INTEGER NOT NULL DEFAULT 0,
		is_read      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recommendations_recipient ON recommendations(recipient_id, created_at DESC)`,
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(db *sqlx.DB) error {
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
