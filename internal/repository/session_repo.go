package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio_backend/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Ensure implementation of Sessions interface at compile time.
var _ Sessions = (*SessionRepository)(nil)

const (
	upsertSessionSQL = `
		INSERT INTO sessions (token, user_id, username, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(token) DO UPDATE SET
			user_id=excluded.user_id,
			username=excluded.username,
			created_at=excluded.created_at,
			expires_at=excluded.expires_at
	`
	selectSessionSQL         = `SELECT token, user_id, username, created_at, expires_at FROM sessions WHERE token = ?`
	deleteSessionSQL         = `DELETE FROM sessions WHERE token = ?`
	deleteExpiredSessionsSQL = `DELETE FROM sessions WHERE expires_at <= ?`
)

// Set stores or replaces the session row for its token.
func (r *SessionRepository) Set(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, upsertSessionSQL,
		s.Token,
		s.UserID,
		s.Username,
		s.CreatedAt.UTC(),
		s.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Get fetches a live session by token. Returns (nil, nil) when the token is
// unknown or the session has expired; expired rows are left to the sweeper.
func (r *SessionRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, selectSessionSQL, token).
		Scan(&s.Token, &s.UserID, &s.Username, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	if s.Expired(time.Now().UTC()) {
		return nil, nil
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.ExpiresAt = s.ExpiresAt.UTC()
	return &s, nil
}

// Destroy removes the session row. Unknown tokens are a no-op, which keeps
// logout idempotent.
func (r *SessionRepository) Destroy(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// DeleteExpired removes every session whose expiry is at or before now and
// returns how many rows went away.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredSessionsSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for expired sessions: %w", err)
	}
	return affected, nil
}
