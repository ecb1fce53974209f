package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio_backend/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Ensure implementation of ContactMessages interface at compile time.
var _ ContactMessages = (*ContactRepository)(nil)

const insertContactSQL = `INSERT INTO contact_messages (full_name, email, message, created_at) VALUES (?, ?, ?, ?)`

// Insert appends one contact message and returns its id. CreatedAt is set
// here if the caller left it zero.
func (r *ContactRepository) Insert(ctx context.Context, m models.ContactMessage) (int, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	} else {
		m.CreatedAt = m.CreatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertContactSQL,
		m.FullName,
		m.Email,
		m.Message,
		m.CreatedAt.Format(sqliteTimestampLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for contact message: %w", err)
	}
	return int(lastID), nil
}
