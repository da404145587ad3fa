package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
)

var ErrUserNotFound = errors.New("user not found")

// Repository reads and writes the presence-related columns of users.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// UpdateLastSeen persists the time the user's last live connection closed.
func (r *Repository) UpdateLastSeen(ctx context.Context, user string, at time.Time) error {
	query := `
		UPDATE users
		SET last_seen_at = $2
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, user, at)
	if err != nil {
		return fmt.Errorf("failed to update last seen: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// GetEmail returns the user's e-mail address.
func (r *Repository) GetEmail(ctx context.Context, user string) (string, error) {
	query := `
		SELECT email
		FROM users
		WHERE id = $1;
    `

	var email sql.NullString
	if err := r.db.QueryRowContext(ctx, query, user).Scan(&email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}

		return "", fmt.Errorf("failed to get email: %w", err)
	}

	return email.String, nil
}
