package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

// Repository provides methods to interact with push_subscriptions table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new subscription repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetActiveByUser returns all active subscriptions of user, oldest first.
func (r *Repository) GetActiveByUser(ctx context.Context, user string) ([]model.PushSubscription, error) {
	query := `
		SELECT id, user_id, endpoint, p256dh, auth, is_active, created_at
		FROM push_subscriptions
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("failed to get active subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []model.PushSubscription
	for rows.Next() {
		var s model.PushSubscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Endpoint, &s.P256dh, &s.Auth, &s.Active, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}

		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}

	return subs, nil
}

// Deactivate marks a subscription inactive. Subscriptions are never deleted.
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE push_subscriptions
		SET is_active = FALSE, deactivated_at = NOW()
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate subscription: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
