package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with the delivery columns of the notifications table.
// The table itself is owned by the content services; this repository only reads and writes
// push_sent_at, delivered_at and read_at.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// PushAlreadySent reports whether a wake-up push was already sent to recipient for entity.
func (r *Repository) PushAlreadySent(ctx context.Context, recipient string, entity model.EntityRef) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM notifications
		    WHERE recipient_id = $1 AND entity_type = $2 AND entity_id = $3
		      AND push_sent_at IS NOT NULL
		);
    `

	var sent bool
	if err := r.db.QueryRowContext(ctx, query, recipient, entity.Type, entity.ID).Scan(&sent); err != nil {
		return false, fmt.Errorf("failed to check push_sent_at: %w", err)
	}

	return sent, nil
}

// MarkPushSent stamps push_sent_at on the recipient's notifications for entity that have none yet.
func (r *Repository) MarkPushSent(ctx context.Context, recipient string, entity model.EntityRef, at time.Time) error {
	query := `
		UPDATE notifications
		SET push_sent_at = $4
		WHERE recipient_id = $1 AND entity_type = $2 AND entity_id = $3
		  AND push_sent_at IS NULL;
    `

	if _, err := r.db.ExecContext(ctx, query, recipient, entity.Type, entity.ID, at); err != nil {
		return fmt.Errorf("failed to update push_sent_at: %w", err)
	}

	return nil
}

// GetDeliveryStatus returns whether the notification or message id was delivered and read.
func (r *Repository) GetDeliveryStatus(ctx context.Context, id string) (model.DeliveryStatus, error) {
	query := `
		SELECT delivered_at IS NOT NULL, read_at IS NOT NULL
		FROM notifications
		WHERE id = $1;
    `

	var status model.DeliveryStatus
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status.Delivered, &status.Read)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DeliveryStatus{}, ErrNotificationNotFound
		}

		return model.DeliveryStatus{}, fmt.Errorf("failed to get delivery status: %w", err)
	}

	return status, nil
}

// MarkDelivered sets delivered_at once for a notification addressed to recipient.
func (r *Repository) MarkDelivered(ctx context.Context, id, recipient string, at time.Time) error {
	query := `
		UPDATE notifications
		SET delivered_at = COALESCE(delivered_at, $3)
		WHERE id = $1 AND recipient_id = $2;
    `

	return r.execOne(ctx, "mark delivered", query, id, recipient, at)
}

// MarkRead sets read_at once, and delivered_at if it was still empty.
func (r *Repository) MarkRead(ctx context.Context, id, recipient string, at time.Time) error {
	query := `
		UPDATE notifications
		SET read_at = COALESCE(read_at, $3),
		    delivered_at = COALESCE(delivered_at, $3)
		WHERE id = $1 AND recipient_id = $2;
    `

	return r.execOne(ctx, "mark read", query, id, recipient, at)
}

func (r *Repository) execOne(ctx context.Context, op, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
