package history

import (
	"context"
	"fmt"

	"gymflow/internal/ledger"

	"github.com/jmoiron/sqlx"
)

const maxListLimit = 500

type Repository interface {
	Record(ctx context.Context, ev ledger.Event) error
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Record(ctx context.Context, ev ledger.Event) error {
	query := `
		INSERT INTO booking_events (event_type, class_id, class_name, user_id, user_name, booking_id, position, occupancy, waitlist_len, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		string(ev.Type), ev.ClassID, ev.ClassName, ev.UserID, ev.UserName,
		ev.BookingID, ev.Position, ev.Occupancy, ev.WaitlistLen, ev.At,
	)
	if err != nil {
		return fmt.Errorf("failed to record %s event: %w", ev.Type, err)
	}

	return nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, event_type, class_id, class_name, user_id, user_name, booking_id, position, occupancy, waitlist_len, occurred_at
		FROM booking_events
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1
	`

	entries := []Entry{}
	err := r.db.SelectContext(ctx, &entries, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error) {
	query := `
		SELECT id, event_type, class_id, class_name, user_id, user_name, booking_id, position, occupancy, waitlist_len, occurred_at
		FROM booking_events
		WHERE user_id = $1
		ORDER BY occurred_at DESC, id DESC
		LIMIT $2
	`

	entries := []Entry{}
	err := r.db.SelectContext(ctx, &entries, query, userID, clampLimit(limit))
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
