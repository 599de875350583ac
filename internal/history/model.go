package history

import "time"

// Entry is one persisted ledger event. The journal is append-only and never read back into the ledger.
type Entry struct {
	ID          int64     `db:"id" json:"id"`
	EventType   string    `db:"event_type" json:"event_type"`
	ClassID     string    `db:"class_id" json:"class_id"`
	ClassName   string    `db:"class_name" json:"class_name"`
	UserID      string    `db:"user_id" json:"user_id"`
	UserName    string    `db:"user_name" json:"user_name"`
	BookingID   string    `db:"booking_id" json:"booking_id"`
	Position    int       `db:"position" json:"position"`
	Occupancy   int       `db:"occupancy" json:"occupancy"`
	WaitlistLen int       `db:"waitlist_len" json:"waitlist_len"`
	OccurredAt  time.Time `db:"occurred_at" json:"occurred_at"`
}
