package ledger

import "time"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusWaitlist  Status = "waitlist"
	StatusCancelled Status = "cancelled"
)

// ClassSession is a scheduled class. Only CurrentBookings and Waitlist change after seeding.
// A seeded waitlist is only valid on a full class.
type ClassSession struct {
	ID              string   `json:"id" validate:"required"`
	Day             int      `json:"day" validate:"gte=0,lte=6"`
	Start           float64  `json:"start" validate:"gte=0,lt=24"`
	Duration        float64  `json:"duration" validate:"gt=0"`
	Name            string   `json:"name" validate:"required"`
	Color           string   `json:"color"`
	Instructor      string   `json:"instructor"`
	Description     string   `json:"description"`
	MaxCapacity     int      `json:"max_capacity" validate:"gte=1"`
	CurrentBookings int      `json:"current_bookings" validate:"gte=0,ltefield=MaxCapacity"`
	Waitlist        []string `json:"waitlist" validate:"unique,dive,required"`
}

// AvailableSpots never reports a negative number.
func (c ClassSession) AvailableSpots() int {
	spots := c.MaxCapacity - c.CurrentBookings
	if spots < 0 {
		return 0
	}
	return spots
}

func (c ClassSession) IsFull() bool {
	return c.CurrentBookings >= c.MaxCapacity
}

// WaitlistPosition returns the 1-based position of userID, or 0 when absent.
func (c ClassSession) WaitlistPosition(userID string) int {
	for i, id := range c.Waitlist {
		if id == userID {
			return i + 1
		}
	}
	return 0
}

func (c ClassSession) clone() ClassSession {
	out := c
	out.Waitlist = append([]string(nil), c.Waitlist...)
	return out
}

type BookingRecord struct {
	ID       string    `json:"id"`
	ClassID  string    `json:"class_id"`
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Status   Status    `json:"status"`
	BookedAt time.Time `json:"booked_at"`
}

func (b BookingRecord) active() bool {
	return b.Status != StatusCancelled
}

// Result is what the ledger reports back to callers. Message is meant to be shown verbatim.
type Result struct {
	Success        bool    `json:"success"`
	Message        string  `json:"message"`
	Status         Status  `json:"status,omitempty"`
	Position       int     `json:"position,omitempty"`
	BookingID      string  `json:"booking_id,omitempty"`
	PromotedUserID string  `json:"promoted_user_id,omitempty"`
	Err            error   `json:"-"`
	Events         []Event `json:"-"`
}

type UserStatus struct {
	Booked     bool `json:"booked"`
	OnWaitlist bool `json:"on_waitlist"`
	Position   int  `json:"position,omitempty"`
}

type EventType string

const (
	EventBooked     EventType = "booked"
	EventWaitlisted EventType = "waitlisted"
	EventCancelled  EventType = "cancelled"
	EventPromoted   EventType = "promoted"
)

// Event describes one state change produced by Book or Cancel.
type Event struct {
	Type        EventType `json:"type"`
	ClassID     string    `json:"class_id"`
	ClassName   string    `json:"class_name"`
	Day         int       `json:"day"`
	Start       float64   `json:"start"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	BookingID   string    `json:"booking_id,omitempty"`
	Position    int       `json:"position,omitempty"`
	Occupancy   int       `json:"occupancy"`
	WaitlistLen int       `json:"waitlist_len"`
	At          time.Time `json:"at"`
}
