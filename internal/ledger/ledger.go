package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrAlreadyBooked   = errors.New("user already has a booking for this class")
	ErrBookingNotFound = errors.New("booking not found")
)

const DefaultUserName = "Member"

const (
	msgClassNotFound   = "Class not found"
	msgAlreadyBooked   = "You are already registered for this class"
	msgBookingNotFound = "Booking not found"
	msgConfirmed       = "Booking confirmed!"
	msgWaitlisted      = "Class is full! You are number %d on the waitlist"
	msgCancelled       = "Booking cancelled"
)

// Ledger owns class occupancy, waitlists and booking history.
// Every exported method holds mu for its whole duration.
type Ledger struct {
	mu       sync.Mutex
	classes  map[string]*ClassSession
	order    []string
	bookings []*BookingRecord

	now   func() time.Time
	newID func() string
}

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// New validates the seed and builds a ledger from a private copy of it.
func New(seed []ClassSession, opts ...Option) (*Ledger, error) {
	if err := ValidateClasses(seed); err != nil {
		return nil, err
	}

	l := &Ledger{
		classes: make(map[string]*ClassSession, len(seed)),
		order:   make([]string, 0, len(seed)),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, c := range seed {
		cs := c.clone()
		l.classes[cs.ID] = &cs
		l.order = append(l.order, cs.ID)
	}

	return l, nil
}

// Classes returns copies of all classes in seed order.
func (l *Ledger) Classes() []ClassSession {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]ClassSession, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.classes[id].clone())
	}
	return out
}

func (l *Ledger) Class(classID string) (ClassSession, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.classes[classID]
	if !ok {
		return ClassSession{}, false
	}
	return c.clone(), true
}

// UserBookings returns the user's non-cancelled records, oldest first.
func (l *Ledger) UserBookings(userID string) []BookingRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []BookingRecord
	for _, b := range l.bookings {
		if b.UserID == userID && b.active() {
			out = append(out, *b)
		}
	}
	return out
}

// History returns every record of the user, cancelled ones included.
func (l *Ledger) History(userID string) []BookingRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []BookingRecord
	for _, b := range l.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out
}

func (l *Ledger) AvailableSpots(classID string) (int, error) {
	c, ok := l.Class(classID)
	if !ok {
		return 0, ErrClassNotFound
	}
	return c.AvailableSpots(), nil
}

func (l *Ledger) IsClassFull(classID string) (bool, error) {
	c, ok := l.Class(classID)
	if !ok {
		return false, ErrClassNotFound
	}
	return c.IsFull(), nil
}

func (l *Ledger) IsUserBooked(userID, classID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.activeRecord(userID, classID)
	return b != nil && b.Status == StatusConfirmed
}

func (l *Ledger) IsUserOnWaitlist(userID, classID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.classes[classID]
	return ok && c.WaitlistPosition(userID) > 0
}

func (l *Ledger) UserStatus(userID, classID string) (UserStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.classes[classID]
	if !ok {
		return UserStatus{}, ErrClassNotFound
	}

	pos := c.WaitlistPosition(userID)
	b := l.activeRecord(userID, classID)
	return UserStatus{
		Booked:     b != nil && b.Status == StatusConfirmed,
		OnWaitlist: pos > 0,
		Position:   pos,
	}, nil
}

// Book admits the user into a confirmed slot, or onto the waitlist when the class is full.
func (l *Ledger) Book(userID, classID, userName string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.classes[classID]
	if !ok {
		return failure(ErrClassNotFound, msgClassNotFound)
	}

	// Seeded waitlist entries have no record but still count as registered.
	if l.activeRecord(userID, classID) != nil || c.WaitlistPosition(userID) > 0 {
		return failure(ErrAlreadyBooked, msgAlreadyBooked)
	}

	if userName == "" {
		userName = DefaultUserName
	}

	record := &BookingRecord{
		ID:       l.newID(),
		ClassID:  classID,
		UserID:   userID,
		UserName: userName,
		BookedAt: l.now(),
	}

	if c.IsFull() {
		c.Waitlist = append(c.Waitlist, userID)
		record.Status = StatusWaitlist
		l.bookings = append(l.bookings, record)

		position := len(c.Waitlist)
		return Result{
			Success:   true,
			Message:   fmt.Sprintf(msgWaitlisted, position),
			Status:    StatusWaitlist,
			Position:  position,
			BookingID: record.ID,
			Events:    []Event{l.event(EventWaitlisted, c, record, position)},
		}
	}

	c.CurrentBookings++
	record.Status = StatusConfirmed
	l.bookings = append(l.bookings, record)

	return Result{
		Success:   true,
		Message:   msgConfirmed,
		Status:    StatusConfirmed,
		BookingID: record.ID,
		Events:    []Event{l.event(EventBooked, c, record, 0)},
	}
}

// Cancel releases the user's booking. A freed confirmed slot goes to the waitlist head,
// whose record becomes confirmed; occupancy only drops when nobody is waiting.
func (l *Ledger) Cancel(userID, classID string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := l.activeRecord(userID, classID)
	if record == nil {
		return failure(ErrBookingNotFound, msgBookingNotFound)
	}

	c, ok := l.classes[classID]
	if !ok {
		return failure(ErrClassNotFound, msgClassNotFound)
	}

	var promoted *Event
	switch record.Status {
	case StatusWaitlist:
		c.Waitlist = removeFirst(c.Waitlist, userID)
	case StatusConfirmed:
		if len(c.Waitlist) > 0 {
			promoted = l.promoteHead(c)
		} else {
			c.CurrentBookings--
		}
	}

	record.Status = StatusCancelled

	res := Result{
		Success:   true,
		Message:   msgCancelled,
		BookingID: record.ID,
		Events:    []Event{l.event(EventCancelled, c, record, 0)},
	}
	if promoted != nil {
		res.PromotedUserID = promoted.UserID
		res.Events = append(res.Events, *promoted)
	}
	return res
}

func (l *Ledger) promoteHead(c *ClassSession) *Event {
	head := c.Waitlist[0]
	c.Waitlist = append([]string(nil), c.Waitlist[1:]...)

	// Seeded waitlist entries have no record; they get a confirmed one so the seat can be released later.
	rec := l.activeRecord(head, c.ID)
	if rec == nil {
		rec = &BookingRecord{
			ID:       l.newID(),
			ClassID:  c.ID,
			UserID:   head,
			UserName: DefaultUserName,
			BookedAt: l.now(),
		}
		l.bookings = append(l.bookings, rec)
	}
	rec.Status = StatusConfirmed

	ev := l.event(EventPromoted, c, rec, 0)
	return &ev
}

func (l *Ledger) activeRecord(userID, classID string) *BookingRecord {
	for _, b := range l.bookings {
		if b.UserID == userID && b.ClassID == classID && b.active() {
			return b
		}
	}
	return nil
}

func (l *Ledger) event(t EventType, c *ClassSession, rec *BookingRecord, position int) Event {
	return Event{
		Type:        t,
		ClassID:     c.ID,
		ClassName:   c.Name,
		Day:         c.Day,
		Start:       c.Start,
		UserID:      rec.UserID,
		UserName:    rec.UserName,
		BookingID:   rec.ID,
		Position:    position,
		Occupancy:   c.CurrentBookings,
		WaitlistLen: len(c.Waitlist),
		At:          l.now(),
	}
}

func removeFirst(list []string, id string) []string {
	for i, v := range list {
		if v == id {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}

func failure(err error, msg string) Result {
	return Result{Success: false, Message: msg, Err: err}
}
