package booking

import (
	"context"
	"errors"

	"gymflow/internal/ledger"
	"gymflow/internal/logger"
	"gymflow/internal/metrics"
)

// Listener receives ledger events after a successful book or cancel.
// Listener failures are logged and never undo the ledger change.
type Listener interface {
	HandleEvent(ctx context.Context, ev ledger.Event) error
}

type Service interface {
	ListClasses(ctx context.Context, day *int) []ClassView
	GetClass(ctx context.Context, userID, classID string) (*ClassDetail, error)
	Book(ctx context.Context, userID, classID, userName string) ledger.Result
	Cancel(ctx context.Context, userID, classID string) ledger.Result
	UserBookings(ctx context.Context, userID string) []BookingView
	History(ctx context.Context, userID string) []BookingView
}

type service struct {
	ledger    *ledger.Ledger
	listeners []Listener
}

func NewService(l *ledger.Ledger, listeners ...Listener) Service {
	svc := &service{
		ledger:    l,
		listeners: listeners,
	}
	for _, c := range l.Classes() {
		metrics.SetClassState(c.ID, c.CurrentBookings, len(c.Waitlist))
	}
	return svc
}

func (s *service) ListClasses(ctx context.Context, day *int) []ClassView {
	classes := s.ledger.Classes()

	views := make([]ClassView, 0, len(classes))
	for _, c := range classes {
		if day != nil && c.Day != *day {
			continue
		}
		views = append(views, newClassView(c))
	}
	return views
}

func (s *service) GetClass(ctx context.Context, userID, classID string) (*ClassDetail, error) {
	c, ok := s.ledger.Class(classID)
	if !ok {
		return nil, ledger.ErrClassNotFound
	}

	status, err := s.ledger.UserStatus(userID, classID)
	if err != nil {
		return nil, err
	}

	return &ClassDetail{
		ClassView: newClassView(c),
		MyStatus:  status,
	}, nil
}

func (s *service) Book(ctx context.Context, userID, classID, userName string) ledger.Result {
	res := s.ledger.Book(userID, classID, userName)
	if !res.Success {
		metrics.RecordRejection("book", reason(res.Err))
		logger.Info("Booking rejected", "user_id", userID, "class_id", classID, "reason", res.Err)
		return res
	}

	metrics.RecordBooking(classID, string(res.Status))
	logger.Info("Class booked",
		"user_id", userID,
		"class_id", classID,
		"status", res.Status,
		"position", res.Position,
	)

	s.dispatch(ctx, res.Events)
	return res
}

func (s *service) Cancel(ctx context.Context, userID, classID string) ledger.Result {
	res := s.ledger.Cancel(userID, classID)
	if !res.Success {
		metrics.RecordRejection("cancel", reason(res.Err))
		logger.Info("Cancellation rejected", "user_id", userID, "class_id", classID, "reason", res.Err)
		return res
	}

	metrics.RecordCancellation(classID)
	if res.PromotedUserID != "" {
		metrics.RecordPromotion(classID)
		logger.Info("Waitlist promotion", "class_id", classID, "promoted_user_id", res.PromotedUserID)
	}
	logger.Info("Booking cancelled", "user_id", userID, "class_id", classID)

	s.dispatch(ctx, res.Events)
	return res
}

func (s *service) UserBookings(ctx context.Context, userID string) []BookingView {
	return s.views(s.ledger.UserBookings(userID))
}

// History includes cancelled bookings.
func (s *service) History(ctx context.Context, userID string) []BookingView {
	return s.views(s.ledger.History(userID))
}

func (s *service) views(records []ledger.BookingRecord) []BookingView {
	views := make([]BookingView, 0, len(records))
	for _, r := range records {
		view := BookingView{BookingRecord: r}
		if c, ok := s.ledger.Class(r.ClassID); ok {
			view.ClassName = c.Name
			view.Slot = c.Slot()
		}
		views = append(views, view)
	}
	return views
}

func (s *service) dispatch(ctx context.Context, events []ledger.Event) {
	for _, ev := range events {
		metrics.SetClassState(ev.ClassID, ev.Occupancy, ev.WaitlistLen)
		for _, l := range s.listeners {
			if err := l.HandleEvent(ctx, ev); err != nil {
				logger.WithError(err).Error("Event listener failed",
					"event", ev.Type,
					"class_id", ev.ClassID,
					"user_id", ev.UserID,
				)
			}
		}
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, ledger.ErrClassNotFound):
		return "class_not_found"
	case errors.Is(err, ledger.ErrAlreadyBooked):
		return "already_booked"
	case errors.Is(err, ledger.ErrBookingNotFound):
		return "booking_not_found"
	default:
		return "unknown"
	}
}
