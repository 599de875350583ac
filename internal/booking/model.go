package booking

import "gymflow/internal/ledger"

// ClassView is a class as listed on the schedule.
type ClassView struct {
	ledger.ClassSession
	DayName        string  `json:"day_name" example:"Monday"`
	StartTime      string  `json:"start_time" example:"18:00"`
	EndTime        string  `json:"end_time" example:"19:00"`
	AvailableSpots int     `json:"available_spots" example:"3"`
	IsFull         bool    `json:"is_full"`
	WaitlistLength int     `json:"waitlist_length" example:"0"`
	OccupancyRate  float64 `json:"occupancy_rate" example:"85"`
}

type ClassDetail struct {
	ClassView
	MyStatus ledger.UserStatus `json:"my_status"`
}

type BookingView struct {
	ledger.BookingRecord
	ClassName string `json:"class_name" example:"Yoga Flow"`
	Slot      string `json:"slot" example:"Monday 07:00-08:00"`
}

type BookRequest struct {
	UserName string `json:"user_name" binding:"omitempty,max=64" example:"Jane Doe"`
}

func newClassView(c ledger.ClassSession) ClassView {
	if c.Waitlist == nil {
		c.Waitlist = []string{}
	}
	return ClassView{
		ClassSession:   c,
		DayName:        ledger.DayName(c.Day),
		StartTime:      ledger.FormatHour(c.Start),
		EndTime:        ledger.FormatHour(c.Start + c.Duration),
		AvailableSpots: c.AvailableSpots(),
		IsFull:         c.IsFull(),
		WaitlistLength: len(c.Waitlist),
		OccupancyRate:  c.OccupancyRate(),
	}
}
