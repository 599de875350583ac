package ledger

import "fmt"

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName maps a day index (0 = Monday) to its English name.
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return ""
	}
	return dayNames[day]
}

// FormatHour renders a fractional hour as HH:MM, rounding to the nearest minute.
func FormatHour(hour float64) string {
	minutes := int(hour*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Slot renders the day and time range of a class, e.g. "Tuesday 17:00-18:30".
func (c ClassSession) Slot() string {
	return fmt.Sprintf("%s %s-%s", DayName(c.Day), FormatHour(c.Start), FormatHour(c.Start+c.Duration))
}

// OccupancyRate is the filled share of the class in percent.
func (c ClassSession) OccupancyRate() float64 {
	return float64(c.CurrentBookings) / float64(c.MaxCapacity) * 100
}
