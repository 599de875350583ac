package ledger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateClasses checks field constraints and id uniqueness of a seed schedule.
func ValidateClasses(classes []ClassSession) error {
	seen := make(map[string]struct{}, len(classes))
	for i, c := range classes {
		if err := validate.Struct(c); err != nil {
			return fmt.Errorf("invalid class at index %d (id %q): %w", i, c.ID, err)
		}
		if len(c.Waitlist) > 0 && c.CurrentBookings != c.MaxCapacity {
			return fmt.Errorf("invalid class at index %d (id %q): waitlist of %d on a class with %d free spots",
				i, c.ID, len(c.Waitlist), c.AvailableSpots())
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate class id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// LoadClasses reads a JSON array of classes. An empty path yields DefaultClasses.
func LoadClasses(path string) ([]ClassSession, error) {
	if path == "" {
		return DefaultClasses(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var classes []ClassSession
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := ValidateClasses(classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// DefaultClasses is the weekly schedule loaded when no seed file is configured.
func DefaultClasses() []ClassSession {
	return []ClassSession{
		{ID: "1", Day: 0, Start: 7, Duration: 1, Name: "Yoga Flow", Color: "primary", Instructor: "Marie L.", MaxCapacity: 15, CurrentBookings: 12, Description: "Dynamic yoga session for all levels"},
		{ID: "2", Day: 0, Start: 18, Duration: 1, Name: "CrossFit", Color: "accent", Instructor: "Thomas B.", MaxCapacity: 20, CurrentBookings: 20, Waitlist: []string{"user1", "user2"}, Description: "High intensity training"},
		{ID: "3", Day: 1, Start: 9, Duration: 1, Name: "Pilates", Color: "info", Instructor: "Sophie M.", MaxCapacity: 12, CurrentBookings: 8, Description: "Deep core strengthening"},
		{ID: "4", Day: 1, Start: 17, Duration: 1.5, Name: "Boxing", Color: "warning", Instructor: "Lucas D.", MaxCapacity: 16, CurrentBookings: 14, Description: "Cardio boxing and technique"},
		{ID: "5", Day: 2, Start: 8, Duration: 1, Name: "Yoga Flow", Color: "primary", Instructor: "Marie L.", MaxCapacity: 15, CurrentBookings: 15, Waitlist: []string{"user3"}, Description: "Dynamic yoga session for all levels"},
		{ID: "6", Day: 2, Start: 19, Duration: 1, Name: "HIIT", Color: "destructive", Instructor: "Emma R.", MaxCapacity: 25, CurrentBookings: 18, Description: "High intensity intervals"},
		{ID: "7", Day: 3, Start: 10, Duration: 1, Name: "Spinning", Color: "accent", Instructor: "Paul V.", MaxCapacity: 20, CurrentBookings: 16, Description: "Indoor cycling to music"},
		{ID: "8", Day: 3, Start: 18, Duration: 1, Name: "CrossFit", Color: "accent", Instructor: "Thomas B.", MaxCapacity: 20, CurrentBookings: 19, Description: "High intensity training"},
		{ID: "9", Day: 4, Start: 7, Duration: 1, Name: "Yoga Flow", Color: "primary", Instructor: "Marie L.", MaxCapacity: 15, CurrentBookings: 10, Description: "Dynamic yoga session for all levels"},
		{ID: "10", Day: 4, Start: 16, Duration: 2, Name: "Weight Training", Color: "success", Instructor: "Kevin P.", MaxCapacity: 30, CurrentBookings: 22, Description: "Guided weight training session"},
		{ID: "11", Day: 5, Start: 9, Duration: 1.5, Name: "Zumba", Color: "warning", Instructor: "Clara S.", MaxCapacity: 25, CurrentBookings: 25, Waitlist: []string{"user4", "user5", "user6"}, Description: "Latin dance fitness"},
		{ID: "12", Day: 6, Start: 10, Duration: 1, Name: "Yoga", Color: "primary", Instructor: "Marie L.", MaxCapacity: 15, CurrentBookings: 6, Description: "Relaxing Sunday yoga"},
	}
}
