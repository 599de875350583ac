package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClasses_AreValid(t *testing.T) {
	classes := DefaultClasses()
	require.Len(t, classes, 12)
	assert.NoError(t, ValidateClasses(classes))

	l, err := New(classes)
	require.NoError(t, err)

	crossfit, ok := l.Class("2")
	require.True(t, ok)
	assert.True(t, crossfit.IsFull())
	assert.Equal(t, []string{"user1", "user2"}, crossfit.Waitlist)
}

func TestValidateClasses(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClassSession)
	}{
		{name: "missing id", mutate: func(c *ClassSession) { c.ID = "" }},
		{name: "day out of range", mutate: func(c *ClassSession) { c.Day = 7 }},
		{name: "negative day", mutate: func(c *ClassSession) { c.Day = -1 }},
		{name: "zero capacity", mutate: func(c *ClassSession) { c.MaxCapacity = 0 }},
		{name: "overbooked", mutate: func(c *ClassSession) { c.CurrentBookings = c.MaxCapacity + 1 }},
		{name: "negative occupancy", mutate: func(c *ClassSession) { c.CurrentBookings = -1 }},
		{name: "zero duration", mutate: func(c *ClassSession) { c.Duration = 0 }},
		{name: "missing name", mutate: func(c *ClassSession) { c.Name = "" }},
		{name: "waitlist with free spots", mutate: func(c *ClassSession) { c.CurrentBookings = 0; c.Waitlist = []string{"u1"} }},
		{name: "waitlist one short of full", mutate: func(c *ClassSession) { c.CurrentBookings = c.MaxCapacity - 1; c.Waitlist = []string{"u1"} }},
		{name: "duplicate waitlist id", mutate: func(c *ClassSession) { c.CurrentBookings = c.MaxCapacity; c.Waitlist = []string{"u1", "u1"} }},
		{name: "empty waitlist id", mutate: func(c *ClassSession) { c.CurrentBookings = c.MaxCapacity; c.Waitlist = []string{"u1", ""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := class("1", 10, 2)
			tt.mutate(&c)
			assert.Error(t, ValidateClasses([]ClassSession{c}))

			_, err := New([]ClassSession{c})
			assert.Error(t, err)
		})
	}
}

func TestValidateClasses_WaitlistOnFullClass(t *testing.T) {
	assert.NoError(t, ValidateClasses([]ClassSession{class("1", 2, 2, "u1", "u2")}))
	assert.NoError(t, ValidateClasses(DefaultClasses()))
}

func TestValidateClasses_DuplicateID(t *testing.T) {
	err := ValidateClasses([]ClassSession{class("1", 5, 0), class("1", 5, 0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate class id")
}

func TestLoadClasses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.json")
	data := `[
		{"id": "spin", "day": 3, "start": 10, "duration": 1, "name": "Spinning", "max_capacity": 2, "current_bookings": 2, "waitlist": ["w1"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	classes, err := LoadClasses(path)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Spinning", classes[0].Name)
	assert.Equal(t, []string{"w1"}, classes[0].Waitlist)
	assert.True(t, classes[0].IsFull())
}

func TestLoadClasses_DefaultsWhenNoPath(t *testing.T) {
	classes, err := LoadClasses("")
	require.NoError(t, err)
	assert.Len(t, classes, 12)
}

func TestLoadClasses_Errors(t *testing.T) {
	_, err := LoadClasses(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{not json`), 0o600))
	_, err = LoadClasses(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`[{"id":"x","day":9,"start":8,"duration":1,"name":"X","max_capacity":1}]`), 0o600))
	_, err = LoadClasses(invalid)
	assert.Error(t, err)
}
