package utils

import (
	"encoding/json"
	"time"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	val, err := time.ParseDuration(str)
	if err != nil {
		return err
	}
	*d = Duration(val)
	return nil
}

type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	formatted := t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	return []byte(`"` + formatted + `"`), nil
}

// DayBounds returns the inclusive start and end of the calendar day that
// contains the given instant, in that instant's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// DayKey formats the calendar day of the given instant as yyyy-mm-dd.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameCalendarDay reports whether both instants fall on the same calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
