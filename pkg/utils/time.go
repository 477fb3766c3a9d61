package utils

import (
	"fmt"
	"time"
)

// ParseQueryTime parses a query-string time that may be RFC3339 or a bare
// YYYY-MM-DD date. A bare end date is pushed to the end of its day so a
// date-only range is inclusive.
func ParseQueryTime(value string, isEndTime bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", value)
	}
	if isEndTime {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}
