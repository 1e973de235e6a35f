package models

import (
	"fmt"
	"time"
)

// FlockSize is the fixed baseline bird count used for mortality-rate and
// active-bird figures. The flock is not dynamically tracked.
const FlockSize = 500

const dateLayout = "2006-01-02"

// ParseDate accepts the client's bare calendar-date form as well as a full
// RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
