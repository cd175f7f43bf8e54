package entities

import (
	"fmt"
	"time"
)

// Calendar is the ordered sequence of dates a simulation runs over.
// Dates are strictly increasing; the day index used by replenishment
// policies is the position within this sequence, not a calendar offset.
type Calendar struct {
	dates []time.Time
}

// NewCalendar creates a validated Calendar from an ordered list of dates
func NewCalendar(dates []time.Time) (*Calendar, error) {
	if len(dates) == 0 {
		return nil, fmt.Errorf("calendar cannot be empty")
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, fmt.Errorf("calendar dates must be strictly increasing: %s then %s",
				dates[i-1].Format("2006-01-02"), dates[i].Format("2006-01-02"))
		}
	}

	copied := make([]time.Time, len(dates))
	copy(copied, dates)
	return &Calendar{dates: copied}, nil
}

// NewDateRange creates a Calendar of consecutive days starting at start
func NewDateRange(start time.Time, days int) (*Calendar, error) {
	if days <= 0 {
		return nil, fmt.Errorf("date range length must be positive, got %d", days)
	}

	dates := make([]time.Time, days)
	for i := 0; i < days; i++ {
		dates[i] = start.AddDate(0, 0, i)
	}
	return &Calendar{dates: dates}, nil
}

// Len returns the number of simulated days
func (c *Calendar) Len() int {
	return len(c.dates)
}

// Day returns the date at the given day index
func (c *Calendar) Day(index int) time.Time {
	return c.dates[index]
}

// Dates returns a copy of the full date sequence
func (c *Calendar) Dates() []time.Time {
	copied := make([]time.Time, len(c.dates))
	copy(copied, c.dates)
	return copied
}
