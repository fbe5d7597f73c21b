package internal

import (
	"time"
)

// postHour is the fixed time of day every post goes live.
const postHour = 7

// Schedule is the Mon/Wed/Fri publishing cursor. The cursor weekday is always
// Monday, Wednesday or Friday; Advance is the only transition.
type Schedule struct {
	current time.Time
}

// NewSchedule validates the start date and pins the cursor to 07:00 on it.
func NewSchedule(start time.Time) (*Schedule, error) {
	switch start.Weekday() {
	case time.Monday, time.Wednesday, time.Friday:
	default:
		return nil, InvalidInput("date must be a Monday, Wednesday, or Friday")
	}
	cur := time.Date(start.Year(), start.Month(), start.Day(), postHour, 0, 0, 0, start.Location())
	return &Schedule{current: cur}, nil
}

// Current returns the scheduled date and time for the next post.
func (s *Schedule) Current() time.Time {
	return s.current
}

// Advance moves the cursor to the next publishing day:
// Mon -> Wed, Wed -> Fri, Fri -> Mon.
func (s *Schedule) Advance() {
	switch s.current.Weekday() {
	case time.Monday, time.Wednesday:
		s.current = s.current.AddDate(0, 0, 2)
	case time.Friday:
		s.current = s.current.AddDate(0, 0, 3)
	}
}
