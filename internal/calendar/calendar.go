// Package calendar implements the working-day arithmetic used for iteration
// capacity: a fixed Monday to Friday work week with no holiday calendar.
package calendar

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

const daysPerWeek = 7

// ErrInvalidRange is returned when a range starts after it ends
var ErrInvalidRange = errors.New("start date is after end date")

// Week is one 7-day block of an iteration, the last one clipped to the iteration end
type Week struct {
	Index int       `json:"index"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether day falls inside the week
func (w Week) Contains(day time.Time) bool {
	d := Normalize(day)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Normalize drops the clock part of t and returns midnight UTC of its calendar date
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// IsWorkingDay reports whether day is Monday to Friday
func IsWorkingDay(day time.Time) bool {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// WorkingDays counts the Monday to Friday dates in the inclusive range [start, end]
func WorkingDays(start, end time.Time) (int, error) {
	s, e := Normalize(start), Normalize(end)
	if s.After(e) {
		return 0, ErrInvalidRange
	}

	total := daysBetween(s, e) + 1
	count := (total / daysPerWeek) * 5

	// the remainder is always shorter than a week, so walk it
	rest := total % daysPerWeek
	day := s.AddDate(0, 0, total-rest)
	for i := 0; i < rest; i++ {
		if IsWorkingDay(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}

	return count, nil
}

// Weeks splits [start, end] into consecutive 7-day weeks starting at start, indexed from 1
func Weeks(start, end time.Time) ([]Week, error) {
	s, e := Normalize(start), Normalize(end)
	if s.After(e) {
		return nil, ErrInvalidRange
	}

	var weeks []Week
	for index, weekStart := 1, s; !weekStart.After(e); index++ {
		weekEnd := weekStart.AddDate(0, 0, daysPerWeek-1)
		if weekEnd.After(e) {
			weekEnd = e
		}
		weeks = append(weeks, Week{Index: index, Start: weekStart, End: weekEnd})
		weekStart = weekStart.AddDate(0, 0, daysPerWeek)
	}
	return weeks, nil
}

// WeekCount returns how many weeks Weeks would produce for the range
func WeekCount(start, end time.Time) (int, error) {
	s, e := Normalize(start), Normalize(end)
	if s.After(e) {
		return 0, ErrInvalidRange
	}
	return (daysBetween(s, e) / daysPerWeek) + 1, nil
}

// ParseWeekday accepts a full or three-letter English day name, case-insensitively
func ParseWeekday(s string) (time.Weekday, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) < 3 {
		return 0, false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, true
		}
	}
	return 0, false
}

func daysBetween(start, end time.Time) int {
	// both arguments are UTC midnights, so the hour count is an exact multiple of 24
	return int(end.Sub(start).Hours() / 24)
}
