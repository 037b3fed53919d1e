package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// referenceWorkingDays walks every date in the range
func referenceWorkingDays(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"two full weeks monday to friday", date(2024, 1, 1), date(2024, 1, 12), 10},
		{"three full weeks", date(2024, 1, 1), date(2024, 1, 19), 15},
		{"single weekday", date(2024, 1, 3), date(2024, 1, 3), 1},
		{"single saturday", date(2024, 1, 6), date(2024, 1, 6), 0},
		{"weekend only", date(2024, 1, 6), date(2024, 1, 7), 0},
		{"friday to monday", date(2024, 1, 5), date(2024, 1, 8), 2},
		{"leap day span", date(2024, 2, 26), date(2024, 3, 3), 5},
		{"across year end", date(2023, 12, 28), date(2024, 1, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorkingDays(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkingDaysMatchesReference(t *testing.T) {
	base := date(2024, 1, 1)
	for offset := 0; offset < 21; offset++ {
		start := base.AddDate(0, 0, offset)
		for span := 0; span <= 120; span++ {
			end := start.AddDate(0, 0, span)
			got, err := WorkingDays(start, end)
			require.NoError(t, err)
			require.Equal(t, referenceWorkingDays(start, end), got, "start=%s end=%s", start.Format(DateLayout), end.Format(DateLayout))
		}
	}
}

func TestWorkingDaysIgnoresClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	start := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)
	end := time.Date(2024, 1, 12, 0, 15, 0, 0, loc)

	got, err := WorkingDays(start, end)
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestWorkingDaysInvalidRange(t *testing.T) {
	_, err := WorkingDays(date(2024, 1, 12), date(2024, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestWorkingDaysIsDeterministic(t *testing.T) {
	first, err := WorkingDays(date(2024, 3, 4), date(2024, 5, 31))
	require.NoError(t, err)
	second, err := WorkingDays(date(2024, 3, 4), date(2024, 5, 31))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWeeks(t *testing.T) {
	weeks, err := Weeks(date(2024, 1, 1), date(2024, 1, 17))
	require.NoError(t, err)
	require.Len(t, weeks, 3)

	assert.Equal(t, Week{Index: 1, Start: date(2024, 1, 1), End: date(2024, 1, 7)}, weeks[0])
	assert.Equal(t, Week{Index: 2, Start: date(2024, 1, 8), End: date(2024, 1, 14)}, weeks[1])
	assert.Equal(t, Week{Index: 3, Start: date(2024, 1, 15), End: date(2024, 1, 17)}, weeks[2])

	count, err := WeekCount(date(2024, 1, 1), date(2024, 1, 17))
	require.NoError(t, err)
	assert.Equal(t, len(weeks), count)

	assert.True(t, weeks[1].Contains(date(2024, 1, 10)))
	assert.False(t, weeks[1].Contains(date(2024, 1, 15)))
}

func TestWeeksSingleDay(t *testing.T) {
	weeks, err := Weeks(date(2024, 1, 3), date(2024, 1, 3))
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, date(2024, 1, 3), weeks[0].End)

	_, err = Weeks(date(2024, 1, 4), date(2024, 1, 3))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("Monday")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, d)

	d, ok = ParseWeekday("fri")
	assert.True(t, ok)
	assert.Equal(t, time.Friday, d)

	_, ok = ParseWeekday("mo")
	assert.False(t, ok)

	_, ok = ParseWeekday("funday")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-12")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 12), d)

	_, err = ParseDate("12/01/2024")
	assert.Error(t, err)
}
