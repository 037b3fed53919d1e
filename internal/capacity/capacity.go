// Package capacity holds the closed-form capacity formulas. Everything here is
// pure; persistence and propagation live in the service layer.
package capacity

import "math"

const (
	// DefaultDaysPerWeek is the week length assumed when a weekly entry omits daysTotal
	DefaultDaysPerWeek = 5

	// MaxLeaves bounds the leave count accepted from clients
	MaxLeaves = math.MaxInt32
)

// EffectiveDays computes a member's effective capacity for an iteration:
// (workingDays - leaves) * availabilityPercent / 100, clamped to [0, workingDays]
// and rounded to one decimal place.
func EffectiveDays(workingDays, leaves int, availabilityPercent float64) float64 {
	if workingDays <= 0 {
		return 0
	}

	available := workingDays - leaves
	if available < 0 {
		available = 0
	}

	days := float64(available) * availabilityPercent / 100
	days = math.Max(0, math.Min(days, float64(workingDays)))

	return RoundTenth(days)
}

// DaysPresent derives the present days of a week from an availability percentage
func DaysPresent(availabilityPercent float64, daysTotal int) int {
	return int(math.Round(availabilityPercent / 100 * float64(daysTotal)))
}

// RoundTenth rounds v to one decimal place, halves away from zero
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundPercent rounds p to the two decimal places availability is stored with
func RoundPercent(p float64) float64 {
	return math.Round(p*100) / 100
}

// ValidPercent reports whether p is a finite percentage in [0, 100]
func ValidPercent(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 100
}

// IsWhole reports whether v is a finite integral value
func IsWhole(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}
