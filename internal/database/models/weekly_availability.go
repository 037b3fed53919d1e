package models

import (
	"github.com/google/uuid"
)

// WeeklyAvailability is a member's availability for one week of an iteration,
// unique per (iteration, week, member).
type WeeklyAvailability struct {
	BaseModel
	IterationID         uuid.UUID `json:"iteration_id" gorm:"type:uuid;not null;uniqueIndex:idx_weekly_availability_key,priority:1"`
	WeekIndex           int       `json:"week_index" gorm:"not null;uniqueIndex:idx_weekly_availability_key,priority:2"`
	MemberID            uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_weekly_availability_key,priority:3"`
	AvailabilityPercent float64   `json:"availability_percent" gorm:"type:numeric(5,2);not null"`
	DaysPresent         int       `json:"days_present" gorm:"not null"`
	DaysTotal           int       `json:"days_total" gorm:"not null;default:5"`
}

// TableName returns the table name for WeeklyAvailability
func (WeeklyAvailability) TableName() string {
	return "weekly_availability"
}
