package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceStatus is the present/absent mark of one calendar day
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "P"
	AttendanceAbsent  AttendanceStatus = "A"
)

// IsValid checks if the AttendanceStatus is valid
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent:
		return true
	}
	return false
}

// DailyAttendance is one day of a member-week. Rows of a member-week share the
// same AvailabilityID and are replaced as a set.
type DailyAttendance struct {
	BaseModel
	AvailabilityID string           `json:"availability_id" gorm:"size:80;not null;uniqueIndex:idx_daily_attendance_key,priority:1"`
	MemberID       uuid.UUID        `json:"member_id" gorm:"type:uuid;not null;index"`
	WeekID         int              `json:"week_id" gorm:"not null"`
	Date           datatypes.Date   `json:"date" gorm:"not null;uniqueIndex:idx_daily_attendance_key,priority:2"`
	DayOfWeek      string           `json:"day_of_week" gorm:"size:10;not null"`
	Status         AttendanceStatus `json:"status" gorm:"type:char(1);not null"`
}

// TableName returns the table name for DailyAttendance
func (DailyAttendance) TableName() string {
	return "daily_attendance"
}

// Day returns the attendance date as a time.Time
func (d *DailyAttendance) Day() time.Time {
	return time.Time(d.Date)
}

// AvailabilityKey builds the composite member-week key used by the attendance ledger
func AvailabilityKey(memberID uuid.UUID, weekID int) string {
	return fmt.Sprintf("%s:%d", memberID, weekID)
}

// ErrInvalidAvailabilityKey is returned for keys not shaped like "<memberId>:<weekId>"
var ErrInvalidAvailabilityKey = errors.New("availability id must be <memberId>:<weekId>")

// ParseAvailabilityKey splits a member-week key into its member id and week index
func ParseAvailabilityKey(key string) (uuid.UUID, int, error) {
	memberPart, weekPart, ok := strings.Cut(key, ":")
	if !ok {
		return uuid.Nil, 0, ErrInvalidAvailabilityKey
	}
	memberID, err := uuid.Parse(memberPart)
	if err != nil {
		return uuid.Nil, 0, ErrInvalidAvailabilityKey
	}
	weekID, err := strconv.Atoi(weekPart)
	if err != nil || weekID < 1 {
		return uuid.Nil, 0, ErrInvalidAvailabilityKey
	}
	return memberID, weekID, nil
}
