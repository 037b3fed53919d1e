package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkMode describes where a member works. It is informational only and never
// enters the capacity formula.
type WorkMode string

const (
	WorkModeOffice WorkMode = "office"
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
)

// IsValid checks if the WorkMode is valid
func (w WorkMode) IsValid() bool {
	switch w {
	case WorkModeOffice, WorkModeRemote, WorkModeHybrid:
		return true
	}
	return false
}

// Member is a person planned into one iteration
type Member struct {
	BaseModel
	IterationID           uuid.UUID      `json:"iteration_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name                  string         `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Role                  string         `json:"role" gorm:"size:100"`
	WorkMode              WorkMode       `json:"work_mode" gorm:"type:varchar(20);not null;default:'office'"`
	Leaves                int            `json:"leaves" gorm:"not null;default:0" validate:"min=0"`
	AvailabilityPercent   float64        `json:"availability_percent" gorm:"type:numeric(5,2);not null" validate:"min=0,max=100"`
	EffectiveCapacityDays float64        `json:"effective_capacity_days" gorm:"type:numeric(6,1);not null;default:0"`
	Metadata              datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
