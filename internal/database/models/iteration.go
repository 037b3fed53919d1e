package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Iteration is a time-boxed planning period of a project. WorkingDays is derived
// from the date range and is only written by the iteration service.
type Iteration struct {
	BaseModel
	ProjectID            uuid.UUID      `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name                 string         `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	StartDate            datatypes.Date `json:"start_date" gorm:"not null"`
	EndDate              datatypes.Date `json:"end_date" gorm:"not null"`
	WorkingDays          int            `json:"working_days" gorm:"not null;default:0"`
	CommittedStoryPoints int            `json:"committed_story_points" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	Members []Member `json:"members,omitempty" gorm:"foreignKey:IterationID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Iteration
func (Iteration) TableName() string {
	return "iterations"
}

// Start returns the start date as a time.Time
func (i *Iteration) Start() time.Time {
	return time.Time(i.StartDate)
}

// End returns the end date as a time.Time
func (i *Iteration) End() time.Time {
	return time.Time(i.EndDate)
}
