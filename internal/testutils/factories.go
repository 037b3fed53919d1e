package testutils

import (
	"time"

	"capacity-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func day(s string) datatypes.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("testutils: bad date " + s)
	}
	return datatypes.Date(t)
}

// IterationFactory provides methods to create test Iteration data
type IterationFactory struct{}

// NewIterationFactory creates a new IterationFactory
func NewIterationFactory() *IterationFactory {
	return &IterationFactory{}
}

// Create creates a two-week test Iteration starting Monday 2024-01-01
func (f *IterationFactory) Create() *models.Iteration {
	return &models.Iteration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:            uuid.New(),
		Name:                 "Test Sprint",
		StartDate:            day("2024-01-01"),
		EndDate:              day("2024-01-12"),
		WorkingDays:          10,
		CommittedStoryPoints: 20,
	}
}

// WithProject creates a test Iteration owned by projectID
func (f *IterationFactory) WithProject(projectID uuid.UUID) *models.Iteration {
	iteration := f.Create()
	iteration.ProjectID = projectID
	return iteration
}

// WithRange creates a test Iteration over [start, end]; WorkingDays is left for the caller
func (f *IterationFactory) WithRange(start, end string, workingDays int) *models.Iteration {
	iteration := f.Create()
	iteration.StartDate = day(start)
	iteration.EndDate = day(end)
	iteration.WorkingDays = workingDays
	return iteration
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member in iterationID with full availability
func (f *MemberFactory) Create(iterationID uuid.UUID) *models.Member {
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		IterationID:           iterationID,
		Name:                  "Jordan Doe",
		Role:                  "developer",
		WorkMode:              models.WorkModeOffice,
		Leaves:                0,
		AvailabilityPercent:   100,
		EffectiveCapacityDays: 10,
	}
}

// WithName creates a test Member with a custom name
func (f *MemberFactory) WithName(iterationID uuid.UUID, name string) *models.Member {
	member := f.Create(iterationID)
	member.Name = name
	return member
}

// WeeklyAvailabilityFactory provides methods to create test WeeklyAvailability data
type WeeklyAvailabilityFactory struct{}

// NewWeeklyAvailabilityFactory creates a new WeeklyAvailabilityFactory
func NewWeeklyAvailabilityFactory() *WeeklyAvailabilityFactory {
	return &WeeklyAvailabilityFactory{}
}

// Create creates a test WeeklyAvailability row
func (f *WeeklyAvailabilityFactory) Create(iterationID, memberID uuid.UUID, weekIndex int, percent float64) *models.WeeklyAvailability {
	return &models.WeeklyAvailability{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		IterationID:         iterationID,
		WeekIndex:           weekIndex,
		MemberID:            memberID,
		AvailabilityPercent: percent,
		DaysPresent:         int(percent / 20),
		DaysTotal:           5,
	}
}

// DailyAttendanceFactory provides methods to create test DailyAttendance data
type DailyAttendanceFactory struct{}

// NewDailyAttendanceFactory creates a new DailyAttendanceFactory
func NewDailyAttendanceFactory() *DailyAttendanceFactory {
	return &DailyAttendanceFactory{}
}

// Create creates a present-day test DailyAttendance row for the member-week
func (f *DailyAttendanceFactory) Create(memberID uuid.UUID, weekID int, date string) *models.DailyAttendance {
	d := day(date)
	return &models.DailyAttendance{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		AvailabilityID: models.AvailabilityKey(memberID, weekID),
		MemberID:       memberID,
		WeekID:         weekID,
		Date:           d,
		DayOfWeek:      time.Time(d).Weekday().String(),
		Status:         models.AttendancePresent,
	}
}

// ProjectCollaboratorFactory provides methods to create test ProjectCollaborator data
type ProjectCollaboratorFactory struct{}

// NewProjectCollaboratorFactory creates a new ProjectCollaboratorFactory
func NewProjectCollaboratorFactory() *ProjectCollaboratorFactory {
	return &ProjectCollaboratorFactory{}
}

// Create creates a test editor grant for userID on projectID
func (f *ProjectCollaboratorFactory) Create(projectID uuid.UUID, userID string) *models.ProjectCollaborator {
	return &models.ProjectCollaborator{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		UserID:    userID,
		Role:      models.CollaboratorRoleEditor,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Iteration           *IterationFactory
	Member              *MemberFactory
	WeeklyAvailability  *WeeklyAvailabilityFactory
	DailyAttendance     *DailyAttendanceFactory
	ProjectCollaborator *ProjectCollaboratorFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Iteration:           NewIterationFactory(),
		Member:              NewMemberFactory(),
		WeeklyAvailability:  NewWeeklyAvailabilityFactory(),
		DailyAttendance:     NewDailyAttendanceFactory(),
		ProjectCollaborator: NewProjectCollaboratorFactory(),
	}
}
