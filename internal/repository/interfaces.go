package repository

import (
	"context"

	"capacity-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// IterationRepositoryInterface defines the interface for iteration repository operations
type IterationRepositoryInterface interface {
	Create(iteration *models.Iteration) error
	GetByID(id uuid.UUID) (*models.Iteration, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Iteration, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Iteration, int64, error)
	Update(iteration *models.Iteration) error
	Delete(id uuid.UUID) error
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByIterationID(iterationID uuid.UUID) ([]models.Member, error)
	Update(member *models.Member) error
	UpdateEffectiveCapacity(id uuid.UUID, days float64) error
	Delete(id uuid.UUID) error
	DeleteByIterationID(iterationID uuid.UUID) (int64, error)
}

// WeeklyAvailabilityRepositoryInterface defines the interface for weekly availability operations
type WeeklyAvailabilityRepositoryInterface interface {
	Upsert(entry *models.WeeklyAvailability) error
	GetByIterationID(iterationID uuid.UUID) ([]models.WeeklyAvailability, error)
	DeleteByMemberIDs(memberIDs []uuid.UUID) (int64, error)
}

// DailyAttendanceRepositoryInterface defines the interface for daily attendance operations
type DailyAttendanceRepositoryInterface interface {
	CreateBatch(records []models.DailyAttendance) error
	GetByAvailabilityID(availabilityID string) ([]models.DailyAttendance, error)
	GetByMemberIDs(memberIDs []uuid.UUID) ([]models.DailyAttendance, error)
	DeleteByAvailabilityID(availabilityID string) (int64, error)
	DeleteByMemberIDs(memberIDs []uuid.UUID) (int64, error)
}

// ProjectAccessRepositoryInterface defines the interface for project collaborator lookups
type ProjectAccessRepositoryInterface interface {
	HasAccess(projectID uuid.UUID, userID string) (bool, error)
	Grant(collaborator *models.ProjectCollaborator) error
}

// UnitOfWork exposes repositories bound to one database session. Inside
// StoreInterface.Transaction every repository shares the same transaction.
type UnitOfWork interface {
	Iterations() IterationRepositoryInterface
	Members() MemberRepositoryInterface
	WeeklyAvailability() WeeklyAvailabilityRepositoryInterface
	DailyAttendance() DailyAttendanceRepositoryInterface
	ProjectAccess() ProjectAccessRepositoryInterface
}

// StoreInterface opens units of work over the database
type StoreInterface interface {
	Reader(ctx context.Context) UnitOfWork
	Transaction(ctx context.Context, fn func(uow UnitOfWork) error) error
}
