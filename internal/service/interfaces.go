package service

import (
	"context"

	"capacity-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccessChecker answers whether a user may work on a project
type AccessChecker interface {
	HasProjectAccess(ctx context.Context, userID string, projectID uuid.UUID) (bool, error)
}

// ProjectAccessServiceInterface defines the interface for project access service
type ProjectAccessServiceInterface interface {
	AccessChecker
	GrantAccess(ctx context.Context, projectID uuid.UUID, userID string, role models.CollaboratorRole) error
}

// IterationServiceInterface defines the interface for iteration service
type IterationServiceInterface interface {
	CreateIteration(ctx context.Context, userID string, projectID uuid.UUID, req *CreateIterationRequest) (*IterationResponse, error)
	GetIteration(ctx context.Context, userID string, id uuid.UUID) (*IterationResponse, error)
	ListIterations(ctx context.Context, userID string, projectID uuid.UUID, limit, offset int) (*IterationListResponse, error)
	UpdateIteration(ctx context.Context, userID string, id uuid.UUID, req *UpdateIterationRequest) (*IterationResponse, error)
	DeleteIteration(ctx context.Context, userID string, id uuid.UUID) error
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	AddMember(ctx context.Context, userID string, iterationID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error)
	GetMember(ctx context.Context, userID string, id uuid.UUID) (*MemberResponse, error)
	ListMembers(ctx context.Context, userID string, iterationID uuid.UUID) ([]MemberResponse, error)
	UpdateMember(ctx context.Context, userID string, id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
	DeleteMember(ctx context.Context, userID string, id uuid.UUID) error
}

// WeeklyAvailabilityServiceInterface defines the interface for weekly availability service
type WeeklyAvailabilityServiceInterface interface {
	SaveWeeklyAvailability(ctx context.Context, userID string, iterationID uuid.UUID, req *SaveWeeklyAvailabilityRequest) (*SaveWeeklyAvailabilityResponse, error)
	GetWeeklyAvailability(ctx context.Context, userID string, iterationID uuid.UUID) ([]WeeklyAvailabilityResponse, error)
}

// DailyAttendanceServiceInterface defines the interface for daily attendance service
type DailyAttendanceServiceInterface interface {
	SaveDailyAttendance(ctx context.Context, userID string, memberID uuid.UUID, weekID int, req *SaveDailyAttendanceRequest) (*SaveDailyAttendanceResponse, error)
	GetDailyAttendance(ctx context.Context, userID string, availabilityID string) ([]DailyAttendanceResponse, error)
}

// CapacityReportServiceInterface defines the interface for capacity report service
type CapacityReportServiceInterface interface {
	GetCapacitySummary(ctx context.Context, userID string, iterationID uuid.UUID) (*CapacitySummaryResponse, error)
	GetReconciliation(ctx context.Context, userID string, iterationID uuid.UUID) (*ReconciliationResponse, error)
}
