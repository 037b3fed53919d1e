package service

import (
	"context"
	"math"

	"capacity-planner-backend/internal/calendar"
	"capacity-planner-backend/internal/capacity"
	"capacity-planner-backend/internal/database/models"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/repository"

	"github.com/google/uuid"
)

// divergenceTolerance is how far, in days, a refinement layer may drift from
// member-level capacity before the reconciliation report flags it
const divergenceTolerance = 0.5

// CapacityReportService produces read-only capacity views of an iteration
type CapacityReportService struct {
	store  repository.StoreInterface
	access AccessChecker
}

// NewCapacityReportService creates a new capacity report service
func NewCapacityReportService(store repository.StoreInterface, access AccessChecker) *CapacityReportService {
	return &CapacityReportService{
		store:  store,
		access: access,
	}
}

// MemberCapacity is one member's line in the capacity summary
type MemberCapacity struct {
	MemberID              uuid.UUID `json:"member_id"`
	Name                  string    `json:"name"`
	Role                  string    `json:"role"`
	WorkMode              string    `json:"work_mode"`
	Leaves                int       `json:"leaves"`
	AvailabilityPercent   float64   `json:"availability_percent"`
	EffectiveCapacityDays float64   `json:"effective_capacity_days"`
}

// CapacitySummaryResponse aggregates member capacity for one iteration
type CapacitySummaryResponse struct {
	IterationID            uuid.UUID        `json:"iteration_id"`
	WorkingDays            int              `json:"working_days"`
	WeekCount              int              `json:"week_count"`
	MemberCount            int              `json:"member_count"`
	TotalCapacityDays      float64          `json:"total_capacity_days"`
	TotalLeaves            int              `json:"total_leaves"`
	CommittedStoryPoints   int              `json:"committed_story_points"`
	StoryPointsPerCapacity float64          `json:"story_points_per_capacity_day"`
	Members                []MemberCapacity `json:"members"`
}

// MemberReconciliation compares the three capacity layers of one member
type MemberReconciliation struct {
	MemberID              uuid.UUID `json:"member_id"`
	Name                  string    `json:"name"`
	EffectiveCapacityDays float64   `json:"effective_capacity_days"`
	WeeksRecorded         int       `json:"weeks_recorded"`
	WeeklyDaysPresent     int       `json:"weekly_days_present"`
	DaysRecorded          int       `json:"days_recorded"`
	DailyDaysPresent      int       `json:"daily_days_present"`
	WeeklyDiverges        bool      `json:"weekly_diverges"`
	DailyDiverges         bool      `json:"daily_diverges"`
}

// ReconciliationResponse is the per-iteration reconciliation report
type ReconciliationResponse struct {
	IterationID uuid.UUID              `json:"iteration_id"`
	WeekCount   int                    `json:"week_count"`
	Diverged    int                    `json:"diverged_members"`
	Members     []MemberReconciliation `json:"members"`
}

// GetCapacitySummary totals the effective capacity of an iteration's members
func (s *CapacityReportService) GetCapacitySummary(ctx context.Context, userID string, iterationID uuid.UUID) (*CapacitySummaryResponse, error) {
	uow := s.store.Reader(ctx)
	iteration, err := s.authorizedIteration(ctx, uow, userID, iterationID)
	if err != nil {
		return nil, err
	}

	members, err := uow.Members().GetByIterationID(iterationID)
	if err != nil {
		return nil, storageError("list members", err, nil)
	}

	weekCount, _ := calendar.WeekCount(iteration.Start(), iteration.End())
	summary := &CapacitySummaryResponse{
		IterationID:          iteration.ID,
		WorkingDays:          iteration.WorkingDays,
		WeekCount:            weekCount,
		MemberCount:          len(members),
		CommittedStoryPoints: iteration.CommittedStoryPoints,
		Members:              make([]MemberCapacity, 0, len(members)),
	}

	var total float64
	for _, m := range members {
		total += m.EffectiveCapacityDays
		summary.TotalLeaves += m.Leaves
		summary.Members = append(summary.Members, MemberCapacity{
			MemberID:              m.ID,
			Name:                  m.Name,
			Role:                  m.Role,
			WorkMode:              string(m.WorkMode),
			Leaves:                m.Leaves,
			AvailabilityPercent:   m.AvailabilityPercent,
			EffectiveCapacityDays: m.EffectiveCapacityDays,
		})
	}
	summary.TotalCapacityDays = capacity.RoundTenth(total)
	if summary.TotalCapacityDays > 0 {
		summary.StoryPointsPerCapacity = math.Round(float64(iteration.CommittedStoryPoints)/summary.TotalCapacityDays*100) / 100
	}

	return summary, nil
}

// GetReconciliation compares member-level capacity with the weekly and daily
// layers. Member-level capacity stays canonical and nothing is written back.
func (s *CapacityReportService) GetReconciliation(ctx context.Context, userID string, iterationID uuid.UUID) (*ReconciliationResponse, error) {
	uow := s.store.Reader(ctx)
	iteration, err := s.authorizedIteration(ctx, uow, userID, iterationID)
	if err != nil {
		return nil, err
	}

	members, err := uow.Members().GetByIterationID(iterationID)
	if err != nil {
		return nil, storageError("list members", err, nil)
	}
	weekly, err := uow.WeeklyAvailability().GetByIterationID(iterationID)
	if err != nil {
		return nil, storageError("list weekly availability", err, nil)
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}
	daily, err := uow.DailyAttendance().GetByMemberIDs(memberIDs)
	if err != nil {
		return nil, storageError("list daily attendance", err, nil)
	}

	weekCount, _ := calendar.WeekCount(iteration.Start(), iteration.End())
	report := &ReconciliationResponse{
		IterationID: iteration.ID,
		WeekCount:   weekCount,
		Members:     make([]MemberReconciliation, 0, len(members)),
	}

	for _, m := range members {
		line := reconcileMember(m, weekly, daily)
		if line.WeeklyDiverges || line.DailyDiverges {
			report.Diverged++
		}
		report.Members = append(report.Members, line)
	}

	return report, nil
}

// reconcileMember only judges a layer that has records; an empty layer is not divergence
func reconcileMember(member models.Member, weekly []models.WeeklyAvailability, daily []models.DailyAttendance) MemberReconciliation {
	line := MemberReconciliation{
		MemberID:              member.ID,
		Name:                  member.Name,
		EffectiveCapacityDays: member.EffectiveCapacityDays,
	}

	for _, w := range weekly {
		if w.MemberID != member.ID {
			continue
		}
		line.WeeksRecorded++
		line.WeeklyDaysPresent += w.DaysPresent
	}

	for _, d := range daily {
		if d.MemberID != member.ID {
			continue
		}
		line.DaysRecorded++
		if d.Status == models.AttendancePresent {
			line.DailyDaysPresent++
		}
	}

	if line.WeeksRecorded > 0 {
		line.WeeklyDiverges = math.Abs(float64(line.WeeklyDaysPresent)-member.EffectiveCapacityDays) > divergenceTolerance
	}
	if line.DaysRecorded > 0 {
		line.DailyDiverges = math.Abs(float64(line.DailyDaysPresent)-member.EffectiveCapacityDays) > divergenceTolerance
	}

	return line
}

func (s *CapacityReportService) authorizedIteration(ctx context.Context, uow repository.UnitOfWork, userID string, id uuid.UUID) (*models.Iteration, error) {
	iteration, err := uow.Iterations().GetByID(id)
	if err != nil {
		return nil, storageError("get iteration", err, apperrors.ErrIterationNotFound)
	}
	if err := requireAccess(ctx, s.access, userID, iteration.ProjectID); err != nil {
		return nil, err
	}
	return iteration, nil
}
