package service

import (
	"context"

	"capacity-planner-backend/internal/calendar"
	"capacity-planner-backend/internal/capacity"
	"capacity-planner-backend/internal/database/models"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"
	"capacity-planner-backend/internal/repository"

	"github.com/google/uuid"
)

// Trigger names an edit that the coordinator propagates
type Trigger string

const (
	TriggerIterationDatesChanged Trigger = "iteration_dates_changed"
	TriggerMemberInputsChanged   Trigger = "member_inputs_changed"
	TriggerMemberAdded           Trigger = "member_added"
	TriggerMemberDeleted         Trigger = "member_deleted"
	TriggerIterationDeleted      Trigger = "iteration_deleted"
)

// CascadeResult counts the rows removed by a cascade
type CascadeResult struct {
	Members            int64 `json:"members"`
	WeeklyAvailability int64 `json:"weekly_availability"`
	DailyAttendance    int64 `json:"daily_attendance"`
}

// RecomputeCoordinator applies the propagation rules between iterations and
// members. Every method runs against the caller's unit of work so derived
// values commit or roll back together with the triggering write.
//
//	iteration dates changed  -> iteration working days + every member's capacity
//	member leaves/percent    -> that member's capacity
//	member added             -> that member's capacity, once
//	member deleted           -> member's weekly and daily rows removed
//	iteration deleted        -> members, weekly and daily rows removed
type RecomputeCoordinator struct{}

// NewRecomputeCoordinator creates a new recompute coordinator
func NewRecomputeCoordinator() *RecomputeCoordinator {
	return &RecomputeCoordinator{}
}

// IterationDatesChanged recomputes the iteration's working days from its current
// dates, persists the iteration and recomputes every member it owns
func (c *RecomputeCoordinator) IterationDatesChanged(ctx context.Context, uow repository.UnitOfWork, iteration *models.Iteration) (int, error) {
	workingDays, err := calendar.WorkingDays(iteration.Start(), iteration.End())
	if err != nil {
		return 0, apperrors.NewValidationError(apperrors.CodeInvalidRange, "end_date", err.Error())
	}

	previous := iteration.WorkingDays
	iteration.WorkingDays = workingDays
	if err := uow.Iterations().Update(iteration); err != nil {
		return 0, storageError("update iteration", err, apperrors.ErrIterationNotFound)
	}

	members, err := uow.Members().GetByIterationID(iteration.ID)
	if err != nil {
		return 0, storageError("list members", err, nil)
	}

	recomputed := 0
	for i := range members {
		member := &members[i]
		days := capacity.EffectiveDays(workingDays, member.Leaves, member.AvailabilityPercent)
		if days == member.EffectiveCapacityDays {
			continue
		}
		if err := uow.Members().UpdateEffectiveCapacity(member.ID, days); err != nil {
			return 0, storageError("update member capacity", err, apperrors.ErrMemberNotFound)
		}
		recomputed++
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"trigger":             TriggerIterationDatesChanged,
		"iteration_id":        iteration.ID,
		"working_days_before": previous,
		"working_days_after":  workingDays,
		"members":             len(members),
		"members_recomputed":  recomputed,
	}).Info("Recomputed iteration capacity")

	return recomputed, nil
}

// MemberAdded derives the capacity of a member that is about to be created
func (c *RecomputeCoordinator) MemberAdded(ctx context.Context, iteration *models.Iteration, member *models.Member) {
	member.EffectiveCapacityDays = capacity.EffectiveDays(iteration.WorkingDays, member.Leaves, member.AvailabilityPercent)
	c.logMember(ctx, TriggerMemberAdded, iteration, member)
}

// MemberInputsChanged re-derives a member's capacity after leaves or availability changed
func (c *RecomputeCoordinator) MemberInputsChanged(ctx context.Context, iteration *models.Iteration, member *models.Member) {
	member.EffectiveCapacityDays = capacity.EffectiveDays(iteration.WorkingDays, member.Leaves, member.AvailabilityPercent)
	c.logMember(ctx, TriggerMemberInputsChanged, iteration, member)
}

// MemberDeleted removes a member together with its weekly and daily rows
func (c *RecomputeCoordinator) MemberDeleted(ctx context.Context, uow repository.UnitOfWork, memberID uuid.UUID) (CascadeResult, error) {
	result, err := c.removeMembers(uow, []uuid.UUID{memberID})
	if err != nil {
		return result, err
	}
	if err := uow.Members().Delete(memberID); err != nil {
		return result, storageError("delete member", err, apperrors.ErrMemberNotFound)
	}
	result.Members = 1

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"trigger":            TriggerMemberDeleted,
		"member_id":          memberID,
		"weekly_removed":     result.WeeklyAvailability,
		"attendance_removed": result.DailyAttendance,
	}).Info("Deleted member")

	return result, nil
}

// IterationDeleted removes an iteration and everything it owns. Children go
// first so no row is ever left pointing at a deleted parent.
func (c *RecomputeCoordinator) IterationDeleted(ctx context.Context, uow repository.UnitOfWork, iterationID uuid.UUID) (CascadeResult, error) {
	members, err := uow.Members().GetByIterationID(iterationID)
	if err != nil {
		return CascadeResult{}, storageError("list members", err, nil)
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	result, err := c.removeMembers(uow, memberIDs)
	if err != nil {
		return result, err
	}

	removed, err := uow.Members().DeleteByIterationID(iterationID)
	if err != nil {
		return result, storageError("delete members", err, nil)
	}
	result.Members = removed

	if err := uow.Iterations().Delete(iterationID); err != nil {
		return result, storageError("delete iteration", err, apperrors.ErrIterationNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"trigger":            TriggerIterationDeleted,
		"iteration_id":       iterationID,
		"members_removed":    result.Members,
		"weekly_removed":     result.WeeklyAvailability,
		"attendance_removed": result.DailyAttendance,
	}).Info("Deleted iteration")

	return result, nil
}

func (c *RecomputeCoordinator) removeMembers(uow repository.UnitOfWork, memberIDs []uuid.UUID) (CascadeResult, error) {
	var result CascadeResult

	daily, err := uow.DailyAttendance().DeleteByMemberIDs(memberIDs)
	if err != nil {
		return result, storageError("delete daily attendance", err, nil)
	}
	result.DailyAttendance = daily

	weekly, err := uow.WeeklyAvailability().DeleteByMemberIDs(memberIDs)
	if err != nil {
		return result, storageError("delete weekly availability", err, nil)
	}
	result.WeeklyAvailability = weekly

	return result, nil
}

func (c *RecomputeCoordinator) logMember(ctx context.Context, trigger Trigger, iteration *models.Iteration, member *models.Member) {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"trigger":                 trigger,
		"iteration_id":            iteration.ID,
		"member_id":               member.ID,
		"working_days":            iteration.WorkingDays,
		"effective_capacity_days": member.EffectiveCapacityDays,
	}).Debug("Computed member capacity")
}
