package service

import (
	"context"
	"fmt"
	"time"

	"capacity-planner-backend/internal/calendar"
	"capacity-planner-backend/internal/capacity"
	"capacity-planner-backend/internal/database/models"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"
	"capacity-planner-backend/internal/repository"

	"github.com/google/uuid"
)

// WeeklyAvailabilityService handles the per-member, per-week availability layer
type WeeklyAvailabilityService struct {
	store       repository.StoreInterface
	access      AccessChecker
	daysPerWeek int
}

// NewWeeklyAvailabilityService creates a new weekly availability service.
// daysPerWeek is used as daysTotal when an entry omits it.
func NewWeeklyAvailabilityService(store repository.StoreInterface, access AccessChecker, daysPerWeek int) *WeeklyAvailabilityService {
	if daysPerWeek <= 0 {
		daysPerWeek = capacity.DefaultDaysPerWeek
	}
	return &WeeklyAvailabilityService{
		store:       store,
		access:      access,
		daysPerWeek: daysPerWeek,
	}
}

// WeeklyAvailabilityEntry is one (member, week) availability value to upsert
type WeeklyAvailabilityEntry struct {
	MemberID            uuid.UUID `json:"member_id"`
	WeekIndex           int       `json:"week_index" example:"1"`
	AvailabilityPercent *float64  `json:"availability_percent" example:"80"`
	DaysPresent         *int      `json:"days_present,omitempty"` // Optional: derived from availability when omitted
	DaysTotal           *int      `json:"days_total,omitempty"`   // Optional: defaults to the configured days per week
}

// SaveWeeklyAvailabilityRequest is a batch of weekly entries applied atomically
type SaveWeeklyAvailabilityRequest struct {
	Entries []WeeklyAvailabilityEntry `json:"entries"`
}

// SaveWeeklyAvailabilityResponse reports how many entries were upserted
type SaveWeeklyAvailabilityResponse struct {
	UpdatedCount int `json:"updated_count"`
}

// WeeklyAvailabilityResponse represents one stored weekly row
type WeeklyAvailabilityResponse struct {
	ID                  uuid.UUID `json:"id"`
	IterationID         uuid.UUID `json:"iteration_id"`
	WeekIndex           int       `json:"week_index"`
	WeekStart           string    `json:"week_start,omitempty"`
	WeekEnd             string    `json:"week_end,omitempty"`
	MemberID            uuid.UUID `json:"member_id"`
	AvailabilityPercent float64   `json:"availability_percent"`
	DaysPresent         int       `json:"days_present"`
	DaysTotal           int       `json:"days_total"`
	UpdatedAt           string    `json:"updated_at"`
}

// SaveWeeklyAvailability upserts every entry keyed by (iteration, week, member).
// The batch commits as a whole or not at all; later entries for the same key win.
func (s *WeeklyAvailabilityService) SaveWeeklyAvailability(ctx context.Context, userID string, iterationID uuid.UUID, req *SaveWeeklyAvailabilityRequest) (*SaveWeeklyAvailabilityResponse, error) {
	if req == nil || len(req.Entries) == 0 {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidPayload, "entries", "at least one entry is required")
	}

	iteration, err := s.store.Reader(ctx).Iterations().GetByID(iterationID)
	if err != nil {
		return nil, storageError("get iteration", err, apperrors.ErrIterationNotFound)
	}
	if err := requireAccess(ctx, s.access, userID, iteration.ProjectID); err != nil {
		return nil, err
	}

	rows := make([]*models.WeeklyAvailability, 0, len(req.Entries))
	for i := range req.Entries {
		row, err := s.buildRow(iterationID, i, &req.Entries[i], userID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	err = s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		locked, err := uow.Iterations().GetByIDForUpdate(iterationID)
		if err != nil {
			return storageError("lock iteration", err, apperrors.ErrIterationNotFound)
		}
		weekCount, err := calendar.WeekCount(locked.Start(), locked.End())
		if err != nil {
			return apperrors.NewInternalError("count iteration weeks", err)
		}

		members, err := uow.Members().GetByIterationID(iterationID)
		if err != nil {
			return storageError("list members", err, nil)
		}
		owned := make(map[uuid.UUID]struct{}, len(members))
		for _, m := range members {
			owned[m.ID] = struct{}{}
		}

		for i, row := range rows {
			if row.WeekIndex > weekCount {
				return apperrors.NewValidationError(apperrors.CodeInvalidWeek, entryField(i, "week_index"),
					fmt.Sprintf("week index must be between 1 and %d", weekCount))
			}
			if _, ok := owned[row.MemberID]; !ok {
				return apperrors.ErrMemberNotFound
			}
			if err := uow.WeeklyAvailability().Upsert(row); err != nil {
				return storageError("upsert weekly availability", err, nil)
			}
		}
		return nil
	})
	if err != nil {
		return nil, transactionError("save weekly availability", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"iteration_id": iterationID,
		"entries":      len(rows),
	}).Info("Saved weekly availability")

	return &SaveWeeklyAvailabilityResponse{UpdatedCount: len(rows)}, nil
}

// GetWeeklyAvailability lists the weekly rows of an iteration by week index ascending
func (s *WeeklyAvailabilityService) GetWeeklyAvailability(ctx context.Context, userID string, iterationID uuid.UUID) ([]WeeklyAvailabilityResponse, error) {
	uow := s.store.Reader(ctx)
	iteration, err := uow.Iterations().GetByID(iterationID)
	if err != nil {
		return nil, storageError("get iteration", err, apperrors.ErrIterationNotFound)
	}
	if err := requireAccess(ctx, s.access, userID, iteration.ProjectID); err != nil {
		return nil, err
	}

	entries, err := uow.WeeklyAvailability().GetByIterationID(iterationID)
	if err != nil {
		return nil, storageError("list weekly availability", err, nil)
	}

	weeks, _ := calendar.Weeks(iteration.Start(), iteration.End())
	responses := make([]WeeklyAvailabilityResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toWeeklyAvailabilityResponse(&entries[i], weeks))
	}
	return responses, nil
}

func (s *WeeklyAvailabilityService) buildRow(iterationID uuid.UUID, i int, entry *WeeklyAvailabilityEntry, userID string) (*models.WeeklyAvailability, error) {
	if entry.MemberID == uuid.Nil {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingFields, entryField(i, "member_id"), "member id is required")
	}
	if entry.AvailabilityPercent == nil {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingFields, entryField(i, "availability_percent"), "availability is required")
	}
	if !capacity.ValidPercent(*entry.AvailabilityPercent) {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidAvailability, entryField(i, "availability_percent"), "availability must be between 0 and 100")
	}
	percent := capacity.RoundPercent(*entry.AvailabilityPercent)
	if entry.WeekIndex < 1 {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidWeek, entryField(i, "week_index"), "week index starts at 1")
	}

	daysTotal := s.daysPerWeek
	if entry.DaysTotal != nil {
		daysTotal = *entry.DaysTotal
	}
	if daysTotal < 1 || daysTotal > 7 {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidPayload, entryField(i, "days_total"), "days total must be between 1 and 7")
	}

	daysPresent := capacity.DaysPresent(percent, daysTotal)
	if entry.DaysPresent != nil {
		daysPresent = *entry.DaysPresent
	}
	if daysPresent < 0 || daysPresent > daysTotal {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidPayload, entryField(i, "days_present"), "days present must be between 0 and days total")
	}

	return &models.WeeklyAvailability{
		BaseModel:           models.BaseModel{CreatedBy: userID, UpdatedBy: userID},
		IterationID:         iterationID,
		WeekIndex:           entry.WeekIndex,
		MemberID:            entry.MemberID,
		AvailabilityPercent: percent,
		DaysPresent:         daysPresent,
		DaysTotal:           daysTotal,
	}, nil
}

func entryField(i int, name string) string {
	return fmt.Sprintf("entries[%d].%s", i, name)
}

func toWeeklyAvailabilityResponse(entry *models.WeeklyAvailability, weeks []calendar.Week) WeeklyAvailabilityResponse {
	resp := WeeklyAvailabilityResponse{
		ID:                  entry.ID,
		IterationID:         entry.IterationID,
		WeekIndex:           entry.WeekIndex,
		MemberID:            entry.MemberID,
		AvailabilityPercent: entry.AvailabilityPercent,
		DaysPresent:         entry.DaysPresent,
		DaysTotal:           entry.DaysTotal,
		UpdatedAt:           entry.UpdatedAt.Format(time.RFC3339),
	}
	if entry.WeekIndex >= 1 && entry.WeekIndex <= len(weeks) {
		week := weeks[entry.WeekIndex-1]
		resp.WeekStart = week.Start.Format(calendar.DateLayout)
		resp.WeekEnd = week.End.Format(calendar.DateLayout)
	}
	return resp
}
