package service

import (
	"context"
	"fmt"
	"time"

	"capacity-planner-backend/internal/calendar"
	"capacity-planner-backend/internal/database/models"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"
	"capacity-planner-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DailyAttendanceService handles the present/absent ledger of member-weeks
type DailyAttendanceService struct {
	store  repository.StoreInterface
	access AccessChecker
}

// NewDailyAttendanceService creates a new daily attendance service
func NewDailyAttendanceService(store repository.StoreInterface, access AccessChecker) *DailyAttendanceService {
	return &DailyAttendanceService{
		store:  store,
		access: access,
	}
}

// DailyAttendanceRecord is one day of a member-week as submitted by a client
type DailyAttendanceRecord struct {
	Date      string `json:"date" example:"2024-01-02"`
	DayOfWeek string `json:"day_of_week,omitempty" example:"Tuesday"` // Optional: derived from the date when omitted
	Status    string `json:"status" example:"P"`                      // P (present) or A (absent)
}

// SaveDailyAttendanceRequest replaces the full day set of a member-week.
// An empty list clears the week.
type SaveDailyAttendanceRequest struct {
	Records []DailyAttendanceRecord `json:"records"`
}

// SaveDailyAttendanceResponse reports how many records were stored
type SaveDailyAttendanceResponse struct {
	AvailabilityID string `json:"availability_id"`
	SavedCount     int    `json:"saved_count"`
}

// DailyAttendanceResponse represents one stored attendance day
type DailyAttendanceResponse struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID string    `json:"availability_id"`
	MemberID       uuid.UUID `json:"member_id"`
	WeekID         int       `json:"week_id"`
	Date           string    `json:"date"`
	DayOfWeek      string    `json:"day_of_week"`
	Status         string    `json:"status"`
}

// SaveDailyAttendance deletes the stored days of (member, week) and inserts the
// submitted set in one transaction. Days left out of the set are removed.
func (s *DailyAttendanceService) SaveDailyAttendance(ctx context.Context, userID string, memberID uuid.UUID, weekID int, req *SaveDailyAttendanceRequest) (*SaveDailyAttendanceResponse, error) {
	if req == nil || req.Records == nil {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidPayload, "records", "records are required")
	}

	member, iteration, err := loadAuthorizedMember(ctx, s.store.Reader(ctx), s.access, userID, memberID)
	if err != nil {
		return nil, err
	}

	availabilityID := models.AvailabilityKey(member.ID, weekID)

	week, err := iterationWeek(iteration, weekID)
	if err != nil {
		return nil, err
	}
	records, err := buildAttendance(availabilityID, member.ID, week, req.Records, userID)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		locked, err := uow.Iterations().GetByIDForUpdate(iteration.ID)
		if err != nil {
			return storageError("lock iteration", err, apperrors.ErrIterationNotFound)
		}
		if _, err := uow.Members().GetByID(member.ID); err != nil {
			return storageError("get member", err, apperrors.ErrMemberNotFound)
		}

		// the dates may have moved since the snapshot above
		week, err := iterationWeek(locked, weekID)
		if err != nil {
			return err
		}
		records, err = buildAttendance(availabilityID, member.ID, week, req.Records, userID)
		if err != nil {
			return err
		}

		if _, err := uow.DailyAttendance().DeleteByAvailabilityID(availabilityID); err != nil {
			return storageError("clear daily attendance", err, nil)
		}
		return storageError("insert daily attendance", uow.DailyAttendance().CreateBatch(records), nil)
	})
	if err != nil {
		return nil, transactionError("save daily attendance", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"availability_id": availabilityID,
		"records":         len(records),
	}).Info("Replaced daily attendance")

	return &SaveDailyAttendanceResponse{AvailabilityID: availabilityID, SavedCount: len(records)}, nil
}

// GetDailyAttendance lists the days of a member-week by date ascending
func (s *DailyAttendanceService) GetDailyAttendance(ctx context.Context, userID string, availabilityID string) ([]DailyAttendanceResponse, error) {
	memberID, weekID, err := models.ParseAvailabilityKey(availabilityID)
	if err != nil {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidPayload, "availability_id", err.Error())
	}
	availabilityID = models.AvailabilityKey(memberID, weekID)

	uow := s.store.Reader(ctx)
	if _, _, err := loadAuthorizedMember(ctx, uow, s.access, userID, memberID); err != nil {
		return nil, err
	}

	records, err := uow.DailyAttendance().GetByAvailabilityID(availabilityID)
	if err != nil {
		return nil, storageError("list daily attendance", err, nil)
	}

	responses := make([]DailyAttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toDailyAttendanceResponse(&records[i]))
	}
	return responses, nil
}

// iterationWeek resolves a 1-based week id against the iteration's current dates
func iterationWeek(iteration *models.Iteration, weekID int) (calendar.Week, error) {
	weeks, err := calendar.Weeks(iteration.Start(), iteration.End())
	if err != nil {
		return calendar.Week{}, apperrors.NewInternalError("split iteration weeks", err)
	}
	if weekID < 1 || weekID > len(weeks) {
		return calendar.Week{}, apperrors.NewValidationError(apperrors.CodeInvalidWeek, "week_id",
			fmt.Sprintf("week id must be between 1 and %d", len(weeks)))
	}
	return weeks[weekID-1], nil
}

// buildAttendance validates the submitted day set against its week
func buildAttendance(availabilityID string, memberID uuid.UUID, week calendar.Week, input []DailyAttendanceRecord, userID string) ([]models.DailyAttendance, error) {
	records := make([]models.DailyAttendance, 0, len(input))
	seen := make(map[time.Time]struct{}, len(input))

	for i, rec := range input {
		field := func(name string) string { return fmt.Sprintf("records[%d].%s", i, name) }

		status := models.AttendanceStatus(rec.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidStatus, field("status"), "status must be P or A")
		}

		if rec.Date == "" {
			return nil, apperrors.NewValidationError(apperrors.CodeMissingFields, field("date"), "date is required")
		}
		day, err := calendar.ParseDate(rec.Date)
		if err != nil {
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidDate, field("date"), "date must be formatted as YYYY-MM-DD")
		}
		if !week.Contains(day) {
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidDate, field("date"),
				fmt.Sprintf("date must fall within week %d (%s to %s)", week.Index,
					week.Start.Format(calendar.DateLayout), week.End.Format(calendar.DateLayout)))
		}
		if _, dup := seen[day]; dup {
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidPayload, field("date"), "date appears more than once")
		}
		seen[day] = struct{}{}

		if rec.DayOfWeek != "" {
			weekday, ok := calendar.ParseWeekday(rec.DayOfWeek)
			if !ok || weekday != day.Weekday() {
				return nil, apperrors.NewValidationError(apperrors.CodeInvalidDate, field("day_of_week"),
					fmt.Sprintf("%s is a %s", rec.Date, day.Weekday()))
			}
		}

		records = append(records, models.DailyAttendance{
			BaseModel:      models.BaseModel{CreatedBy: userID, UpdatedBy: userID},
			AvailabilityID: availabilityID,
			MemberID:       memberID,
			WeekID:         week.Index,
			Date:           datatypes.Date(day),
			DayOfWeek:      day.Weekday().String(),
			Status:         status,
		})
	}

	return records, nil
}

func toDailyAttendanceResponse(record *models.DailyAttendance) DailyAttendanceResponse {
	return DailyAttendanceResponse{
		ID:             record.ID,
		AvailabilityID: record.AvailabilityID,
		MemberID:       record.MemberID,
		WeekID:         record.WeekID,
		Date:           record.Day().Format(calendar.DateLayout),
		DayOfWeek:      record.DayOfWeek,
		Status:         string(record.Status),
	}
}
