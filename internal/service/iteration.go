package service

import (
	"context"
	"strings"
	"time"

	"capacity-planner-backend/internal/calendar"
	"capacity-planner-backend/internal/database/models"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"
	"capacity-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IterationService handles business logic for iterations
type IterationService struct {
	store     repository.StoreInterface
	access    AccessChecker
	recompute *RecomputeCoordinator
	validator *validator.Validate
}

// NewIterationService creates a new iteration service
func NewIterationService(store repository.StoreInterface, access AccessChecker, recompute *RecomputeCoordinator, validator *validator.Validate) *IterationService {
	return &IterationService{
		store:     store,
		access:    access,
		recompute: recompute,
		validator: validator,
	}
}

// CreateIterationRequest represents the data needed to create an iteration
type CreateIterationRequest struct {
	Name                 string `json:"name" validate:"max=200" example:"Sprint 14"`
	StartDate            string `json:"start_date" example:"2024-01-01"`
	EndDate              string `json:"end_date" example:"2024-01-12"`
	CommittedStoryPoints int    `json:"committed_story_points" validate:"min=0" example:"34"`
}

// UpdateIterationRequest represents a partial iteration update
type UpdateIterationRequest struct {
	Name                 *string `json:"name" validate:"omitempty,max=200"`
	StartDate            *string `json:"start_date" example:"2024-01-01"`
	EndDate              *string `json:"end_date" example:"2024-01-19"`
	CommittedStoryPoints *int    `json:"committed_story_points" validate:"omitempty,min=0"`
}

// IterationResponse represents the response data for an iteration
type IterationResponse struct {
	ID                   uuid.UUID `json:"id"`
	ProjectID            uuid.UUID `json:"project_id"`
	Name                 string    `json:"name"`
	StartDate            string    `json:"start_date"`
	EndDate              string    `json:"end_date"`
	WorkingDays          int       `json:"working_days"`
	WeekCount            int       `json:"week_count"`
	CommittedStoryPoints int       `json:"committed_story_points"`
	CreatedBy            string    `json:"created_by"`
	UpdatedBy            string    `json:"updated_by"`
	CreatedAt            string    `json:"created_at"`
	UpdatedAt            string    `json:"updated_at"`
}

// IterationListResponse represents a paginated list of iterations
type IterationListResponse struct {
	Iterations []IterationResponse `json:"iterations"`
	Total      int64               `json:"total"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// CreateIteration computes the working days of the new range and persists the iteration
func (s *IterationService) CreateIteration(ctx context.Context, userID string, projectID uuid.UUID, req *CreateIterationRequest) (*IterationResponse, error) {
	if err := requireAccess(ctx, s.access, userID, projectID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingFields, "", "name, start_date and end_date are required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	workingDays, err := calendar.WorkingDays(start, end)
	if err != nil {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidRange, "end_date", err.Error())
	}

	iteration := &models.Iteration{
		BaseModel:            models.BaseModel{CreatedBy: userID, UpdatedBy: userID},
		ProjectID:            projectID,
		Name:                 strings.TrimSpace(req.Name),
		StartDate:            datatypes.Date(start),
		EndDate:              datatypes.Date(end),
		WorkingDays:          workingDays,
		CommittedStoryPoints: req.CommittedStoryPoints,
	}

	if err := s.store.Reader(ctx).Iterations().Create(iteration); err != nil {
		return nil, storageError("create iteration", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"iteration_id": iteration.ID,
		"project_id":   projectID,
		"working_days": workingDays,
	}).Info("Created iteration")

	return toIterationResponse(iteration), nil
}

// GetIteration retrieves an iteration by ID
func (s *IterationService) GetIteration(ctx context.Context, userID string, id uuid.UUID) (*IterationResponse, error) {
	iteration, err := s.authorizedIteration(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toIterationResponse(iteration), nil
}

// ListIterations retrieves the iterations of a project ordered by start date
func (s *IterationService) ListIterations(ctx context.Context, userID string, projectID uuid.UUID, limit, offset int) (*IterationListResponse, error) {
	if err := requireAccess(ctx, s.access, userID, projectID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	iterations, total, err := s.store.Reader(ctx).Iterations().GetByProjectID(projectID, limit, offset)
	if err != nil {
		return nil, storageError("list iterations", err, nil)
	}

	responses := make([]IterationResponse, 0, len(iterations))
	for i := range iterations {
		responses = append(responses, *toIterationResponse(&iterations[i]))
	}

	return &IterationListResponse{
		Iterations: responses,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateIteration applies a partial update. When either date moves, working days
// and every member's capacity are recomputed in the same transaction.
func (s *IterationService) UpdateIteration(ctx context.Context, userID string, id uuid.UUID, req *UpdateIterationRequest) (*IterationResponse, error) {
	if _, err := s.authorizedIteration(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingFields, "name", "name cannot be empty")
	}

	var newStart, newEnd *time.Time
	if req.StartDate != nil {
		t, err := parseDateField("start_date", *req.StartDate)
		if err != nil {
			return nil, err
		}
		newStart = &t
	}
	if req.EndDate != nil {
		t, err := parseDateField("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		newEnd = &t
	}

	var updated *models.Iteration
	err := s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		iteration, err := uow.Iterations().GetByIDForUpdate(id)
		if err != nil {
			return storageError("lock iteration", err, apperrors.ErrIterationNotFound)
		}

		if req.Name != nil {
			iteration.Name = strings.TrimSpace(*req.Name)
		}
		if req.CommittedStoryPoints != nil {
			iteration.CommittedStoryPoints = *req.CommittedStoryPoints
		}
		iteration.UpdatedBy = userID

		datesChanged := false
		if newStart != nil && !newStart.Equal(calendar.Normalize(iteration.Start())) {
			iteration.StartDate = datatypes.Date(*newStart)
			datesChanged = true
		}
		if newEnd != nil && !newEnd.Equal(calendar.Normalize(iteration.End())) {
			iteration.EndDate = datatypes.Date(*newEnd)
			datesChanged = true
		}

		if datesChanged {
			if iteration.Start().After(iteration.End()) {
				return apperrors.NewValidationError(apperrors.CodeInvalidRange, "end_date", calendar.ErrInvalidRange.Error())
			}
			if _, err := s.recompute.IterationDatesChanged(ctx, uow, iteration); err != nil {
				return err
			}
		} else if err := uow.Iterations().Update(iteration); err != nil {
			return storageError("update iteration", err, apperrors.ErrIterationNotFound)
		}

		updated = iteration
		return nil
	})
	if err != nil {
		return nil, transactionError("update iteration", err)
	}

	return toIterationResponse(updated), nil
}

// DeleteIteration removes the iteration and every member, weekly and daily row it owns
func (s *IterationService) DeleteIteration(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := s.authorizedIteration(ctx, userID, id); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Iterations().GetByIDForUpdate(id); err != nil {
			return storageError("lock iteration", err, apperrors.ErrIterationNotFound)
		}
		_, err := s.recompute.IterationDeleted(ctx, uow, id)
		return err
	})
	return transactionError("delete iteration", err)
}

// authorizedIteration loads an iteration and checks the caller's access to its project
func (s *IterationService) authorizedIteration(ctx context.Context, userID string, id uuid.UUID) (*models.Iteration, error) {
	iteration, err := s.store.Reader(ctx).Iterations().GetByID(id)
	if err != nil {
		return nil, storageError("get iteration", err, apperrors.ErrIterationNotFound)
	}
	if err := requireAccess(ctx, s.access, userID, iteration.ProjectID); err != nil {
		return nil, err
	}
	return iteration, nil
}

func parseDateField(field, value string) (time.Time, error) {
	t, err := calendar.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(apperrors.CodeInvalidDate, field, "date must be formatted as YYYY-MM-DD")
	}
	return t, nil
}

func parseRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := parseDateField("start_date", startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateField("end_date", endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError(apperrors.CodeInvalidRange, "end_date", calendar.ErrInvalidRange.Error())
	}
	return start, end, nil
}

func toIterationResponse(iteration *models.Iteration) *IterationResponse {
	weekCount, _ := calendar.WeekCount(iteration.Start(), iteration.End())
	return &IterationResponse{
		ID:                   iteration.ID,
		ProjectID:            iteration.ProjectID,
		Name:                 iteration.Name,
		StartDate:            iteration.Start().Format(calendar.DateLayout),
		EndDate:              iteration.End().Format(calendar.DateLayout),
		WorkingDays:          iteration.WorkingDays,
		WeekCount:            weekCount,
		CommittedStoryPoints: iteration.CommittedStoryPoints,
		CreatedBy:            iteration.CreatedBy,
		UpdatedBy:            iteration.UpdatedBy,
		CreatedAt:            iteration.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            iteration.UpdatedAt.Format(time.RFC3339),
	}
}
