package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"capacity-planner-backend/internal/capacity"
	"capacity-planner-backend/internal/database/models"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"
	"capacity-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemberService handles business logic for iteration members
type MemberService struct {
	store     repository.StoreInterface
	access    AccessChecker
	recompute *RecomputeCoordinator
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(store repository.StoreInterface, access AccessChecker, recompute *RecomputeCoordinator, validator *validator.Validate) *MemberService {
	return &MemberService{
		store:     store,
		access:    access,
		recompute: recompute,
		validator: validator,
	}
}

// AddMemberRequest represents the data needed to add a member to an iteration
type AddMemberRequest struct {
	Name                string          `json:"name" validate:"max=200" example:"Dana"`
	Role                string          `json:"role" validate:"max=100" example:"developer"`
	WorkMode            string          `json:"work_mode" example:"office"`        // Optional: defaults to "office". Valid values: office, remote, hybrid
	Leaves              *float64        `json:"leaves" example:"2"`                // Optional: defaults to 0, must be a whole number
	AvailabilityPercent *float64        `json:"availability_percent" example:"80"` // Optional: defaults to 100
	Metadata            json.RawMessage `json:"metadata" swaggertype:"object"`
}

// UpdateMemberRequest represents a partial member update
type UpdateMemberRequest struct {
	Name                *string         `json:"name" validate:"omitempty,max=200"`
	Role                *string         `json:"role" validate:"omitempty,max=100"`
	WorkMode            *string         `json:"work_mode"`
	Leaves              *float64        `json:"leaves"`
	AvailabilityPercent *float64        `json:"availability_percent"`
	Metadata            json.RawMessage `json:"metadata" swaggertype:"object"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID                    uuid.UUID       `json:"id"`
	IterationID           uuid.UUID       `json:"iteration_id"`
	Name                  string          `json:"name"`
	Role                  string          `json:"role"`
	WorkMode              string          `json:"work_mode"`
	Leaves                int             `json:"leaves"`
	AvailabilityPercent   float64         `json:"availability_percent"`
	EffectiveCapacityDays float64         `json:"effective_capacity_days"`
	Metadata              json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt             string          `json:"created_at"`
	UpdatedAt             string          `json:"updated_at"`
}

// AddMember creates a member and computes its effective capacity against the
// iteration's working days as locked in the same transaction
func (s *MemberService) AddMember(ctx context.Context, userID string, iterationID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error) {
	if _, err := s.authorizedIteration(ctx, userID, iterationID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingFields, "name", "name is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	workMode := models.WorkModeOffice
	if req.WorkMode != "" {
		workMode = models.WorkMode(strings.ToLower(req.WorkMode))
		if !workMode.IsValid() {
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidWorkMode, "work_mode", "work mode must be office, remote or hybrid")
		}
	}

	leaves := 0
	if req.Leaves != nil {
		l, err := validateLeaves(*req.Leaves)
		if err != nil {
			return nil, err
		}
		leaves = l
	}

	availability := 100.0
	if req.AvailabilityPercent != nil {
		a, err := validateAvailability(*req.AvailabilityPercent)
		if err != nil {
			return nil, err
		}
		availability = a
	}

	member := &models.Member{
		BaseModel:           models.BaseModel{CreatedBy: userID, UpdatedBy: userID},
		IterationID:         iterationID,
		Name:                strings.TrimSpace(req.Name),
		Role:                req.Role,
		WorkMode:            workMode,
		Leaves:              leaves,
		AvailabilityPercent: availability,
		Metadata:            datatypes.JSON(req.Metadata),
	}

	err := s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		iteration, err := uow.Iterations().GetByIDForUpdate(iterationID)
		if err != nil {
			return storageError("lock iteration", err, apperrors.ErrIterationNotFound)
		}
		s.recompute.MemberAdded(ctx, iteration, member)
		return storageError("create member", uow.Members().Create(member), nil)
	})
	if err != nil {
		return nil, transactionError("add member", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"iteration_id":            iterationID,
		"member_id":               member.ID,
		"effective_capacity_days": member.EffectiveCapacityDays,
	}).Info("Added member")

	return toMemberResponse(member), nil
}

// GetMember retrieves a member by ID
func (s *MemberService) GetMember(ctx context.Context, userID string, id uuid.UUID) (*MemberResponse, error) {
	member, _, err := s.authorizedMember(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// ListMembers retrieves the members of an iteration ordered by name
func (s *MemberService) ListMembers(ctx context.Context, userID string, iterationID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.authorizedIteration(ctx, userID, iterationID); err != nil {
		return nil, err
	}

	members, err := s.store.Reader(ctx).Members().GetByIterationID(iterationID)
	if err != nil {
		return nil, storageError("list members", err, nil)
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toMemberResponse(&members[i]))
	}
	return responses, nil
}

// UpdateMember applies a partial update. Only a change to leaves or availability
// recomputes the member's effective capacity.
func (s *MemberService) UpdateMember(ctx context.Context, userID string, id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	existing, _, err := s.authorizedMember(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingFields, "name", "name cannot be empty")
	}

	var workMode *models.WorkMode
	if req.WorkMode != nil {
		wm := models.WorkMode(strings.ToLower(*req.WorkMode))
		if !wm.IsValid() {
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidWorkMode, "work_mode", "work mode must be office, remote or hybrid")
		}
		workMode = &wm
	}

	var leaves *int
	if req.Leaves != nil {
		l, err := validateLeaves(*req.Leaves)
		if err != nil {
			return nil, err
		}
		leaves = &l
	}

	var availability *float64
	if req.AvailabilityPercent != nil {
		a, err := validateAvailability(*req.AvailabilityPercent)
		if err != nil {
			return nil, err
		}
		availability = &a
	}

	var updated *models.Member
	err = s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		iteration, err := uow.Iterations().GetByIDForUpdate(existing.IterationID)
		if err != nil {
			return storageError("lock iteration", err, apperrors.ErrIterationNotFound)
		}
		member, err := uow.Members().GetByID(id)
		if err != nil {
			return storageError("get member", err, apperrors.ErrMemberNotFound)
		}

		if req.Name != nil {
			member.Name = strings.TrimSpace(*req.Name)
		}
		if req.Role != nil {
			member.Role = *req.Role
		}
		if workMode != nil {
			member.WorkMode = *workMode
		}
		if req.Metadata != nil {
			member.Metadata = datatypes.JSON(req.Metadata)
		}

		inputsChanged := false
		if leaves != nil && *leaves != member.Leaves {
			member.Leaves = *leaves
			inputsChanged = true
		}
		if availability != nil && *availability != member.AvailabilityPercent {
			member.AvailabilityPercent = *availability
			inputsChanged = true
		}
		if inputsChanged {
			s.recompute.MemberInputsChanged(ctx, iteration, member)
		}

		member.UpdatedBy = userID
		if err := uow.Members().Update(member); err != nil {
			return storageError("update member", err, apperrors.ErrMemberNotFound)
		}
		updated = member
		return nil
	})
	if err != nil {
		return nil, transactionError("update member", err)
	}

	return toMemberResponse(updated), nil
}

// DeleteMember removes a member together with its weekly and daily rows
func (s *MemberService) DeleteMember(ctx context.Context, userID string, id uuid.UUID) error {
	existing, _, err := s.authorizedMember(ctx, userID, id)
	if err != nil {
		return err
	}

	err = s.store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Iterations().GetByIDForUpdate(existing.IterationID); err != nil {
			return storageError("lock iteration", err, apperrors.ErrIterationNotFound)
		}
		_, err := s.recompute.MemberDeleted(ctx, uow, id)
		return err
	})
	return transactionError("delete member", err)
}

func (s *MemberService) authorizedIteration(ctx context.Context, userID string, id uuid.UUID) (*models.Iteration, error) {
	iteration, err := s.store.Reader(ctx).Iterations().GetByID(id)
	if err != nil {
		return nil, storageError("get iteration", err, apperrors.ErrIterationNotFound)
	}
	if err := requireAccess(ctx, s.access, userID, iteration.ProjectID); err != nil {
		return nil, err
	}
	return iteration, nil
}

// authorizedMember resolves a member and its iteration, then checks project access
func (s *MemberService) authorizedMember(ctx context.Context, userID string, id uuid.UUID) (*models.Member, *models.Iteration, error) {
	return loadAuthorizedMember(ctx, s.store.Reader(ctx), s.access, userID, id)
}

func loadAuthorizedMember(ctx context.Context, uow repository.UnitOfWork, access AccessChecker, userID string, id uuid.UUID) (*models.Member, *models.Iteration, error) {
	member, err := uow.Members().GetByID(id)
	if err != nil {
		return nil, nil, storageError("get member", err, apperrors.ErrMemberNotFound)
	}
	iteration, err := uow.Iterations().GetByID(member.IterationID)
	if err != nil {
		return nil, nil, storageError("get iteration", err, apperrors.ErrIterationNotFound)
	}
	if err := requireAccess(ctx, access, userID, iteration.ProjectID); err != nil {
		return nil, nil, err
	}
	return member, iteration, nil
}

func validateLeaves(leaves float64) (int, error) {
	if leaves < 0 || leaves > capacity.MaxLeaves || !capacity.IsWhole(leaves) {
		return 0, apperrors.NewValidationError(apperrors.CodeInvalidLeaves, "leaves", "leaves must be a whole number of days, zero or more")
	}
	return int(leaves), nil
}

// validateAvailability returns percent rounded to its stored precision so the
// capacity formula sees the same value a later read will
func validateAvailability(percent float64) (float64, error) {
	if !capacity.ValidPercent(percent) {
		return 0, apperrors.NewValidationError(apperrors.CodeInvalidAvailability, "availability_percent", "availability must be between 0 and 100")
	}
	return capacity.RoundPercent(percent), nil
}

func toMemberResponse(member *models.Member) *MemberResponse {
	resp := &MemberResponse{
		ID:                    member.ID,
		IterationID:           member.IterationID,
		Name:                  member.Name,
		Role:                  member.Role,
		WorkMode:              string(member.WorkMode),
		Leaves:                member.Leaves,
		AvailabilityPercent:   member.AvailabilityPercent,
		EffectiveCapacityDays: member.EffectiveCapacityDays,
		CreatedAt:             member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             member.UpdatedAt.Format(time.RFC3339),
	}
	if len(member.Metadata) > 0 {
		resp.Metadata = json.RawMessage(member.Metadata)
	}
	return resp
}
