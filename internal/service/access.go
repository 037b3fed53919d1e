package service

import (
	"context"

	"capacity-planner-backend/internal/database/models"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"
	"capacity-planner-backend/internal/repository"

	"github.com/google/uuid"
)

// ProjectAccessService answers project access questions from the collaborator table
type ProjectAccessService struct {
	store repository.StoreInterface
}

// NewProjectAccessService creates a new project access service
func NewProjectAccessService(store repository.StoreInterface) *ProjectAccessService {
	return &ProjectAccessService{store: store}
}

// HasProjectAccess reports whether userID collaborates on projectID
func (s *ProjectAccessService) HasProjectAccess(ctx context.Context, userID string, projectID uuid.UUID) (bool, error) {
	ok, err := s.store.Reader(ctx).ProjectAccess().HasAccess(projectID, userID)
	if err != nil {
		return false, apperrors.NewInternalError("check project access", err)
	}
	return ok, nil
}

// GrantAccess records userID as a collaborator of projectID
func (s *ProjectAccessService) GrantAccess(ctx context.Context, projectID uuid.UUID, userID string, role models.CollaboratorRole) error {
	if userID == "" {
		return apperrors.NewValidationError(apperrors.CodeMissingFields, "user_id", "user id is required")
	}
	if !role.IsValid() {
		return apperrors.NewValidationError(apperrors.CodeValidation, "role", "role must be owner, editor or viewer")
	}
	collaborator := &models.ProjectCollaborator{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	}
	return storageError("grant project access", s.store.Reader(ctx).ProjectAccess().Grant(collaborator), nil)
}

// requireAccess fails with AccessDeniedError unless userID may work on projectID
func requireAccess(ctx context.Context, checker AccessChecker, userID string, projectID uuid.UUID) error {
	if userID == "" {
		return apperrors.ErrMissingUser
	}
	ok, err := checker.HasProjectAccess(ctx, userID, projectID)
	if err != nil {
		return err
	}
	if !ok {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"project_id": projectID,
			"user_id":    userID,
		}).Warn("Project access denied")
		return apperrors.ErrAccessDenied
	}
	return nil
}
