package repository

import (
	"capacity-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectAccessRepository reads project collaborator grants
type ProjectAccessRepository struct {
	db *gorm.DB
}

// NewProjectAccessRepository creates a new project access repository
func NewProjectAccessRepository(db *gorm.DB) *ProjectAccessRepository {
	return &ProjectAccessRepository{db: db}
}

// HasAccess reports whether userID collaborates on projectID
func (r *ProjectAccessRepository) HasAccess(projectID uuid.UUID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectCollaborator{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// Grant records a collaborator, keeping the existing row when the grant is already present
func (r *ProjectAccessRepository) Grant(collaborator *models.ProjectCollaborator) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(collaborator).Error
}
