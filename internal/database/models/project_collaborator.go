package models

import (
	"github.com/google/uuid"
)

// CollaboratorRole is the role of a user inside a project
type CollaboratorRole string

const (
	CollaboratorRoleOwner  CollaboratorRole = "owner"
	CollaboratorRoleEditor CollaboratorRole = "editor"
	CollaboratorRoleViewer CollaboratorRole = "viewer"
)

// IsValid checks if the CollaboratorRole is valid
func (r CollaboratorRole) IsValid() bool {
	switch r {
	case CollaboratorRoleOwner, CollaboratorRoleEditor, CollaboratorRoleViewer:
		return true
	}
	return false
}

// ProjectCollaborator grants a user access to a project. Rows are owned by the
// surrounding application; this service only reads them.
type ProjectCollaborator struct {
	BaseModel
	ProjectID uuid.UUID        `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_collaborators_key,priority:1"`
	UserID    string           `json:"user_id" gorm:"size:100;not null;uniqueIndex:idx_project_collaborators_key,priority:2"`
	Role      CollaboratorRole `json:"role" gorm:"type:varchar(20);not null;default:'editor'"`
}

// TableName returns the table name for ProjectCollaborator
func (ProjectCollaborator) TableName() string {
	return "project_collaborators"
}
