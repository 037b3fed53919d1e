package repository

import (
	"capacity-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IterationRepository handles database operations for iterations
type IterationRepository struct {
	db *gorm.DB
}

// NewIterationRepository creates a new iteration repository
func NewIterationRepository(db *gorm.DB) *IterationRepository {
	return &IterationRepository{db: db}
}

// Create creates a new iteration
func (r *IterationRepository) Create(iteration *models.Iteration) error {
	return r.db.Create(iteration).Error
}

// GetByID retrieves an iteration by ID
func (r *IterationRepository) GetByID(id uuid.UUID) (*models.Iteration, error) {
	var iteration models.Iteration
	err := r.db.First(&iteration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &iteration, nil
}

// GetByIDForUpdate retrieves an iteration and row-locks it until the surrounding
// transaction ends, serializing writes against the same iteration
func (r *IterationRepository) GetByIDForUpdate(id uuid.UUID) (*models.Iteration, error) {
	var iteration models.Iteration
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&iteration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &iteration, nil
}

// GetByProjectID retrieves all iterations for a project with pagination, oldest first
func (r *IterationRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Iteration, int64, error) {
	var iterations []models.Iteration
	var total int64

	if err := r.db.Model(&models.Iteration{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ?", projectID).
		Order("start_date ASC").Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&iterations).Error
	if err != nil {
		return nil, 0, err
	}

	return iterations, total, nil
}

// Update updates an iteration
func (r *IterationRepository) Update(iteration *models.Iteration) error {
	return r.db.Save(iteration).Error
}

// Delete deletes an iteration row only; dependents are removed by the caller
func (r *IterationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Iteration{}, "id = ?", id).Error
}
