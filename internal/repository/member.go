package repository

import (
	"capacity-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for iteration members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByIterationID retrieves all members of an iteration ordered by name
func (r *MemberRepository) GetByIterationID(iterationID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Where("iteration_id = ?", iterationID).Order("name ASC").Order("id ASC").Find(&members).Error
	return members, err
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// UpdateEffectiveCapacity writes only the derived capacity column
func (r *MemberRepository) UpdateEffectiveCapacity(id uuid.UUID, days float64) error {
	return r.db.Model(&models.Member{}).Where("id = ?", id).Update("effective_capacity_days", days).Error
}

// Delete deletes a member
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}

// DeleteByIterationID deletes every member of an iteration
func (r *MemberRepository) DeleteByIterationID(iterationID uuid.UUID) (int64, error) {
	result := r.db.Where("iteration_id = ?", iterationID).Delete(&models.Member{})
	return result.RowsAffected, result.Error
}
