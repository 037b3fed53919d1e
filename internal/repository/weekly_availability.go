package repository

import (
	"capacity-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeeklyAvailabilityRepository handles database operations for weekly availability rows
type WeeklyAvailabilityRepository struct {
	db *gorm.DB
}

// NewWeeklyAvailabilityRepository creates a new weekly availability repository
func NewWeeklyAvailabilityRepository(db *gorm.DB) *WeeklyAvailabilityRepository {
	return &WeeklyAvailabilityRepository{db: db}
}

// Upsert inserts the entry or, when (iteration_id, week_index, member_id) already
// exists, overwrites its availability columns
func (r *WeeklyAvailabilityRepository) Upsert(entry *models.WeeklyAvailability) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "iteration_id"},
			{Name: "week_index"},
			{Name: "member_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"availability_percent",
			"days_present",
			"days_total",
			"updated_at",
			"updated_by",
		}),
	}).Create(entry).Error
}

// GetByIterationID retrieves the weekly rows of an iteration ordered by week
func (r *WeeklyAvailabilityRepository) GetByIterationID(iterationID uuid.UUID) ([]models.WeeklyAvailability, error) {
	var entries []models.WeeklyAvailability
	err := r.db.Where("iteration_id = ?", iterationID).
		Order("week_index ASC").Order("member_id ASC").
		Find(&entries).Error
	return entries, err
}

// DeleteByMemberIDs deletes every weekly row belonging to the given members
func (r *WeeklyAvailabilityRepository) DeleteByMemberIDs(memberIDs []uuid.UUID) (int64, error) {
	if len(memberIDs) == 0 {
		return 0, nil
	}
	result := r.db.Where("member_id IN ?", memberIDs).Delete(&models.WeeklyAvailability{})
	return result.RowsAffected, result.Error
}
