package repository

import (
	"capacity-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyAttendanceRepository handles database operations for daily attendance rows
type DailyAttendanceRepository struct {
	db *gorm.DB
}

// NewDailyAttendanceRepository creates a new daily attendance repository
func NewDailyAttendanceRepository(db *gorm.DB) *DailyAttendanceRepository {
	return &DailyAttendanceRepository{db: db}
}

// CreateBatch inserts a set of attendance rows
func (r *DailyAttendanceRepository) CreateBatch(records []models.DailyAttendance) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(&records).Error
}

// GetByAvailabilityID retrieves the rows of one member-week ordered by date
func (r *DailyAttendanceRepository) GetByAvailabilityID(availabilityID string) ([]models.DailyAttendance, error) {
	var records []models.DailyAttendance
	err := r.db.Where("availability_id = ?", availabilityID).Order("date ASC").Find(&records).Error
	return records, err
}

// GetByMemberIDs retrieves all rows of the given members ordered by member and date
func (r *DailyAttendanceRepository) GetByMemberIDs(memberIDs []uuid.UUID) ([]models.DailyAttendance, error) {
	var records []models.DailyAttendance
	if len(memberIDs) == 0 {
		return records, nil
	}
	err := r.db.Where("member_id IN ?", memberIDs).Order("member_id ASC").Order("date ASC").Find(&records).Error
	return records, err
}

// DeleteByAvailabilityID deletes every row of one member-week
func (r *DailyAttendanceRepository) DeleteByAvailabilityID(availabilityID string) (int64, error) {
	result := r.db.Where("availability_id = ?", availabilityID).Delete(&models.DailyAttendance{})
	return result.RowsAffected, result.Error
}

// DeleteByMemberIDs deletes every row belonging to the given members
func (r *DailyAttendanceRepository) DeleteByMemberIDs(memberIDs []uuid.UUID) (int64, error) {
	if len(memberIDs) == 0 {
		return 0, nil
	}
	result := r.db.Where("member_id IN ?", memberIDs).Delete(&models.DailyAttendance{})
	return result.RowsAffected, result.Error
}
