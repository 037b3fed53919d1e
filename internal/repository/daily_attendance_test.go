//go:build integration
// +build integration

package repository

import (
	"testing"

	"capacity-planner-backend/internal/database/models"
	"capacity-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// DailyAttendanceRepositoryTestSuite tests the DailyAttendanceRepository
type DailyAttendanceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DailyAttendanceRepository
	factories     *testutils.FactorySet
}

func (suite *DailyAttendanceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDailyAttendanceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *DailyAttendanceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *DailyAttendanceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *DailyAttendanceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DailyAttendanceRepositoryTestSuite) week(memberID uuid.UUID, weekID int, dates ...string) []models.DailyAttendance {
	records := make([]models.DailyAttendance, 0, len(dates))
	for _, date := range dates {
		records = append(records, *suite.factories.DailyAttendance.Create(memberID, weekID, date))
	}
	return records
}

func (suite *DailyAttendanceRepositoryTestSuite) TestCreateBatchAndGetOrdersByDate() {
	memberID := uuid.New()
	suite.Require().NoError(suite.repo.CreateBatch(suite.week(memberID, 1, "2024-01-03", "2024-01-01", "2024-01-02")))

	records, err := suite.repo.GetByAvailabilityID(models.AvailabilityKey(memberID, 1))
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	suite.Equal("2024-01-01", records[0].Day().Format("2006-01-02"))
	suite.Equal("2024-01-02", records[1].Day().Format("2006-01-02"))
	suite.Equal("2024-01-03", records[2].Day().Format("2006-01-02"))
	suite.Equal("Monday", records[0].DayOfWeek)
}

func (suite *DailyAttendanceRepositoryTestSuite) TestCreateBatchEmptyIsNoop() {
	suite.NoError(suite.repo.CreateBatch(nil))
}

func (suite *DailyAttendanceRepositoryTestSuite) TestDuplicateDateIsUniqueViolation() {
	memberID := uuid.New()
	suite.Require().NoError(suite.repo.CreateBatch(suite.week(memberID, 1, "2024-01-01")))

	err := suite.repo.CreateBatch(suite.week(memberID, 1, "2024-01-01"))
	suite.Require().Error(err)
	suite.True(IsUniqueViolation(err))
}

// Replacing a member-week is delete-then-insert; days missing from the new set disappear
func (suite *DailyAttendanceRepositoryTestSuite) TestReplaceWeekLeavesOnlyNewSet() {
	memberID := uuid.New()
	key := models.AvailabilityKey(memberID, 1)
	suite.Require().NoError(suite.repo.CreateBatch(suite.week(memberID, 1, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04")))

	deleted, err := suite.repo.DeleteByAvailabilityID(key)
	suite.Require().NoError(err)
	suite.Equal(int64(4), deleted)
	suite.Require().NoError(suite.repo.CreateBatch(suite.week(memberID, 1, "2024-01-01", "2024-01-02", "2024-01-05")))

	records, err := suite.repo.GetByAvailabilityID(key)
	suite.Require().NoError(err)
	suite.Len(records, 3)
	suite.Equal("2024-01-05", records[2].Day().Format("2006-01-02"))
}

func (suite *DailyAttendanceRepositoryTestSuite) TestGetAndDeleteByMemberIDs() {
	first, second, untouched := uuid.New(), uuid.New(), uuid.New()
	suite.Require().NoError(suite.repo.CreateBatch(suite.week(first, 1, "2024-01-01", "2024-01-02")))
	suite.Require().NoError(suite.repo.CreateBatch(suite.week(first, 2, "2024-01-08")))
	suite.Require().NoError(suite.repo.CreateBatch(suite.week(second, 1, "2024-01-01")))
	suite.Require().NoError(suite.repo.CreateBatch(suite.week(untouched, 1, "2024-01-01")))

	records, err := suite.repo.GetByMemberIDs([]uuid.UUID{first, second})
	suite.Require().NoError(err)
	suite.Len(records, 4)

	empty, err := suite.repo.GetByMemberIDs(nil)
	suite.Require().NoError(err)
	suite.Empty(empty)

	deleted, err := suite.repo.DeleteByMemberIDs([]uuid.UUID{first, second})
	suite.Require().NoError(err)
	suite.Equal(int64(4), deleted)

	remaining, err := suite.repo.GetByMemberIDs([]uuid.UUID{first, second, untouched})
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(untouched, remaining[0].MemberID)
}

func TestDailyAttendanceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DailyAttendanceRepositoryTestSuite))
}
