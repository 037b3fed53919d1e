//go:build integration
// +build integration

package service_test

import (
	"context"
	"os"
	"testing"

	"capacity-planner-backend/internal/database/models"
	"capacity-planner-backend/internal/repository"
	"capacity-planner-backend/internal/service"
	"capacity-planner-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// PlanningFlowTestSuite drives the services against a real Postgres
type PlanningFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	projectID     uuid.UUID

	access     *service.ProjectAccessService
	iterations *service.IterationService
	members    *service.MemberService
	weekly     *service.WeeklyAvailabilityService
	daily      *service.DailyAttendanceService
	reports    *service.CapacityReportService
}

func (suite *PlanningFlowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()

	store := repository.NewStore(suite.baseTestSuite.DB)
	recompute := service.NewRecomputeCoordinator()
	validate := validator.New()

	suite.access = service.NewProjectAccessService(store)
	suite.iterations = service.NewIterationService(store, suite.access, recompute, validate)
	suite.members = service.NewMemberService(store, suite.access, recompute, validate)
	suite.weekly = service.NewWeeklyAvailabilityService(store, suite.access, 5)
	suite.daily = service.NewDailyAttendanceService(store, suite.access)
	suite.reports = service.NewCapacityReportService(store, suite.access)
}

func (suite *PlanningFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PlanningFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.projectID = uuid.New()
	suite.Require().NoError(suite.access.GrantAccess(suite.ctx, suite.projectID, testUser, models.CollaboratorRoleOwner))
}

func (suite *PlanningFlowTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createSprint creates an eight-working-day iteration with one 80% member
func (suite *PlanningFlowTestSuite) createSprint() (*service.IterationResponse, *service.MemberResponse) {
	iteration, err := suite.iterations.CreateIteration(suite.ctx, testUser, suite.projectID, &service.CreateIterationRequest{
		Name:      "Sprint 1",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
	})
	suite.Require().NoError(err)
	suite.Require().Equal(8, iteration.WorkingDays)

	percent := 80.0
	member, err := suite.members.AddMember(suite.ctx, testUser, iteration.ID, &service.AddMemberRequest{
		Name:                "Alex",
		AvailabilityPercent: &percent,
	})
	suite.Require().NoError(err)
	suite.Require().InDelta(6.4, member.EffectiveCapacityDays, 0.001)
	return iteration, member
}

func (suite *PlanningFlowTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(model).Count(&n).Error)
	return n
}

func (suite *PlanningFlowTestSuite) TestExtendingIterationRecomputesMembers() {
	iteration, member := suite.createSprint()

	end := "2024-01-17"
	updated, err := suite.iterations.UpdateIteration(suite.ctx, testUser, iteration.ID, &service.UpdateIterationRequest{EndDate: &end})
	suite.Require().NoError(err)
	suite.Equal(13, updated.WorkingDays)

	reloaded, err := suite.members.GetMember(suite.ctx, testUser, member.ID)
	suite.Require().NoError(err)
	suite.InDelta(10.4, reloaded.EffectiveCapacityDays, 0.001)

	summary, err := suite.reports.GetCapacitySummary(suite.ctx, testUser, iteration.ID)
	suite.Require().NoError(err)
	suite.InDelta(10.4, summary.TotalCapacityDays, 0.001)
	suite.Equal(3, summary.WeekCount)
}

func (suite *PlanningFlowTestSuite) TestDailyAttendanceReplacesWeek() {
	_, member := suite.createSprint()

	four := &service.SaveDailyAttendanceRequest{Records: []service.DailyAttendanceRecord{
		{Date: "2024-01-01", Status: "P"},
		{Date: "2024-01-02", Status: "P"},
		{Date: "2024-01-03", Status: "A"},
		{Date: "2024-01-04", Status: "P"},
	}}
	saved, err := suite.daily.SaveDailyAttendance(suite.ctx, testUser, member.ID, 1, four)
	suite.Require().NoError(err)
	suite.Equal(4, saved.SavedCount)

	three := &service.SaveDailyAttendanceRequest{Records: []service.DailyAttendanceRecord{
		{Date: "2024-01-01", Status: "P"},
		{Date: "2024-01-02", Status: "A"},
		{Date: "2024-01-05", Status: "P", DayOfWeek: "Friday"},
	}}
	_, err = suite.daily.SaveDailyAttendance(suite.ctx, testUser, member.ID, 1, three)
	suite.Require().NoError(err)

	records, err := suite.daily.GetDailyAttendance(suite.ctx, testUser, saved.AvailabilityID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	suite.Equal("2024-01-05", records[2].Date)
	suite.Equal("Friday", records[2].DayOfWeek)
}

func (suite *PlanningFlowTestSuite) TestDeletingIterationLeavesNoOrphans() {
	iteration, member := suite.createSprint()

	percent := 60.0
	_, err := suite.weekly.SaveWeeklyAvailability(suite.ctx, testUser, iteration.ID, &service.SaveWeeklyAvailabilityRequest{
		Entries: []service.WeeklyAvailabilityEntry{
			{MemberID: member.ID, WeekIndex: 1, AvailabilityPercent: &percent},
			{MemberID: member.ID, WeekIndex: 2, AvailabilityPercent: &percent},
		},
	})
	suite.Require().NoError(err)
	_, err = suite.daily.SaveDailyAttendance(suite.ctx, testUser, member.ID, 1, &service.SaveDailyAttendanceRequest{
		Records: []service.DailyAttendanceRecord{{Date: "2024-01-01", Status: "P"}},
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.iterations.DeleteIteration(suite.ctx, testUser, iteration.ID))

	suite.Zero(suite.count(&models.Iteration{}))
	suite.Zero(suite.count(&models.Member{}))
	suite.Zero(suite.count(&models.WeeklyAvailability{}))
	suite.Zero(suite.count(&models.DailyAttendance{}))
}

func (suite *PlanningFlowTestSuite) TestWeeklyBatchRollsBackOnUnknownMember() {
	iteration, member := suite.createSprint()

	percent := 40.0
	_, err := suite.weekly.SaveWeeklyAvailability(suite.ctx, testUser, iteration.ID, &service.SaveWeeklyAvailabilityRequest{
		Entries: []service.WeeklyAvailabilityEntry{
			{MemberID: member.ID, WeekIndex: 1, AvailabilityPercent: &percent},
			{MemberID: uuid.New(), WeekIndex: 1, AvailabilityPercent: &percent},
		},
	})
	suite.Require().Error(err)
	suite.Zero(suite.count(&models.WeeklyAvailability{}))
}

func TestPlanningFlowTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningFlowTestSuite))
}
