package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"capacity-planner-backend/internal/database/models"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MemberServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	m         *storeMocks
	iteration *models.Iteration
	service   *service.MemberService
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newStoreMocks(suite.ctrl)
	suite.iteration = newIteration(suite.T(), uuid.New(), "2024-01-01", "2024-01-12", 10)
	suite.service = service.NewMemberService(suite.m.store, suite.m.access, service.NewRecomputeCoordinator(), validator.New())
}

func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberServiceTestSuite) expectIterationLoads() {
	suite.m.allow(suite.iteration.ProjectID)
	suite.m.iterations.EXPECT().GetByID(suite.iteration.ID).Return(copyOf(suite.iteration), nil).AnyTimes()
	suite.m.iterations.EXPECT().GetByIDForUpdate(suite.iteration.ID).Return(copyOf(suite.iteration), nil).AnyTimes()
}

func (suite *MemberServiceTestSuite) TestAddMember_ComputesEffectiveCapacity() {
	suite.expectIterationLoads()

	var created *models.Member
	suite.m.members.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Member) error {
		created = m
		return nil
	})

	resp, err := suite.service.AddMember(context.Background(), testUser, suite.iteration.ID, &service.AddMemberRequest{
		Name:                "Alex",
		Role:                "developer",
		WorkMode:            "Remote",
		Leaves:              floatPtr(2),
		AvailabilityPercent: floatPtr(80),
		Metadata:            json.RawMessage(`{"team":"core"}`),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6.4, resp.EffectiveCapacityDays)
	assert.Equal(suite.T(), "remote", resp.WorkMode)
	assert.Equal(suite.T(), 2, resp.Leaves)
	assert.JSONEq(suite.T(), `{"team":"core"}`, string(resp.Metadata))
	require.NotNil(suite.T(), created)
	assert.Equal(suite.T(), 6.4, created.EffectiveCapacityDays)
	assert.Equal(suite.T(), suite.iteration.ID, created.IterationID)
}

func (suite *MemberServiceTestSuite) TestAddMember_Defaults() {
	suite.expectIterationLoads()
	suite.m.members.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.AddMember(context.Background(), testUser, suite.iteration.ID, &service.AddMemberRequest{Name: "Sam"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "office", resp.WorkMode)
	assert.Equal(suite.T(), 0, resp.Leaves)
	assert.Equal(suite.T(), 100.0, resp.AvailabilityPercent)
	assert.Equal(suite.T(), 10.0, resp.EffectiveCapacityDays)
}

func (suite *MemberServiceTestSuite) TestAddMember_LeavesBeyondWorkingDaysClampToZero() {
	suite.expectIterationLoads()
	suite.m.members.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.AddMember(context.Background(), testUser, suite.iteration.ID, &service.AddMemberRequest{
		Name:                "Pat",
		Leaves:              floatPtr(14),
		AvailabilityPercent: floatPtr(100),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, resp.EffectiveCapacityDays)
	assert.Equal(suite.T(), 14, resp.Leaves)
}

func (suite *MemberServiceTestSuite) TestAddMember_ValidationErrors() {
	suite.expectIterationLoads()

	cases := []struct {
		name string
		req  service.AddMemberRequest
		code string
	}{
		{"missing name", service.AddMemberRequest{Name: " "}, apperrors.CodeMissingFields},
		{"availability above 100", service.AddMemberRequest{Name: "A", AvailabilityPercent: floatPtr(120)}, apperrors.CodeInvalidAvailability},
		{"negative availability", service.AddMemberRequest{Name: "A", AvailabilityPercent: floatPtr(-1)}, apperrors.CodeInvalidAvailability},
		{"fractional leaves", service.AddMemberRequest{Name: "A", Leaves: floatPtr(1.5)}, apperrors.CodeInvalidLeaves},
		{"negative leaves", service.AddMemberRequest{Name: "A", Leaves: floatPtr(-2)}, apperrors.CodeInvalidLeaves},
		{"leaves beyond integer range", service.AddMemberRequest{Name: "A", Leaves: floatPtr(1e20)}, apperrors.CodeInvalidLeaves},
		{"unknown work mode", service.AddMemberRequest{Name: "A", WorkMode: "moon"}, apperrors.CodeInvalidWorkMode},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := tc.req
			_, err := suite.service.AddMember(context.Background(), testUser, suite.iteration.ID, &req)
			require.Error(suite.T(), err)
			assert.Equal(suite.T(), tc.code, apperrors.CodeOf(err))
		})
	}
	assert.Equal(suite.T(), 0, suite.m.txCount)
}

func (suite *MemberServiceTestSuite) TestAddMember_RoundsAvailabilityToStoredPrecision() {
	suite.expectIterationLoads()

	var created *models.Member
	suite.m.members.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Member) error {
		created = m
		return nil
	})

	resp, err := suite.service.AddMember(context.Background(), testUser, suite.iteration.ID, &service.AddMemberRequest{
		Name:                "Kai",
		AvailabilityPercent: floatPtr(24.496),
	})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), created)
	assert.Equal(suite.T(), 24.5, created.AvailabilityPercent)
	assert.Equal(suite.T(), 2.5, created.EffectiveCapacityDays)
	assert.Equal(suite.T(), 2.5, resp.EffectiveCapacityDays)
}

func (suite *MemberServiceTestSuite) TestAddMember_IterationNotFound() {
	id := uuid.New()
	suite.m.iterations.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.AddMember(context.Background(), testUser, id, &service.AddMemberRequest{Name: "A"})

	assert.Equal(suite.T(), apperrors.CodeIterationNotFound, apperrors.CodeOf(err))
}

func (suite *MemberServiceTestSuite) TestUpdateMember_LeavesChangeRecomputes() {
	suite.expectIterationLoads()
	member := newMember(suite.iteration.ID, 2, 80, 6.4)
	suite.m.members.EXPECT().GetByID(member.ID).Return(copyOf(member), nil).Times(2)
	suite.m.members.EXPECT().Update(gomock.Any()).DoAndReturn(func(m *models.Member) error {
		assert.Equal(suite.T(), 4, m.Leaves)
		assert.Equal(suite.T(), 4.8, m.EffectiveCapacityDays)
		return nil
	})

	resp, err := suite.service.UpdateMember(context.Background(), testUser, member.ID, &service.UpdateMemberRequest{
		Leaves: floatPtr(4),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4.8, resp.EffectiveCapacityDays)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_AvailabilityChangeRecomputes() {
	suite.expectIterationLoads()
	member := newMember(suite.iteration.ID, 2, 80, 6.4)
	suite.m.members.EXPECT().GetByID(member.ID).Return(copyOf(member), nil).Times(2)
	suite.m.members.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.UpdateMember(context.Background(), testUser, member.ID, &service.UpdateMemberRequest{
		AvailabilityPercent: floatPtr(50),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4.0, resp.EffectiveCapacityDays)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_OtherFieldsKeepCapacity() {
	suite.expectIterationLoads()
	// stored capacity deliberately differs from the formula so a recompute would show
	member := newMember(suite.iteration.ID, 2, 80, 5.0)
	suite.m.members.EXPECT().GetByID(member.ID).Return(copyOf(member), nil).Times(2)
	suite.m.members.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.UpdateMember(context.Background(), testUser, member.ID, &service.UpdateMemberRequest{
		Name:     strPtr("Alexandra"),
		Role:     strPtr("lead"),
		WorkMode: strPtr("office"),
		Leaves:   floatPtr(2),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5.0, resp.EffectiveCapacityDays)
	assert.Equal(suite.T(), "Alexandra", resp.Name)
	assert.Equal(suite.T(), "lead", resp.Role)
	assert.Equal(suite.T(), "office", resp.WorkMode)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_InvalidLeaves() {
	suite.expectIterationLoads()
	member := newMember(suite.iteration.ID, 2, 80, 6.4)
	suite.m.members.EXPECT().GetByID(member.ID).Return(copyOf(member), nil).AnyTimes()

	for _, leaves := range []float64{0.5, 1e20} {
		_, err := suite.service.UpdateMember(context.Background(), testUser, member.ID, &service.UpdateMemberRequest{
			Leaves: floatPtr(leaves),
		})
		assert.Equal(suite.T(), apperrors.CodeInvalidLeaves, apperrors.CodeOf(err), "leaves %v", leaves)
	}
	assert.Equal(suite.T(), 0, suite.m.txCount)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_RoundedAvailabilityMatchesStoredValue() {
	suite.expectIterationLoads()
	member := newMember(suite.iteration.ID, 0, 24.5, 2.5)
	suite.m.members.EXPECT().GetByID(member.ID).Return(copyOf(member), nil).AnyTimes()
	suite.m.members.EXPECT().Update(gomock.Any()).DoAndReturn(func(m *models.Member) error {
		assert.Equal(suite.T(), 24.5, m.AvailabilityPercent)
		assert.Equal(suite.T(), 2.5, m.EffectiveCapacityDays)
		return nil
	})

	resp, err := suite.service.UpdateMember(context.Background(), testUser, member.ID, &service.UpdateMemberRequest{
		AvailabilityPercent: floatPtr(24.496),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2.5, resp.EffectiveCapacityDays)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_NotFound() {
	id := uuid.New()
	suite.m.members.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.UpdateMember(context.Background(), testUser, id, &service.UpdateMemberRequest{Name: strPtr("x")})

	assert.Equal(suite.T(), apperrors.CodeMemberNotFound, apperrors.CodeOf(err))
}

func (suite *MemberServiceTestSuite) TestDeleteMember_RemovesOwnedRows() {
	suite.expectIterationLoads()
	member := newMember(suite.iteration.ID, 0, 100, 10)
	suite.m.members.EXPECT().GetByID(member.ID).Return(copyOf(member), nil)

	gomock.InOrder(
		suite.m.daily.EXPECT().DeleteByMemberIDs([]uuid.UUID{member.ID}).Return(int64(5), nil),
		suite.m.weekly.EXPECT().DeleteByMemberIDs([]uuid.UUID{member.ID}).Return(int64(2), nil),
		suite.m.members.EXPECT().Delete(member.ID).Return(nil),
	)

	err := suite.service.DeleteMember(context.Background(), testUser, member.ID)

	require.NoError(suite.T(), err)
}

func (suite *MemberServiceTestSuite) TestListMembers_AccessDenied() {
	suite.m.deny(suite.iteration.ProjectID)
	suite.m.iterations.EXPECT().GetByID(suite.iteration.ID).Return(copyOf(suite.iteration), nil)

	_, err := suite.service.ListMembers(context.Background(), testUser, suite.iteration.ID)

	assert.Equal(suite.T(), apperrors.CodeAccessDenied, apperrors.CodeOf(err))
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
