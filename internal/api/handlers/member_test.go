package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"capacity-planner-backend/internal/api/handlers"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/mocks"
	"capacity-planner-backend/internal/service"
	"capacity-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MemberHandlerTestSuite defines the test suite for MemberHandler
type MemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMemberServiceInterface
	handler     *handlers.MemberHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMemberServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMemberHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest(testUser)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/iterations/:id/members", suite.handler.AddMember)
	v1.GET("/iterations/:id/members", suite.handler.ListMembers)
	v1.GET("/members/:id", suite.handler.GetMember)
	v1.PATCH("/members/:id", suite.handler.UpdateMember)
	v1.DELETE("/members/:id", suite.handler.DeleteMember)
}

// TearDownTest cleans up after each test
func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberHandlerTestSuite) TestAddMember() {
	iterationID := uuid.New()
	url := "/api/v1/iterations/" + iterationID.String() + "/members"

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), testUser, iterationID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, req *service.AddMemberRequest) (*service.MemberResponse, error) {
				require.NotNil(t, req.Leaves)
				require.NotNil(t, req.AvailabilityPercent)
				assert.Equal(t, 2.0, *req.Leaves)
				assert.Equal(t, 80.0, *req.AvailabilityPercent)
				return &service.MemberResponse{
					ID:                    uuid.New(),
					IterationID:           iterationID,
					Name:                  req.Name,
					Leaves:                2,
					AvailabilityPercent:   80,
					EffectiveCapacityDays: 6.4,
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{
			"name":                 "Dana",
			"role":                 "developer",
			"leaves":               2,
			"availability_percent": 80,
		})

		var response service.MemberResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, 6.4, response.EffectiveCapacityDays)
	})

	suite.T().Run("Invalid Availability", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), testUser, iterationID, gomock.Any()).
			Return(nil, apperrors.NewValidationError(apperrors.CodeInvalidAvailability, "availability_percent", "availability must be between 0 and 100"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{
			"name":                 "Dana",
			"availability_percent": 150,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidAvailability)

		var body handlers.ErrorResponse
		testutils.ParseJSONResponse(t, recorder, &body)
		assert.Equal(t, "availability_percent", body.Field)
	})

	suite.T().Run("Iteration Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), testUser, iterationID, gomock.Any()).
			Return(nil, apperrors.ErrIterationNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{"name": "Dana"})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.CodeIterationNotFound)
	})
}

func (suite *MemberHandlerTestSuite) TestListMembers() {
	iterationID := uuid.New()

	suite.mockService.EXPECT().
		ListMembers(gomock.Any(), testUser, iterationID).
		Return([]service.MemberResponse{{Name: "Avery"}, {Name: "Dana"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/iterations/"+iterationID.String()+"/members", nil)

	var response struct {
		Members []service.MemberResponse `json:"members"`
		Total   int                      `json:"total"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(2, response.Total)
	suite.Equal("Avery", response.Members[0].Name)
}

func (suite *MemberHandlerTestSuite) TestGetMember() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetMember(gomock.Any(), testUser, id).
			Return(&service.MemberResponse{ID: id, Name: "Dana"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/members/"+id.String(), nil)

		var response service.MemberResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, id, response.ID)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/members/42", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidPayload)
	})
}

func (suite *MemberHandlerTestSuite) TestUpdateMember() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateMember(gomock.Any(), testUser, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, req *service.UpdateMemberRequest) (*service.MemberResponse, error) {
				require.NotNil(t, req.Leaves)
				assert.Nil(t, req.AvailabilityPercent)
				return &service.MemberResponse{ID: id, Leaves: 4, EffectiveCapacityDays: 4.8}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/members/"+id.String(), map[string]interface{}{"leaves": 4})

		var response service.MemberResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 4.8, response.EffectiveCapacityDays)
	})

	suite.T().Run("Fractional Leaves", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateMember(gomock.Any(), testUser, id, gomock.Any()).
			Return(nil, apperrors.NewValidationError(apperrors.CodeInvalidLeaves, "leaves", "leaves must be a whole number"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/members/"+id.String(), map[string]interface{}{"leaves": 1.5})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidLeaves)
	})
}

func (suite *MemberHandlerTestSuite) TestDeleteMember() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteMember(gomock.Any(), testUser, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/members/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Access Denied", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteMember(gomock.Any(), testUser, id).Return(apperrors.ErrAccessDenied)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/members/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, apperrors.CodeAccessDenied)
	})
}

func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
