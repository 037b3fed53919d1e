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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AvailabilityHandlerTestSuite defines the test suite for AvailabilityHandler
type AvailabilityHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockWeekly *mocks.MockWeeklyAvailabilityServiceInterface
	mockDaily  *mocks.MockDailyAttendanceServiceInterface
	handler    *handlers.AvailabilityHandler
	httpSuite  *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AvailabilityHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWeekly = mocks.NewMockWeeklyAvailabilityServiceInterface(suite.ctrl)
	suite.mockDaily = mocks.NewMockDailyAttendanceServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAvailabilityHandler(suite.mockWeekly, suite.mockDaily)
	suite.httpSuite = testutils.SetupHTTPTest(testUser)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.PUT("/iterations/:id/weekly-availability", suite.handler.SaveWeeklyAvailability)
	v1.GET("/iterations/:id/weekly-availability", suite.handler.GetWeeklyAvailability)
	v1.PUT("/members/:id/weeks/:weekId/attendance", suite.handler.SaveDailyAttendance)
	v1.GET("/attendance/:availabilityId", suite.handler.GetDailyAttendance)
}

// TearDownTest cleans up after each test
func (suite *AvailabilityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AvailabilityHandlerTestSuite) TestSaveWeeklyAvailability() {
	iterationID := uuid.New()
	memberID := uuid.New()
	url := "/api/v1/iterations/" + iterationID.String() + "/weekly-availability"

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockWeekly.EXPECT().
			SaveWeeklyAvailability(gomock.Any(), testUser, iterationID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, req *service.SaveWeeklyAvailabilityRequest) (*service.SaveWeeklyAvailabilityResponse, error) {
				assert.Len(t, req.Entries, 2)
				assert.Equal(t, memberID, req.Entries[0].MemberID)
				return &service.SaveWeeklyAvailabilityResponse{UpdatedCount: len(req.Entries)}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{
			"entries": []map[string]interface{}{
				{"member_id": memberID.String(), "week_index": 1, "availability_percent": 80},
				{"member_id": memberID.String(), "week_index": 2, "availability_percent": 40},
			},
		})

		var response service.SaveWeeklyAvailabilityResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 2, response.UpdatedCount)
	})

	suite.T().Run("Empty Batch", func(t *testing.T) {
		suite.mockWeekly.EXPECT().
			SaveWeeklyAvailability(gomock.Any(), testUser, iterationID, gomock.Any()).
			Return(nil, apperrors.NewValidationError(apperrors.CodeInvalidPayload, "entries", "at least one entry is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{"entries": []interface{}{}})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidPayload)
	})

	suite.T().Run("Unknown Member", func(t *testing.T) {
		suite.mockWeekly.EXPECT().
			SaveWeeklyAvailability(gomock.Any(), testUser, iterationID, gomock.Any()).
			Return(nil, apperrors.ErrMemberNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{
			"entries": []map[string]interface{}{{"member_id": uuid.New().String(), "week_index": 1, "availability_percent": 50}},
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.CodeMemberNotFound)
	})
}

func (suite *AvailabilityHandlerTestSuite) TestGetWeeklyAvailability() {
	iterationID := uuid.New()

	suite.mockWeekly.EXPECT().
		GetWeeklyAvailability(gomock.Any(), testUser, iterationID).
		Return([]service.WeeklyAvailabilityResponse{{WeekIndex: 1, DaysPresent: 4, DaysTotal: 5}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/iterations/"+iterationID.String()+"/weekly-availability", nil)

	var response []service.WeeklyAvailabilityResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal(4, response[0].DaysPresent)
}

func (suite *AvailabilityHandlerTestSuite) TestSaveDailyAttendance() {
	memberID := uuid.New()
	url := "/api/v1/members/" + memberID.String() + "/weeks/1/attendance"

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockDaily.EXPECT().
			SaveDailyAttendance(gomock.Any(), testUser, memberID, 1, gomock.Any()).
			Return(&service.SaveDailyAttendanceResponse{AvailabilityID: memberID.String() + ":1", SavedCount: 3}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{
			"records": []map[string]interface{}{
				{"date": "2024-01-01", "status": "P"},
				{"date": "2024-01-02", "status": "P"},
				{"date": "2024-01-03", "status": "A"},
			},
		})

		var response service.SaveDailyAttendanceResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 3, response.SavedCount)
	})

	suite.T().Run("Invalid Status", func(t *testing.T) {
		suite.mockDaily.EXPECT().
			SaveDailyAttendance(gomock.Any(), testUser, memberID, 1, gomock.Any()).
			Return(nil, apperrors.NewValidationError(apperrors.CodeInvalidStatus, "records[0].status", "status must be P or A"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{
			"records": []map[string]interface{}{{"date": "2024-01-01", "status": "X"}},
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidStatus)
	})

	suite.T().Run("Non Numeric Week", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/members/"+memberID.String()+"/weeks/first/attendance", map[string]interface{}{
			"records": []interface{}{},
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidWeek)
	})
}

func (suite *AvailabilityHandlerTestSuite) TestGetDailyAttendance() {
	memberID := uuid.New()
	availabilityID := memberID.String() + ":2"

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockDaily.EXPECT().
			GetDailyAttendance(gomock.Any(), testUser, availabilityID).
			Return([]service.DailyAttendanceResponse{
				{Date: "2024-01-08", DayOfWeek: "Monday", Status: "P"},
				{Date: "2024-01-09", DayOfWeek: "Tuesday", Status: "A"},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/attendance/"+availabilityID, nil)

		var response []service.DailyAttendanceResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "2024-01-08", response[0].Date)
	})

	suite.T().Run("Malformed ID", func(t *testing.T) {
		suite.mockDaily.EXPECT().
			GetDailyAttendance(gomock.Any(), testUser, "garbage").
			Return(nil, apperrors.NewValidationError(apperrors.CodeInvalidPayload, "availability_id", "availability id must be <memberId>:<weekId>"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/attendance/garbage", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidPayload)
	})
}

func TestAvailabilityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}
