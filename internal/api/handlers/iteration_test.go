package handlers_test

import (
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

const testUser = "dana.planner"

// IterationHandlerTestSuite defines the test suite for IterationHandler
type IterationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockIterationServiceInterface
	handler     *handlers.IterationHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *IterationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockIterationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewIterationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest(testUser)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/projects/:projectId/iterations", suite.handler.CreateIteration)
	v1.GET("/projects/:projectId/iterations", suite.handler.ListIterations)
	v1.GET("/iterations/:id", suite.handler.GetIteration)
	v1.PATCH("/iterations/:id", suite.handler.UpdateIteration)
	v1.DELETE("/iterations/:id", suite.handler.DeleteIteration)
}

// TearDownTest cleans up after each test
func (suite *IterationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IterationHandlerTestSuite) TestCreateIteration() {
	projectID := uuid.New()
	url := "/api/v1/projects/" + projectID.String() + "/iterations"

	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.IterationResponse{
			ID:          uuid.New(),
			ProjectID:   projectID,
			Name:        "Sprint 14",
			StartDate:   "2024-01-01",
			EndDate:     "2024-01-12",
			WorkingDays: 10,
			WeekCount:   2,
		}

		suite.mockService.EXPECT().
			CreateIteration(gomock.Any(), testUser, projectID, &service.CreateIterationRequest{
				Name:      "Sprint 14",
				StartDate: "2024-01-01",
				EndDate:   "2024-01-12",
			}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{
			"name":       "Sprint 14",
			"start_date": "2024-01-01",
			"end_date":   "2024-01-12",
		})

		var response service.IterationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, 10, response.WorkingDays)
		assert.Equal(t, expected.ID, response.ID)
	})

	suite.T().Run("Start After End", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateIteration(gomock.Any(), testUser, projectID, gomock.Any()).
			Return(nil, apperrors.NewValidationError(apperrors.CodeInvalidRange, "end_date", "start date must not be after end date"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{
			"name":       "Backwards",
			"start_date": "2024-01-12",
			"end_date":   "2024-01-01",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidRange)
	})

	suite.T().Run("Access Denied", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateIteration(gomock.Any(), testUser, projectID, gomock.Any()).
			Return(nil, apperrors.ErrAccessDenied)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{"name": "Sprint"})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, apperrors.CodeAccessDenied)
	})

	suite.T().Run("Invalid Project ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/projects/not-a-uuid/iterations", map[string]interface{}{"name": "Sprint"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidPayload)
	})

	suite.T().Run("Malformed JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, url, "{not json")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, apperrors.CodeInvalidPayload)
	})
}

func (suite *IterationHandlerTestSuite) TestListIterations() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		ListIterations(gomock.Any(), testUser, projectID, 5, 10).
		Return(&service.IterationListResponse{
			Iterations: []service.IterationResponse{{Name: "Sprint 1"}},
			Total:      11,
			Limit:      5,
			Offset:     10,
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/iterations?limit=5&offset=10", nil)

	var response service.IterationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(11), response.Total)
	suite.Len(response.Iterations, 1)
}

func (suite *IterationHandlerTestSuite) TestGetIteration() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetIteration(gomock.Any(), testUser, id).
			Return(&service.IterationResponse{ID: id, Name: "Sprint 14"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/iterations/"+id.String(), nil)

		var response service.IterationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Sprint 14", response.Name)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetIteration(gomock.Any(), testUser, id).
			Return(nil, apperrors.ErrIterationNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/iterations/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, apperrors.CodeIterationNotFound)
	})
}

func (suite *IterationHandlerTestSuite) TestUpdateIteration() {
	id := uuid.New()
	endDate := "2024-01-19"

	suite.mockService.EXPECT().
		UpdateIteration(gomock.Any(), testUser, id, &service.UpdateIterationRequest{EndDate: &endDate}).
		Return(&service.IterationResponse{ID: id, EndDate: endDate, WorkingDays: 15}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/iterations/"+id.String(), map[string]interface{}{
		"end_date": endDate,
	})

	var response service.IterationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(15, response.WorkingDays)
}

func (suite *IterationHandlerTestSuite) TestDeleteIteration() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteIteration(gomock.Any(), testUser, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/iterations/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Storage Failure", func(t *testing.T) {
		suite.mockService.EXPECT().
			DeleteIteration(gomock.Any(), testUser, id).
			Return(apperrors.NewInternalError("delete iteration", assert.AnError))

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/iterations/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, apperrors.CodeInternal)
		assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
	})
}

func TestIterationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IterationHandlerTestSuite))
}
