package handlers_test

import (
	"net/http"
	"testing"

	"capacity-planner-backend/internal/api/handlers"
	"capacity-planner-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthWithoutDatabase(t *testing.T) {
	handler := handlers.NewHealthHandler(nil, "test")
	httpSuite := testutils.SetupHTTPTest("")
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("health reports unhealthy", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "test", response.Version)
		assert.Contains(t, response.Services["database"], "database not configured")
	})

	t.Run("not ready", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, false, response["ready"])
	})

	t.Run("alive", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, true, response["alive"])
	})
}
