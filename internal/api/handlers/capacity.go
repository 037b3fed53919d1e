package handlers

import (
	"net/http"

	"capacity-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CapacityHandler serves read-only capacity reports
type CapacityHandler struct {
	reportService service.CapacityReportServiceInterface
}

// NewCapacityHandler creates a new capacity handler
func NewCapacityHandler(reportService service.CapacityReportServiceInterface) *CapacityHandler {
	return &CapacityHandler{
		reportService: reportService,
	}
}

// GetCapacitySummary returns the capacity totals of an iteration
// @Summary Iteration capacity summary
// @Description Working days, member count, total effective capacity and story points per capacity day
// @Tags capacity
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Success 200 {object} service.CapacitySummaryResponse "Capacity summary"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /iterations/{id}/capacity [get]
func (h *CapacityHandler) GetCapacitySummary(c *gin.Context) {
	iterationID, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	summary, err := h.reportService.GetCapacitySummary(c.Request.Context(), currentUser(c), iterationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetReconciliation compares member capacity with the weekly and daily layers
// @Summary Capacity reconciliation report
// @Description Flags members whose weekly or daily records drift from their effective capacity. Nothing is modified.
// @Tags capacity
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Success 200 {object} service.ReconciliationResponse "Reconciliation report"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /iterations/{id}/reconciliation [get]
func (h *CapacityHandler) GetReconciliation(c *gin.Context) {
	iterationID, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	report, err := h.reportService.GetReconciliation(c.Request.Context(), currentUser(c), iterationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
