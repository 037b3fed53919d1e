package handlers

import (
	"net/http"
	"strconv"

	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler handles the weekly availability and daily attendance layers
type AvailabilityHandler struct {
	weeklyService service.WeeklyAvailabilityServiceInterface
	dailyService  service.DailyAttendanceServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(weeklyService service.WeeklyAvailabilityServiceInterface, dailyService service.DailyAttendanceServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{
		weeklyService: weeklyService,
		dailyService:  dailyService,
	}
}

// SaveWeeklyAvailability upserts a batch of weekly availability entries
// @Summary Save weekly availability
// @Description Upsert availability per (week, member). The whole batch is applied or none of it. days_present is derived from availability when omitted.
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Param entries body service.SaveWeeklyAvailabilityRequest true "Weekly entries"
// @Success 200 {object} service.SaveWeeklyAvailabilityResponse "Entries saved"
// @Failure 400 {object} ErrorResponse "Empty or invalid entries"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration or member not found"
// @Security BearerAuth
// @Router /iterations/{id}/weekly-availability [put]
func (h *AvailabilityHandler) SaveWeeklyAvailability(c *gin.Context) {
	iterationID, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	var req service.SaveWeeklyAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.weeklyService.SaveWeeklyAvailability(c.Request.Context(), currentUser(c), iterationID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetWeeklyAvailability lists the weekly availability of an iteration
// @Summary Get weekly availability
// @Tags availability
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Success 200 {array} service.WeeklyAvailabilityResponse "Weekly entries ordered by week"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /iterations/{id}/weekly-availability [get]
func (h *AvailabilityHandler) GetWeeklyAvailability(c *gin.Context) {
	iterationID, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	entries, err := h.weeklyService.GetWeeklyAvailability(c.Request.Context(), currentUser(c), iterationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SaveDailyAttendance replaces the attendance days of one member-week
// @Summary Save daily attendance
// @Description Replace every stored day of the member-week with the submitted set. Days left out are removed; an empty list clears the week.
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param weekId path int true "Week number, starting at 1"
// @Param records body service.SaveDailyAttendanceRequest true "Attendance records"
// @Success 200 {object} service.SaveDailyAttendanceResponse "Records saved"
// @Failure 400 {object} ErrorResponse "Invalid status, date or week"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/weeks/{weekId}/attendance [put]
func (h *AvailabilityHandler) SaveDailyAttendance(c *gin.Context) {
	memberID, ok := uuidParam(c, "id", "member")
	if !ok {
		return
	}

	weekID, err := strconv.Atoi(c.Param("weekId"))
	if err != nil {
		respondBadRequest(c, apperrors.CodeInvalidWeek, "weekId", "week id must be a number")
		return
	}

	var req service.SaveDailyAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.dailyService.SaveDailyAttendance(c.Request.Context(), currentUser(c), memberID, weekID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDailyAttendance lists the attendance days of one member-week
// @Summary Get daily attendance
// @Tags availability
// @Produce json
// @Param availabilityId path string true "Availability ID formatted as <memberId>:<weekId>"
// @Success 200 {array} service.DailyAttendanceResponse "Days ordered by date"
// @Failure 400 {object} ErrorResponse "Malformed availability ID"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /attendance/{availabilityId} [get]
func (h *AvailabilityHandler) GetDailyAttendance(c *gin.Context) {
	records, err := h.dailyService.GetDailyAttendance(c.Request.Context(), currentUser(c), c.Param("availabilityId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
