package handlers

import (
	"net/http"
	"strconv"

	"capacity-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IterationHandler handles HTTP requests for iterations
type IterationHandler struct {
	iterationService service.IterationServiceInterface
}

// NewIterationHandler creates a new iteration handler
func NewIterationHandler(iterationService service.IterationServiceInterface) *IterationHandler {
	return &IterationHandler{
		iterationService: iterationService,
	}
}

// CreateIteration creates a new iteration in a project
// @Summary Create an iteration
// @Description Create an iteration for a project. Working days are computed from the date range (Monday to Friday, both ends inclusive).
// @Tags iterations
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param iteration body service.CreateIterationRequest true "Iteration data"
// @Success 201 {object} service.IterationResponse "Successfully created iteration"
// @Failure 400 {object} ErrorResponse "Missing fields, invalid dates or start after end"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Security BearerAuth
// @Router /projects/{projectId}/iterations [post]
func (h *IterationHandler) CreateIteration(c *gin.Context) {
	projectID, ok := uuidParam(c, "projectId", "project")
	if !ok {
		return
	}

	var req service.CreateIterationRequest
	if !bindJSON(c, &req) {
		return
	}

	iteration, err := h.iterationService.CreateIteration(c.Request.Context(), currentUser(c), projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, iteration)
}

// ListIterations lists the iterations of a project
// @Summary List iterations by project
// @Description Get the iterations of a project ordered by start date, with pagination
// @Tags iterations
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.IterationListResponse "Successfully retrieved iterations"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Security BearerAuth
// @Router /projects/{projectId}/iterations [get]
func (h *IterationHandler) ListIterations(c *gin.Context) {
	projectID, ok := uuidParam(c, "projectId", "project")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	iterations, err := h.iterationService.ListIterations(c.Request.Context(), currentUser(c), projectID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, iterations)
}

// GetIteration retrieves an iteration by ID
// @Summary Get iteration by ID
// @Tags iterations
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Success 200 {object} service.IterationResponse "Successfully retrieved iteration"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /iterations/{id} [get]
func (h *IterationHandler) GetIteration(c *gin.Context) {
	id, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	iteration, err := h.iterationService.GetIteration(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, iteration)
}

// UpdateIteration applies a partial update to an iteration
// @Summary Update iteration
// @Description Update name, dates or committed story points. A date change recomputes working days and the effective capacity of every member.
// @Tags iterations
// @Accept json
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Param iteration body service.UpdateIterationRequest true "Fields to update"
// @Success 200 {object} service.IterationResponse "Successfully updated iteration"
// @Failure 400 {object} ErrorResponse "Invalid dates or start after end"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /iterations/{id} [patch]
func (h *IterationHandler) UpdateIteration(c *gin.Context) {
	id, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	var req service.UpdateIterationRequest
	if !bindJSON(c, &req) {
		return
	}

	iteration, err := h.iterationService.UpdateIteration(c.Request.Context(), currentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, iteration)
}

// DeleteIteration deletes an iteration and everything it owns
// @Summary Delete iteration
// @Description Delete an iteration together with its members, weekly availability and daily attendance
// @Tags iterations
// @Param id path string true "Iteration ID (UUID)"
// @Success 204 "Iteration deleted"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /iterations/{id} [delete]
func (h *IterationHandler) DeleteIteration(c *gin.Context) {
	id, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	if err := h.iterationService.DeleteIteration(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
