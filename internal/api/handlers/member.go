package handlers

import (
	"net/http"

	"capacity-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for iteration members
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// AddMember adds a member to an iteration
// @Summary Add a member to an iteration
// @Description Add a member and compute their effective capacity from the iteration's working days.
// @Description
// @Description Optional Fields with Defaults:
// @Description - work_mode: Defaults to 'office' (valid values: office, remote, hybrid)
// @Description - leaves: Defaults to 0, must be a whole number of days
// @Description - availability_percent: Defaults to 100
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully added member"
// @Failure 400 {object} ErrorResponse "Missing fields, invalid leaves or availability"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /iterations/{id}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	iterationID, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.AddMember(c.Request.Context(), currentUser(c), iterationID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMembers lists the members of an iteration
// @Summary List members by iteration
// @Description Get the members of an iteration ordered by name
// @Tags members
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Success 200 {array} service.MemberResponse "Successfully retrieved members"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /iterations/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	iterationID, ok := uuidParam(c, "id", "iteration")
	if !ok {
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), currentUser(c), iterationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   len(members),
	})
}

// GetMember retrieves a member by ID
// @Summary Get member by ID
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Successfully retrieved member"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := uuidParam(c, "id", "member")
	if !ok {
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember applies a partial update to a member
// @Summary Update member
// @Description Update a member. Changing leaves or availability recomputes effective capacity.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid leaves, availability or work mode"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [patch]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := uuidParam(c, "id", "member")
	if !ok {
		return
	}

	var req service.UpdateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), currentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember removes a member and their availability records
// @Summary Delete member
// @Description Delete a member together with their weekly availability and daily attendance
// @Tags members
// @Param id path string true "Member ID (UUID)"
// @Success 204 "Member deleted"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := uuidParam(c, "id", "member")
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
