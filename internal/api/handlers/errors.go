package handlers

import (
	"errors"
	"net/http"

	"capacity-planner-backend/internal/auth"
	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errDatabaseNotConfigured = errors.New("database not configured")

// exposeErrorDetails adds internal error causes to 500 responses
var exposeErrorDetails bool

// SetErrorDetails toggles echoing internal error causes, which only development should enable
func SetErrorDetails(enabled bool) {
	exposeErrorDetails = enabled
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"availability must be between 0 and 100"`
	Code    string `json:"code" example:"INVALID_AVAILABILITY"`
	Field   string `json:"field,omitempty" example:"availability_percent"`
	Details string `json:"details,omitempty"`
}

// statusFor maps a typed service error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAccessDenied(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	resp := ErrorResponse{
		Error: err.Error(),
		Code:  apperrors.CodeOf(err),
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		resp.Field = validationErr.Field
		resp.Error = validationErr.Message
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		resp.Error = "internal server error"
		if exposeErrorDetails {
			resp.Details = err.Error()
		}
	}

	_ = c.Error(err)
	c.JSON(status, resp)
}

func respondBadRequest(c *gin.Context, code, field, message string) {
	respondError(c, apperrors.NewValidationError(code, field, message))
}

// currentUser returns the authenticated user id, or "" so the service reports it
func currentUser(c *gin.Context) string {
	userID, _ := auth.GetUserID(c)
	return userID
}

// uuidParam parses a path parameter, writing a 400 response when it is malformed
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, apperrors.CodeInvalidPayload, name, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, writing a 400 response when it is not valid JSON
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondBadRequest(c, apperrors.CodeInvalidPayload, "body", "Invalid request body: "+err.Error())
		return false
	}
	return true
}
