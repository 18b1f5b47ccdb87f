package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrlokans/bookery/internal/entities"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// ValidationDetails names the rejected field and the rule it broke.
type ValidationDetails struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// idRequest picks the id out of a body whose other fields may be invalid.
type idRequest struct {
	ID uuid.UUID `json:"id"`
}

// DeleteRequest is the body of every delete endpoint.
type DeleteRequest struct {
	ID uuid.UUID `json:"id"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondValidationError sends a 422 Unprocessable Entity response describing
// which field failed.
func respondValidationError(c *gin.Context, verr *entities.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Code:    "validation_failed",
		Details: ValidationDetails{Field: verr.Field, Reason: verr.Err.Error()},
	})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("op", context).Msg("internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondAccepted sends a 202 Accepted response with data.
func respondAccepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, data)
}

// --- Parameter Parsing ---

// parseUUIDParam extracts and validates a UUID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns uuid.Nil, false.
func parseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return uuid.Nil, false
	}
	return id, true
}

// requireQuery returns a query parameter that must be present but may be empty.
func requireQuery(c *gin.Context, name string) (string, bool) {
	value, ok := c.GetQuery(name)
	if !ok {
		respondBadRequest(c, name+" is required")
		return "", false
	}
	return value, true
}

// bindJSON decodes the request body into dst. A malformed value inside an
// otherwise well-formed body (such as an impossible date) is returned as a
// *entities.ValidationError so callers can map it like any other rejected
// payload; anything else is answered with 400 here. The body stays cached on
// the context so it can be decoded again.
func bindJSON(c *gin.Context, dst any) (bool, *entities.ValidationError) {
	err := c.ShouldBindBodyWith(dst, binding.JSON)
	if err == nil {
		return true, nil
	}
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return false, verr
	}
	respondBadRequest(c, "invalid request body")
	return false, nil
}
