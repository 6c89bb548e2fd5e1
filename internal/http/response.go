package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vocabachkhoa/api/internal/apperr"
)

// Envelope is the body of every API response.
type Envelope struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
}

// respond writes data wrapped in the envelope.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Message: message, Code: status, Data: data})
}

func respondOK(c *gin.Context, message string, data any) {
	respond(c, http.StatusOK, message, data)
}

func respondCreated(c *gin.Context, message string, data any) {
	respond(c, http.StatusCreated, message, data)
}

// fail hands err to the central error handler and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON decodes the request body, reporting malformed input as a
// validation failure. Returns false if the request has already failed.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, &apperr.Error{
			Kind:    apperr.KindValidation,
			Message: "invalid request body",
			Err:     err,
		})
		return false
	}
	return true
}

// parseQueryID extracts a positive integer ID from the query string.
// IDs are signed bigint columns, so the top bit stays clear.
func parseQueryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		fail(c, apperr.Validation("missing %s query parameter", name))
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize-1)
	if err != nil || id == 0 {
		fail(c, apperr.Validation("%s must be a positive integer", name))
		return 0, false
	}
	return uint(id), true
}
