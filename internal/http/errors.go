package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vocabachkhoa/api/internal/apperr"
)

const (
	duplicateValueMessage = "value already exists"
	internalErrorMessage  = "internal server error"
)

// ErrorHandler renders the last error pushed with c.Error as an envelope.
// It is the only place where failures are turned into responses.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		status, message := classify(last.Err)

		attrs := []any{
			"status", status,
			"message", message,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(ContextKeyRequestID),
		}
		if status >= http.StatusInternalServerError {
			attrs = append(attrs, "error", last.Err.Error())
			if appErr, ok := apperr.As(last.Err); ok && len(appErr.Stack) > 0 {
				attrs = append(attrs, "stack", string(appErr.Stack))
			}
			logger.Error("request failed", attrs...)
		} else {
			logger.Warn("request rejected", attrs...)
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, Envelope{Message: message, Code: status})
	}
}

// classify maps an error onto a status code and client-facing message.
func classify(err error) (int, string) {
	if appErr, ok := apperr.As(err); ok {
		if appErr.Kind == apperr.KindInternal {
			return http.StatusInternalServerError, internalErrorMessage
		}
		return appErr.Status(), appErr.Message
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusBadRequest, duplicateValueMessage
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// recoverPanic converts a recovered panic into an internal error.
func recoverPanic(c *gin.Context, recovered any) {
	fail(c, &apperr.Error{
		Kind:    apperr.KindInternal,
		Message: internalErrorMessage,
		Err:     fmt.Errorf("panic: %v", recovered),
		Stack:   debug.Stack(),
	})
}

// notFound handles requests that match no route.
func notFound(c *gin.Context) {
	fail(c, apperr.NotFound("route %s %s not found", c.Request.Method, c.Request.URL.Path))
}
