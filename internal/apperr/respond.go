package apperr

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finstock_backend/internal/api"
)

// Fixed client-facing messages per kind. The precondition reason travels in
// the details field; internal detail never leaves the server.
const (
	msgNotFound      = "resource not found"
	msgInvalidParams = "invalid parameters"
	msgAccessDenied  = "access denied"
	msgInvalidOp     = "invalid operation"
	msgTimeout       = "request timed out"
	msgInternal      = "internal server error"
)

// Respond writes err as an ErrorResponse on c, mapping the error kind to an
// HTTP status. Unclassified errors become 500 with the detail withheld from
// the body and logged instead.
func Respond(c *gin.Context, err error) {
	var (
		status  int
		message string
		details string
	)

	var e *Error
	if errors.As(err, &e) {
		details = e.Reason
	} else {
		details = err.Error()
	}

	switch KindOf(err) {
	case KindNotFound:
		status, message = http.StatusNotFound, msgNotFound
	case KindInvalidArgument:
		status, message = http.StatusBadRequest, msgInvalidParams
	case KindUnauthorized:
		status, message = http.StatusUnauthorized, msgAccessDenied
	case KindConflict:
		status, message = http.StatusBadRequest, msgInvalidOp
	case KindUnsupported:
		status, message = http.StatusBadRequest, msgInvalidOp
	case KindTimeout:
		status, message = http.StatusRequestTimeout, msgTimeout
	default:
		// Never leak internal error text to the client.
		slog.Error("unclassified error", "error", err, "path", c.Request.URL.Path)
		status, message, details = http.StatusInternalServerError, msgInternal, ""
	}

	c.AbortWithStatusJSON(status, api.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Details:    details,
		Timestamp:  time.Now().UTC(),
		Path:       c.Request.URL.Path,
	})
}

// BadRequest writes a 400 for a request-binding failure. Binding errors come
// from gin's validator rather than a usecase, so they carry no Kind.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    msgInvalidParams,
		Details:    err.Error(),
		Timestamp:  time.Now().UTC(),
		Path:       c.Request.URL.Path,
	})
}
