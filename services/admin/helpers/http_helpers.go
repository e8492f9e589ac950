package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, adminerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, adminerrors.ErrInvalidCursor):
		return http.StatusBadRequest, "invalid cursor"
	case errors.Is(err, adminerrors.ErrInvalidSort):
		return http.StatusBadRequest, "invalid sort option"
	case errors.Is(err, adminerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, adminerrors.ErrNotConfirmed):
		return http.StatusPreconditionRequired, "operation requires confirmation"
	case errors.Is(err, adminerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, adminerrors.ErrForbidden):
		return http.StatusForbidden, "admin access required"
	case errors.Is(err, adminerrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "document store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response and logs it. Client errors are
// logged at warn level, server errors at error level.
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
