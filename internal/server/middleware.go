package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"marketplace-admin/internal/auth"
	"marketplace-admin/services/admin/helpers"
	"marketplace-admin/utils"

	"github.com/gin-gonic/gin"
)

const (
	RequestIDHeader = "X-Request-Id"
	AdminIDHeader   = "X-Admin-Id"

	requestIDKey = "request_id"
)

var errMissingAdmin = errors.New("missing " + AdminIDHeader + " header")

// AdminChecker decides whether a user id belongs to the admin collection
type AdminChecker interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

// RequestIDMiddleware propagates the caller's request id or mints a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = utils.GenerateRequestID()
	}
	c.Set(requestIDKey, id)
	c.Writer.Header().Set(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": c.GetString(requestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// AdminAuthMiddleware admits only operators listed in the admin collection and
// stores their id on the request context for audit fields
func AdminAuthMiddleware(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetHeader(AdminIDHeader)
		if adminID == "" {
			utils.JSONError(c, http.StatusUnauthorized, errMissingAdmin, "authentication required")
			c.Abort()
			return
		}

		ok, err := checker.IsAdmin(c.Request.Context(), adminID)
		if err != nil {
			helpers.RespondError(c, "AdminAuthMiddleware", err, map[string]any{"admin_id": adminID})
			c.Abort()
			return
		}
		if !ok {
			utils.Warn("rejected non-admin caller", map[string]any{
				"request_id": c.GetString(requestIDKey),
				"admin_id":   adminID,
			})
			utils.JSONError(c, http.StatusForbidden, errors.New("not an admin"), "admin access required")
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(auth.WithAdminID(c.Request.Context(), adminID))
		c.Next()
	}
}
