package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONPage sends a structured JSON response for one page of a listing.
// nextCursor is serialized as null when there is no further page.
func JSONPage(c *gin.Context, status int, records any, nextCursor any, message string) {
	c.JSON(status, gin.H{
		"status":     status,
		"message":    message,
		"data":       records,
		"nextCursor": nextCursor,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
