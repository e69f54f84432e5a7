package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the success envelope consumed by the client SDK
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends the failure envelope. message is shown to end users verbatim.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// JSONFieldErrors sends a validation failure with per-field messages
func JSONFieldErrors(c *gin.Context, status int, fields map[string]string, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"status":  status,
		"message": message,
		"error":   message,
		"errors":  fields,
	})
}
