package util

import "github.com/gin-gonic/gin"

// Error sends the common error body: {"error": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// ErrorDetails sends {"error": msg, "details": details} for failures where
// the underlying cause helps the caller (mirrors the old API's shape).
func ErrorDetails(c *gin.Context, status int, msg string, details string) {
	c.JSON(status, gin.H{"error": msg, "details": details})
}
