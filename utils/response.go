package utils

import "github.com/gin-gonic/gin"

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// JSONFieldErrors mirrors the structured validation shape the console
// expects: a per-field map of messages under "errors".
func JSONFieldErrors(c *gin.Context, code int, errors map[string][]string) {
	c.JSON(code, gin.H{"success": false, "errors": errors})
}
