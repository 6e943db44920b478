package utils

import "github.com/gin-gonic/gin"

// Handlers return records and arrays as bare JSON bodies; errors and
// confirmations are {"message": ...} objects, matching what the browser
// client parses.

func RespondJSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"message": err.Error()})
}
