package response

import "github.com/gin-gonic/gin"

// The API keeps the original mobile contract: plain objects on success,
// {"error": "..."} with an HTTP status on failure.

func Err(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
