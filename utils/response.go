package utils

import "github.com/gin-gonic/gin"

// Error writes a JSON error body in the API's wire format.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"detail": message})
}
