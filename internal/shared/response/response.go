package response

import (
	"github.com/gin-gonic/gin"
)

// The wire shapes here mirror the HRIS frontend contract: successful reads
// return the payload bare, mutations return {message}, failures return either
// {message} (store errors) or {error} (auth/validation errors).

func Data(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func MessageWithID(c *gin.Context, status int, message, id string) {
	c.JSON(status, gin.H{"message": message, "id": id})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func StoreError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
