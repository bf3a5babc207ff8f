package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Semua respons sukses memakai amplop {"message": ..., "data": ...}.

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"data":    data,
	})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func Deleted(c *gin.Context, message string, id uint) {
	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"deleted_id": id,
	})
}
