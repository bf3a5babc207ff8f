package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

// Unprocessable menulis kegagalan validasi beserta pesan per-field.
func Unprocessable(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "Validasi gagal",
		"errors":  fields,
	})
}
