package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// SizeLimit rejects bodies larger than maxBodyBytes with 413 Request Entity Too Large.
// Bodies of unknown length are cut at maxBodyBytes, which makes binding fail.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Message: "Entity too large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
