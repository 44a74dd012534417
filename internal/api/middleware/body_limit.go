package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/backend/pkg/response"
)

// BodyLimit caps request bodies at maxBytes. Reads past the cap fail with
// *http.MaxBytesError; see IsBodyTooLarge.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// IsBodyTooLarge reports whether a bind error came from the body cap.
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// AbortBodyTooLarge writes the 413 envelope.
func AbortBodyTooLarge(c *gin.Context) {
	response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "Anfrage zu groß")
	c.Abort()
}
