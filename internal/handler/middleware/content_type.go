package middleware

import (
	"net/http"

	"room-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects request bodies that are not declared as JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEJSON {
			httperr.Respond(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		c.Next()
	}
}
