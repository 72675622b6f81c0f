package middleware

import (
	"log/slog"
	"net/http"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	maxStackLines   = 12
	fallbackMessage = "Internal server error"
)

// ErrorHandler logs server-side failures with their stack and, when a handler
// recorded an error without writing a body, renders the last public one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		httperr.Respond(c, http.StatusInternalServerError, fallbackMessage)
	}
}

func logServerErrors(c *gin.Context) {
	for _, ginErr := range c.Errors {
		resp, ok := ginErr.Meta.(httperr.Response)
		if !ok || resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", resp.RequestID,
			"stack", errs.ExtractStackLines(ginErr.Err, maxStackLines))
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		ginErr := c.Errors[i]
		if !ginErr.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := ginErr.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery must be the outermost middleware so it sees panics from all the others.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(httperr.RequestIDKey))
				httperr.Respond(c, http.StatusInternalServerError, fallbackMessage)
			}
		}()
		c.Next()
	}
}
