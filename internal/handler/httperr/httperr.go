package httperr

import (
	"net/http"

	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key under which the logging middleware stores the request ID.
const RequestIDKey = "request_id"

const internalMessage = "Internal error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func newResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, RequestID: c.GetString(RequestIDKey), Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the context for the error middleware and the request log
// while the client only sees msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := newResponse(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithInputError answers a caller mistake with its message verbatim:
// 400 for invalid arguments, 422 for out of range values. Any other error is a 500
// whose details stay on the server.
func AbortWithInputError(c *gin.Context, err error) {
	switch errs.Category(err) {
	case errs.ErrInvalidArgument:
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.ErrOutOfRange:
		AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, internalMessage, nil)
	}
}

// Respond writes a JSON error body without recording an error on the context.
func Respond(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, newResponse(c, status, msg, nil))
}
