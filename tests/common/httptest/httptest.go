//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type Header struct {
	Key   string
	Value string
}

// PerformRequest sends body as JSON when it is not nil. A string body is sent raw,
// which lets tests submit malformed JSON.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers ...Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonBody, err := json.Marshal(b)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", gin.MIMEJSON)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
