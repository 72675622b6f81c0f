//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONResponse checks the status and decodes the body into target when target is not nil.
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body is not valid JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when expectedErrorMsg is set, that error.message equals it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "error body is not valid JSON: %s", w.Body.String()) {
		return
	}
	if expectedErrorMsg != "" {
		assert.Equal(t, expectedErrorMsg, resp.Error.Message)
	}
}

// AssertDeclined checks for a 409 whose body names the given decline reason.
func AssertDeclined(t *testing.T, w *httptest.ResponseRecorder, reason string) {
	t.Helper()

	var body response.AddReservationResponse
	require.Equal(t, http.StatusConflict, w.Code, "expected a declined booking, body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Accepted)
	assert.Equal(t, "declined", body.Outcome)
	assert.Equal(t, reason, body.Reason)
	assert.Nil(t, body.Reservation)
}

func AssertHeader(t *testing.T, w *httptest.ResponseRecorder, key, expected string) {
	t.Helper()
	assert.Equal(t, expected, w.Header().Get(key), "header %s mismatch", key)
}
