package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/regenerate", nil)

	RespondWithJSON(rec, req, http.StatusOK, map[string]string{"rewrittenText": "done"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"rewrittenText": "done"}`, rec.Body.String())
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/regenerate", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(rec, req, http.StatusBadRequest, "Invalid request body.")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body.")
	assert.Contains(t, rec.Body.String(), GetTraceID(req.Context()))
}

func TestRespondWithErrorAndLogHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/regenerate", nil)

	internal := errors.New("dial tcp 10.0.0.1:443: connection refused")
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError,
		"Failed to connect to AI service. Please try again.", internal)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to connect to AI service. Please try again.")
	assert.NotContains(t, rec.Body.String(), "dial tcp",
		"raw error detail must never reach the response body")
}
