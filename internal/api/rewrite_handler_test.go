package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/resumeforge/rewrite-api/internal/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService implements RewriteService with canned responses and records
// whether the pipeline was invoked.
type stubService struct {
	result    *rewrite.Result
	err       error
	hasAPIKey bool
	calls     int
	lastReq   rewrite.Request
}

func (s *stubService) Rewrite(ctx context.Context, req rewrite.Request) (*rewrite.Result, error) {
	s.calls++
	s.lastReq = req
	return s.result, s.err
}

func (s *stubService) HasAPIKey() bool { return s.hasAPIKey }

func doRequest(t *testing.T, svc RewriteService, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewRewriteHandler(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/regenerate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Regenerate(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestRegenerateSuccess(t *testing.T) {
	svc := &stubService{
		hasAPIKey: true,
		result:    &rewrite.Result{RewrittenText: "Polished objective."},
	}

	rec := doRequest(t, svc, `{
		"inputType": "objective",
		"text": "Seeking a role.",
		"keywords": ["Python", "APIs"],
		"experienceLevel": "entry-level"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rewrittenText": "Polished objective."}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	require.Equal(t, 1, svc.calls)
	assert.Equal(t, "objective", string(svc.lastReq.Category))
	assert.Equal(t, "Seeking a role.", svc.lastReq.SourceText)
	assert.Equal(t, []string{"Python", "APIs"}, svc.lastReq.Keywords)
	assert.Equal(t, "entry-level", svc.lastReq.ExperienceLevel)
}

func TestRegenerateMalformedBody(t *testing.T) {
	svc := &stubService{hasAPIKey: true}

	rec := doRequest(t, svc, `{"inputType": "objective",`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body.", decodeError(t, rec))
	assert.Zero(t, svc.calls, "malformed payloads must not reach the pipeline")
}

func TestRegenerateMissingFields(t *testing.T) {
	svc := &stubService{hasAPIKey: true}

	tests := []struct {
		name string
		body string
	}{
		{"missing inputType", `{"text": "Seeking a role."}`},
		{"missing text", `{"inputType": "objective"}`},
		{"empty object", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, svc, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Missing required fields: inputType and text.", decodeError(t, rec))
		})
	}

	assert.Zero(t, svc.calls, "incomplete payloads must not reach the pipeline")
}

func TestRegeneratePipelineErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "configuration error",
			err:        &rewrite.Error{Kind: rewrite.KindConfiguration, Message: "Server configuration error: Missing API key."},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Server configuration error: Missing API key.",
		},
		{
			name:       "provider error",
			err:        &rewrite.Error{Kind: rewrite.KindProvider, Message: "AI service is temporarily unavailable."},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "AI service is temporarily unavailable.",
		},
		{
			name:       "validation error",
			err:        &rewrite.Error{Kind: rewrite.KindValidation, Message: "Missing required fields: inputType and text."},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing required fields: inputType and text.",
		},
		{
			name:       "unclassified error",
			err:        errors.New("internal detail: connection reset by upstream"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An internal server error occurred. Please try again.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{hasAPIKey: true, err: tc.err}

			rec := doRequest(t, svc, `{"inputType": "objective", "text": "Seeking a role."}`)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMsg, decodeError(t, rec))
		})
	}
}

func TestRegenerateDebugProbe(t *testing.T) {
	t.Run("with key", func(t *testing.T) {
		svc := &stubService{hasAPIKey: true}

		rec := doRequest(t, svc, `{"inputType": "debug", "text": "ping"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "API is working", "hasApiKey": true}`, rec.Body.String())
		assert.Zero(t, svc.calls, "the debug probe must not invoke the pipeline")
	})

	t.Run("without key", func(t *testing.T) {
		svc := &stubService{hasAPIKey: false}

		rec := doRequest(t, svc, `{"inputType": "debug", "text": "ping"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Server configuration error: Missing API key.", decodeError(t, rec))
		assert.Zero(t, svc.calls)
	})
}

// TestRegenerateResponseNeverLeaksErrorDetail verifies that wrapped cause
// text stays out of the response body.
func TestRegenerateResponseNeverLeaksErrorDetail(t *testing.T) {
	svc := &stubService{
		hasAPIKey: true,
		err:       &rewrite.Error{Kind: rewrite.KindProvider, Message: "AI service is temporarily unavailable."},
	}

	rec := doRequest(t, svc, `{"inputType": "objective", "text": "Seeking a role."}`)

	assert.NotContains(t, rec.Body.String(), "provider")
	assert.NotContains(t, rec.Body.String(), "status")
	assert.False(t, bytes.Contains(rec.Body.Bytes(), []byte("gemini")))
}
