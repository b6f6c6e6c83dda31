package rewrite

import (
	"context"
	"testing"

	"github.com/resumeforge/rewrite-api/internal/platform/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryModelsFirstSuccessWins(t *testing.T) {
	gen := &fakeGenerator{outcomes: map[string]outcome{
		"gemini-2.0-flash": {text: "first answer"},
		"gemini-1.5-flash": {text: "never reached"},
	}}
	svc := newTestService(gen, "key", "gemini-2.0-flash", "gemini-1.5-flash")

	text, err := svc.tryModels(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "first answer", text)
	assert.Equal(t, []string{"gemini-2.0-flash"}, gen.calls,
		"later endpoints must not be attempted after a success")
}

func TestTryModelsFallsThroughToNextEndpoint(t *testing.T) {
	gen := &fakeGenerator{outcomes: map[string]outcome{
		"gemini-2.0-flash": {err: callFailure(gemini.FailureServerError, 503)},
		"gemini-1.5-flash": {text: "second answer"},
	}}
	svc := newTestService(gen, "key", "gemini-2.0-flash", "gemini-1.5-flash")

	text, err := svc.tryModels(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "second answer", text)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-flash"}, gen.calls,
		"endpoints must be attempted strictly in priority order")
}

func TestTryModelsLastFailureWins(t *testing.T) {
	// Earlier failures are discarded; only the last attempted endpoint's
	// failure kind is surfaced for classification.
	gen := &fakeGenerator{outcomes: map[string]outcome{
		"gemini-2.0-flash": {err: callFailure(gemini.FailureServerError, 500)},
		"gemini-1.5-flash": {err: callFailure(gemini.FailureClientError, 404)},
	}}
	svc := newTestService(gen, "key", "gemini-2.0-flash", "gemini-1.5-flash")

	_, err := svc.tryModels(context.Background(), "prompt")

	require.Error(t, err)
	assert.Len(t, gen.calls, 2, "every endpoint must be attempted before giving up")

	var callErr *gemini.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, gemini.FailureClientError, callErr.Kind)
	assert.Equal(t, 404, callErr.StatusCode)
}

func TestTryModelsEmptyEndpointList(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(gen, "key")

	_, err := svc.tryModels(context.Background(), "prompt")

	require.Error(t, err)
	assert.Empty(t, gen.calls)
}

func TestTryModelsSingleEndpointNoFallback(t *testing.T) {
	// A single-endpoint list is the degenerate configuration some
	// deployments run with; it needs no special casing.
	gen := &fakeGenerator{outcomes: map[string]outcome{
		"gemini-1.5-flash": {err: callFailure(gemini.FailureNetwork, 0)},
	}}
	svc := newTestService(gen, "key", "gemini-1.5-flash")

	_, err := svc.tryModels(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, []string{"gemini-1.5-flash"}, gen.calls)
}
