package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/resumeforge/rewrite-api/internal/config"
)

// Client sends instruction strings to the Gemini generateContent REST API.
// One call maps to exactly one request-reply exchange with one named model
// endpoint; retry across endpoints is the caller's concern.
type Client struct {
	apiKey  string
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

// NewClient creates a provider client from the LLM configuration.
//
// An empty API key is accepted here: the coordinator rejects requests before
// any call is attempted when the key is missing, and constructing the client
// must not crash a mis-configured server.
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		apiKey:  cfg.GeminiAPIKey,
		baseURL: cfg.BaseURL,
		hc:      &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// Wire types for the generateContent exchange.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends one instruction string to one named model endpoint
// and returns the raw generated text. Failures are returned as *CallError
// classified by kind; no retry happens here.
func (c *Client) GenerateContent(ctx context.Context, model, instruction string) (string, error) {
	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: instruction}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &CallError{Model: model, Kind: FailureMalformedResponse, cause: err}
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &CallError{Model: model, Kind: FailureNetwork, cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Gemini API call failed before any response",
			slog.String("model", model),
			slog.String("error", err.Error()))
		return "", &CallError{Model: model, Kind: FailureNetwork, cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "Gemini API call completed",
		slog.String("model", model),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Drain so the connection can be reused; the body itself is never
		// surfaced anywhere.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &CallError{Model: model, Kind: FailureClientError, StatusCode: resp.StatusCode}
	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &CallError{Model: model, Kind: FailureServerError, StatusCode: resp.StatusCode}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &CallError{Model: model, Kind: FailureMalformedResponse, cause: err}
	}

	text := extractText(out)
	if text == "" {
		c.logger.WarnContext(ctx, "Gemini API response missing generated text",
			slog.String("model", model),
			slog.Int("candidates", len(out.Candidates)))
		return "", &CallError{Model: model, Kind: FailureMalformedResponse}
	}

	return text, nil
}

// extractText pulls the generated text from its fixed nested position: first
// candidate, first content part.
func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
