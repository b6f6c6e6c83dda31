package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/resumeforge/rewrite-api/internal/api/shared"
	"github.com/resumeforge/rewrite-api/internal/prompt"
	"github.com/resumeforge/rewrite-api/internal/rewrite"
)

// debugInputType is a probe value for the inputType field: it reports service
// status and key presence without calling the provider.
const debugInputType = "debug"

// RewriteRequest represents the request body for the regenerate endpoint.
type RewriteRequest struct {
	InputType       string   `json:"inputType"                 validate:"required"`
	Text            string   `json:"text"                      validate:"required"`
	Keywords        []string `json:"keywords,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
}

// RewriteResponse represents the success response for the regenerate endpoint.
type RewriteResponse struct {
	RewrittenText string `json:"rewrittenText"`
}

// DebugResponse represents the response for the debug probe. It reports
// whether a key is configured but never carries key material.
type DebugResponse struct {
	Status    string `json:"status"`
	HasAPIKey bool   `json:"hasApiKey"`
}

// RewriteService is the part of the rewrite pipeline the handler depends on.
type RewriteService interface {
	Rewrite(ctx context.Context, req rewrite.Request) (*rewrite.Result, error)
	HasAPIKey() bool
}

// RewriteHandler handles content-rewrite HTTP requests.
type RewriteHandler struct {
	service   RewriteService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewRewriteHandler creates a new RewriteHandler.
func NewRewriteHandler(service RewriteService, logger *slog.Logger) *RewriteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RewriteHandler{
		service:   service,
		validator: validator.New(),
		logger:    logger,
	}
}

// Regenerate handles POST /api/regenerate requests.
func (h *RewriteHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req RewriteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			rewrite.ErrInvalidBody.HTTPStatus(), rewrite.ErrInvalidBody.Message, err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Missing required fields: inputType and text.")
		return
	}

	// The debug probe sits behind the same key check as a real rewrite so a
	// mis-configured server reports the configuration error either way.
	if req.InputType == debugInputType {
		if !h.service.HasAPIKey() {
			shared.RespondWithError(w, r, http.StatusInternalServerError,
				"Server configuration error: Missing API key.")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, DebugResponse{
			Status:    "API is working",
			HasAPIKey: true,
		})
		return
	}

	result, err := h.service.Rewrite(r.Context(), rewrite.Request{
		Category:        prompt.Category(req.InputType),
		SourceText:      req.Text,
		Keywords:        req.Keywords,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RewriteResponse{
		RewrittenText: result.RewrittenText,
	})
}
