package rewrite

import (
	"context"
	"log/slog"
	"strings"

	"github.com/resumeforge/rewrite-api/internal/config"
	"github.com/resumeforge/rewrite-api/internal/prompt"
)

// Generator sends one instruction string to one named model endpoint and
// returns the raw generated text. Implemented by the gemini client; tests
// substitute fakes.
type Generator interface {
	GenerateContent(ctx context.Context, model, instruction string) (string, error)
}

// Request is the validated payload of a rewrite call. Category and
// SourceText are mandatory; Keywords and ExperienceLevel are optional.
type Request struct {
	Category        prompt.Category
	SourceText      string
	Keywords        []string
	ExperienceLevel string
}

// Result is the success half of the result envelope.
type Result struct {
	RewrittenText string
}

// Service coordinates the rewrite pipeline: validate the request, build the
// instruction prompt, run the endpoint fallback, and map the outcome to a
// result envelope. All state is request-scoped except the injected read-only
// configuration.
type Service struct {
	apiKey    string
	models    []string
	generator Generator
	logger    *slog.Logger
}

// NewService creates a rewrite service. The API key and model list come from
// immutable process configuration; the generator performs the actual
// provider calls.
func NewService(generator Generator, cfg config.LLMConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apiKey:    cfg.GeminiAPIKey,
		models:    cfg.ModelEndpoints,
		generator: generator,
		logger:    logger,
	}
}

// HasAPIKey reports whether a provider credential is configured. The debug
// probe uses this to report key presence without exposing key material.
func (s *Service) HasAPIKey() bool {
	return s.apiKey != ""
}

// Rewrite runs one request through the pipeline and returns either the
// rewritten text or a classified *Error whose Message is safe to show to the
// caller.
//
// Order matters: field validation, then the credential check, then prompt
// construction. An unrecognized category short-circuits to the source text
// without any provider call.
func (s *Service) Rewrite(ctx context.Context, req Request) (*Result, error) {
	if req.Category == "" || req.SourceText == "" {
		return nil, &Error{Kind: KindValidation, Message: msgMissingFields}
	}

	if !s.HasAPIKey() {
		return nil, &Error{Kind: KindConfiguration, Message: msgMissingAPIKey}
	}

	if !req.Category.Recognized() {
		s.logger.DebugContext(ctx, "unrecognized category, returning source text unchanged",
			slog.String("category", string(req.Category)))
		return &Result{RewrittenText: req.SourceText}, nil
	}

	instruction := prompt.Build(prompt.Request{
		Category:        req.Category,
		SourceText:      req.SourceText,
		Keywords:        req.Keywords,
		ExperienceLevel: req.ExperienceLevel,
	})

	s.logger.DebugContext(ctx, "instruction prompt built",
		slog.String("category", string(req.Category)),
		slog.Int("instruction_length", len(instruction)),
		slog.Int("keyword_count", len(req.Keywords)))

	text, err := s.tryModels(ctx, instruction)
	if err != nil {
		classified := classifyProviderError(err)
		s.logger.ErrorContext(ctx, "rewrite failed after endpoint fallback",
			slog.String("category", string(req.Category)),
			slog.String("kind", string(classified.Kind)),
			slog.String("error", err.Error()))
		return nil, classified
	}

	return &Result{RewrittenText: strings.TrimSpace(text)}, nil
}
