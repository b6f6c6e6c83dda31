package rewrite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// tryModels iterates the configured model endpoints in priority order,
// invoking the generator once per endpoint. The first success wins and stops
// the iteration immediately; attempts are strictly sequential, never raced.
// When every endpoint has failed, only the most recent failure is surfaced.
func (s *Service) tryModels(ctx context.Context, instruction string) (string, error) {
	if len(s.models) == 0 {
		return "", errors.New("no model endpoints configured")
	}

	var lastErr error
	for i, model := range s.models {
		text, err := s.generator.GenerateContent(ctx, model, instruction)
		if err == nil {
			if i > 0 {
				s.logger.InfoContext(ctx, "model endpoint fallback succeeded",
					slog.String("model", model),
					slog.Int("attempt", i+1))
			}
			return text, nil
		}

		lastErr = err
		s.logger.WarnContext(ctx, "model endpoint failed, trying next",
			slog.String("model", model),
			slog.String("error", err.Error()),
			slog.Int("attempt", i+1),
			slog.Int("remaining", len(s.models)-i-1))
	}

	return "", fmt.Errorf("all %d model endpoints failed: %w", len(s.models), lastErr)
}
