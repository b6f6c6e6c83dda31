package main

import (
	"fmt"
	"log/slog"

	"github.com/resumeforge/rewrite-api/internal/config"
	"github.com/resumeforge/rewrite-api/internal/platform/gemini"
	"github.com/resumeforge/rewrite-api/internal/platform/logger"
	"github.com/resumeforge/rewrite-api/internal/rewrite"
)

// application holds the wired dependencies for the running server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	rewrite *rewrite.Service
}

// newApplication loads configuration, sets up logging, and wires the rewrite
// pipeline. A missing API key is not an initialization error; it surfaces
// per request as a configuration error.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model_endpoints", len(cfg.LLM.ModelEndpoints),
		"api_key_present", cfg.LLM.GeminiAPIKey != "")

	client, err := gemini.NewClient(log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	svc := rewrite.NewService(client, cfg.LLM, log)

	return &application{
		config:  cfg,
		logger:  log,
		rewrite: svc,
	}, nil
}
