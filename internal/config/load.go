package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// defaultModelEndpoints is the fallback priority list used when no explicit
// list is configured. Newest models first, degrading to older generations
// that tend to stay available longer.
var defaultModelEndpoints = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-flash-latest",
	"gemini-pro",
	"gemini-1.0-pro",
}

// Load reads configuration from environment variables with the REWRITE_
// prefix (e.g. REWRITE_SERVER_PORT for server.port), applies defaults, and
// validates the result. The Gemini API key additionally honors the bare
// GEMINI_API_KEY variable used by existing deployments.
//
// Returns a populated Config struct or an error if loading or validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("llm.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("llm.model_endpoints", defaultModelEndpoints)
	v.SetDefault("llm.timeout_seconds", 30)

	v.SetEnvPrefix("REWRITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("llm.gemini_api_key", "REWRITE_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key environment variables: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
