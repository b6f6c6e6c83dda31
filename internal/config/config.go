package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins lists the origins permitted by the CORS layer.
	// The default "*" matches the original deployment, which served a
	// browser frontend from an arbitrary host.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// LLMConfig contains all settings for the Gemini generateContent integration.
type LLMConfig struct {
	// GeminiAPIKey is deliberately not validated as required at load time.
	// A missing key must surface as a per-request configuration error,
	// never as a startup crash.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// BaseURL is the scheme and host of the generateContent API. It is
	// injectable so tests can point the client at a local server.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// ModelEndpoints is the ordered fallback list of model names. The first
	// entry is tried first; later entries are older, more available models.
	ModelEndpoints []string `mapstructure:"model_endpoints" validate:"required,min=1"`

	// TimeoutSeconds bounds each individual provider call. The original
	// service set no timeout, which made a hung upstream fatal.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}
