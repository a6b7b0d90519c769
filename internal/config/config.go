package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration values.
type Config struct {
	Address string `env:"ADDRESS" envDefault:":8080"`
	LogJSON bool   `env:"LOG_JSON" envDefault:"false"`

	AIProvider            string  `env:"AI_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey          string  `env:"OPENAI_API_KEY"`
	OpenAIModel           string  `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	GeminiAPIKey          string  `env:"GEMINI_API_KEY"`
	GeminiModel           string  `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	GeminiCredentialsFile string  `env:"GEMINI_CREDENTIALS_FILE"`
	AITemperature         float64 `env:"AI_TEMPERATURE" envDefault:"0.4"`
	AIMaxTokens           int     `env:"AI_MAX_TOKENS" envDefault:"4000"`
	AITimeoutSeconds      int     `env:"AI_TIMEOUT_SECONDS" envDefault:"60"`

	MaxUploadBytes    int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	MaxImageDimension int   `env:"MAX_IMAGE_DIMENSION" envDefault:"2048"`
	SessionTTLMinutes int   `env:"SESSION_TTL_MINUTES" envDefault:"30"`
}

// Load reads configuration from the environment, merging a .env file when one
// exists next to the binary.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.AIProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return errors.New("config: OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	case "gemini":
		if c.GeminiAPIKey == "" && c.GeminiCredentialsFile == "" {
			return errors.New("config: GEMINI_API_KEY or GEMINI_CREDENTIALS_FILE is required when AI_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("config: unknown AI_PROVIDER %q", c.AIProvider)
	}

	if c.SessionTTLMinutes <= 0 {
		return errors.New("config: SESSION_TTL_MINUTES must be positive")
	}
	if c.MaxImageDimension <= 0 {
		return errors.New("config: MAX_IMAGE_DIMENSION must be positive")
	}
	return nil
}

// AITimeout returns the per-request timeout for model calls.
func (c Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

// SessionTTL returns how long a shoot session stays retrievable.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}
