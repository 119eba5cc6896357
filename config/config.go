package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Contentful ContentfulConfig
	LLM        LLMConfig
	Matching   MatchingConfig
	Chat       ChatConfig
	RateLimit  RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ContentfulConfig holds content source configuration
type ContentfulConfig struct {
	SpaceID     string        `mapstructure:"space_id"`
	Environment string        `mapstructure:"environment"`
	AccessToken string        `mapstructure:"access_token"`
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// LLMConfig holds text generation API configuration
type LLMConfig struct {
	Provider        string        `mapstructure:"provider"` // "gemini" or "openai"
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	Model           string        `mapstructure:"model"`
	Temperature     float32       `mapstructure:"temperature"`
	TopK            int           `mapstructure:"top_k"`
	TopP            float32       `mapstructure:"top_p"`
	MaxOutputTokens int           `mapstructure:"max_output_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"` // 0 waits indefinitely
}

// MatchingConfig holds content matcher configuration
type MatchingConfig struct {
	AcceptThreshold    float64 `mapstructure:"accept_threshold"`
	TieBreak           string  `mapstructure:"tie_break"` // "order" or "slug"
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// ChatConfig holds chat endpoint configuration
type ChatConfig struct {
	FallbackEnabled bool   `mapstructure:"fallback_enabled"`
	ShopContextFile string `mapstructure:"shop_context_file"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from a .env file, config files and environment variables
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/smartcoffee/")

	// Environment variable settings
	v.SetEnvPrefix("SMARTCOFFEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	if err := bindLegacyEnv(v); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env if present. Variables already set are kept.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// bindLegacyEnv accepts the unprefixed variable names used by the storefront
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"llm.api_key":             {"SMARTCOFFEE_LLM_API_KEY", "GOOGLE_AI_API_KEY"},
		"contentful.space_id":     {"SMARTCOFFEE_CONTENTFUL_SPACE_ID", "CONTENTFUL_SPACE_ID"},
		"contentful.environment":  {"SMARTCOFFEE_CONTENTFUL_ENVIRONMENT", "CONTENTFUL_ENVIRONMENT"},
		"contentful.access_token": {"SMARTCOFFEE_CONTENTFUL_ACCESS_TOKEN", "CONTENTFUL_ACCESS_TOKEN"},
	}
	for key, envs := range bindings {
		input := append([]string{key}, envs...)
		if err := v.BindEnv(input...); err != nil {
			return err
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Contentful defaults
	v.SetDefault("contentful.space_id", "")
	v.SetDefault("contentful.environment", "master")
	v.SetDefault("contentful.access_token", "")
	v.SetDefault("contentful.base_url", "https://graphql.contentful.com")
	v.SetDefault("contentful.timeout", "30s")

	// LLM defaults
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.top_k", 40)
	v.SetDefault("llm.top_p", 0.95)
	v.SetDefault("llm.max_output_tokens", 1024)
	v.SetDefault("llm.timeout", "0s")

	// Matching defaults
	v.SetDefault("matching.accept_threshold", 0.6)
	v.SetDefault("matching.tie_break", "order")
	v.SetDefault("matching.enable_debug_logging", false)

	// Chat defaults
	v.SetDefault("chat.fallback_enabled", false)
	v.SetDefault("chat.shop_context_file", "")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
	v.SetDefault("ratelimit.burst", 10)
}

// validate validates the configuration. A missing LLM API key is allowed:
// the chat endpoint reports it per request.
func validate(config *Config) error {
	if config.LLM.Provider != "gemini" && config.LLM.Provider != "openai" {
		return fmt.Errorf("llm provider must be 'gemini' or 'openai', got: %s", config.LLM.Provider)
	}

	if config.Matching.TieBreak != "order" && config.Matching.TieBreak != "slug" {
		return fmt.Errorf("matching tie_break must be 'order' or 'slug', got: %s", config.Matching.TieBreak)
	}

	if config.Matching.AcceptThreshold <= 0 || config.Matching.AcceptThreshold >= 1 {
		return fmt.Errorf("matching accept_threshold must be between 0 and 1, got: %v", config.Matching.AcceptThreshold)
	}

	if config.LLM.Timeout < 0 {
		return fmt.Errorf("llm timeout must not be negative, got: %s", config.LLM.Timeout)
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}

	return nil
}
