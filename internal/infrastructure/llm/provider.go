package llm

import "time"

// Provider names
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// GenerationConfig holds the fixed sampling parameters sent with every prompt
type GenerationConfig struct {
	Temperature     float32
	TopK            int
	TopP            float32
	MaxOutputTokens int
}

// DefaultGenerationConfig returns the chat assistant's sampling parameters
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
}

// Config holds text generation provider configuration
type Config struct {
	// Provider name: "gemini" or "openai"
	Provider string

	// APIKey is the provider credential; empty disables generation
	APIKey string

	// BaseURL overrides the provider endpoint
	BaseURL string

	// Model name (provider-specific)
	Model string

	// Timeout bounds one generation call; zero waits indefinitely
	Timeout time.Duration

	Generation GenerationConfig
}
