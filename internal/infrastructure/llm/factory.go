package llm

import (
	"fmt"

	"github.com/smartcoffeehub/backend/internal/domain"
)

// NewGenerator builds the configured text generator. It returns a nil
// generator and no error when the API key is empty, so the credential
// check happens per request rather than at startup.
func NewGenerator(config Config) (domain.TextGenerator, error) {
	if config.APIKey == "" {
		return nil, nil
	}

	switch config.Provider {
	case "", ProviderGemini:
		g, err := NewGeminiGenerator(config)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderOpenAI:
		g, err := NewOpenAIGenerator(config)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
}
