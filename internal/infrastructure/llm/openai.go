package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator generates replies through the OpenAI Chat Completions API
type OpenAIGenerator struct {
	client     *openai.Client
	model      string
	generation GenerationConfig
}

// NewOpenAIGenerator creates a new OpenAI client
func NewOpenAIGenerator(config Config) (*OpenAIGenerator, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}

	model := config.Model
	if model == "" || strings.HasPrefix(model, "gemini") {
		model = openai.GPT4oMini
	}

	return &OpenAIGenerator{
		client:     openai.NewClientWithConfig(clientConfig),
		model:      model,
		generation: config.Generation,
	}, nil
}

// Name returns the provider name
func (g *OpenAIGenerator) Name() string {
	return ProviderOpenAI
}

// Generate sends the prompt as a single user message. Top-k has no
// Chat Completions equivalent and is not sent.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: g.generation.Temperature,
		TopP:        g.generation.TopP,
		MaxTokens:   g.generation.MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", errors.New("OpenAI returned an empty response")
	}
	return text, nil
}
