package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/smartcoffeehub/backend/internal/domain"
)

// ChatServiceConfig holds configuration for the chat service
type ChatServiceConfig struct {
	ShopContext string
	// Fallback, when set, answers instead of failing if generation is unavailable
	Fallback *FallbackTable
}

// ChatResult is the outcome of one chat turn
type ChatResult struct {
	Reply    string
	Match    domain.ContentMatch
	Fallback bool
	Duration time.Duration
}

// ChatService answers a single user question.
// Flow: validate -> check generator -> match content -> compose prompt -> generate
type ChatService struct {
	content     *ContentService
	generator   domain.TextGenerator
	shopContext string
	fallback    *FallbackTable
	logger      *slog.Logger
}

// NewChatService creates a new chat service. A nil generator means the
// text generation credential is missing.
func NewChatService(
	content *ContentService,
	generator domain.TextGenerator,
	config ChatServiceConfig,
	logger *slog.Logger,
) *ChatService {
	shopContext := config.ShopContext
	if shopContext == "" {
		shopContext = DefaultShopContext
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ChatService{
		content:     content,
		generator:   generator,
		shopContext: shopContext,
		fallback:    config.Fallback,
		logger:      logger,
	}
}

// Reply runs one chat turn. Errors are domain.ErrEmptyMessage,
// domain.ErrGeneratorNotConfigured, or a wrapped domain.ErrGenerationFailed.
// The generation call is attempted exactly once.
func (s *ChatService) Reply(ctx context.Context, message string) (*ChatResult, error) {
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}

	s.logger.Info("chat question received", slog.String("message", message))

	if s.generator == nil {
		if s.fallback != nil {
			s.logger.Warn("no text generation credential, using fallback reply")
			return &ChatResult{Reply: s.fallback.Lookup(message), Match: domain.NoMatch(), Fallback: true}, nil
		}
		return nil, domain.ErrGeneratorNotConfigured
	}

	match := domain.NoMatch()
	if s.content != nil {
		match = s.content.FindContentMatch(ctx, message)
	}
	s.logger.Info("content match",
		slog.String("type", string(match.Type)),
		slog.Float64("confidence", match.Confidence),
		slog.Any("matched_terms", match.MatchedTerms))

	prompt := ComposePrompt(s.shopContext, match, message)

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Error("text generation failed",
			slog.String("provider", s.generator.Name()),
			slog.Duration("duration", elapsed),
			slog.String("error", err.Error()))
		if s.fallback != nil {
			return &ChatResult{Reply: s.fallback.Lookup(message), Match: match, Fallback: true, Duration: elapsed}, nil
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}

	s.logger.Info("text generation replied",
		slog.String("provider", s.generator.Name()),
		slog.Duration("duration", elapsed),
		slog.Int("reply_length", len(text)))

	return &ChatResult{Reply: text, Match: match, Duration: elapsed}, nil
}
