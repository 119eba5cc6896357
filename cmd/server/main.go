package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartcoffeehub/backend/config"
	httpDelivery "github.com/smartcoffeehub/backend/internal/delivery/http"
	"github.com/smartcoffeehub/backend/internal/infrastructure/cache"
	"github.com/smartcoffeehub/backend/internal/infrastructure/contentful"
	"github.com/smartcoffeehub/backend/internal/infrastructure/llm"
	"github.com/smartcoffeehub/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("starting Smart Coffee Hub backend",
		slog.String("version", "1.0.0"),
		slog.String("environment", cfg.Server.Environment),
		slog.String("port", cfg.Server.Port))

	// Initialize infrastructure dependencies
	catalog := contentful.NewClient(contentful.Options{
		BaseURL:     cfg.Contentful.BaseURL,
		SpaceID:     cfg.Contentful.SpaceID,
		Environment: cfg.Contentful.Environment,
		AccessToken: cfg.Contentful.AccessToken,
		Timeout:     cfg.Contentful.Timeout,
	}, logger)
	if cfg.Contentful.SpaceID == "" || cfg.Contentful.AccessToken == "" {
		logger.Warn("contentful credentials not configured; chat will answer with shop context only")
	}

	generator, err := llm.NewGenerator(llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
		Timeout:  cfg.LLM.Timeout,
		Generation: llm.GenerationConfig{
			Temperature:     cfg.LLM.Temperature,
			TopK:            cfg.LLM.TopK,
			TopP:            cfg.LLM.TopP,
			MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		},
	})
	if err != nil {
		logger.Error("failed to create text generator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if generator == nil {
		logger.Warn("LLM API key not configured; chat requests will fail until GOOGLE_AI_API_KEY is set")
	} else {
		logger.Info("text generation configured",
			slog.String("provider", generator.Name()),
			slog.String("model", cfg.LLM.Model),
			slog.Duration("timeout", cfg.LLM.Timeout))
	}

	shopContext, err := usecase.LoadShopContext(cfg.Chat.ShopContextFile)
	if err != nil {
		logger.Error("failed to load shop context", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize usecase layer
	matcher := usecase.NewMatchingService(usecase.MatchConfig{
		AcceptThreshold:    cfg.Matching.AcceptThreshold,
		TieBreak:           cfg.Matching.TieBreak,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	}, logger)
	contentService := usecase.NewContentService(catalog, matcher, logger)

	chatConfig := usecase.ChatServiceConfig{ShopContext: shopContext}
	if cfg.Chat.FallbackEnabled {
		chatConfig.Fallback = usecase.DefaultFallbackTable()
	}
	chatService := usecase.NewChatService(contentService, generator, chatConfig, logger)
	catalogService := usecase.NewCatalogService(catalog)

	logger.Info("matching configured",
		slog.Float64("accept_threshold", cfg.Matching.AcceptThreshold),
		slog.String("tie_break", cfg.Matching.TieBreak),
		slog.Bool("fallback_enabled", cfg.Chat.FallbackEnabled))

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(chatService, catalogService, logger)
	limiterStore := cache.NewMemoryCache(10*time.Minute, 10*time.Minute)
	router := httpDelivery.SetupRouter(cfg, handler, limiterStore, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// newLogger builds the JSON logger; debug level in development or when matcher debugging is on
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Server.Environment == "development" || cfg.Matching.EnableDebugLogging {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
