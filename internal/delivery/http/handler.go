package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartcoffeehub/backend/internal/domain"
	"github.com/smartcoffeehub/backend/internal/usecase"
)

// Chat replies for the non-success paths
const (
	EmptyMessageReply = "Please provide a message."
	ConfigErrorReply  = "The AI assistant is not configured: missing API key. Please set GOOGLE_AI_API_KEY."
	ErrorReplyPrefix  = "Sorry, something went wrong! Error: "
	RateLimitedReply  = "You're sending messages too quickly. Please wait a moment and try again."
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	chatService    *usecase.ChatService
	catalogService *usecase.CatalogService
	logger         *slog.Logger
}

// NewHandler creates a new HTTP handler. Nil services make their endpoints
// report a configuration error.
func NewHandler(chatService *usecase.ChatService, catalogService *usecase.CatalogService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		chatService:    chatService,
		catalogService: catalogService,
		logger:         logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "smartcoffee-backend",
		"version": "1.0.0",
	})
}

// Chat answers one question: {message} in, {reply} out
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error("chat request decode failed", slog.String("error", err.Error()))
		RecordChatRequest(chatStatusError)
		c.JSON(http.StatusInternalServerError, domain.ChatResponse{Reply: ErrorReplyPrefix + err.Error()})
		return
	}

	if h.chatService == nil {
		RecordChatRequest(chatStatusConfigError)
		c.JSON(http.StatusInternalServerError, domain.ChatResponse{Reply: ConfigErrorReply})
		return
	}

	result, err := h.chatService.Reply(c.Request.Context(), req.Message)
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		RecordChatRequest(chatStatusInvalid)
		c.JSON(http.StatusBadRequest, domain.ChatResponse{Reply: EmptyMessageReply})
		return
	case errors.Is(err, domain.ErrGeneratorNotConfigured):
		h.logger.Error("chat unavailable", slog.String("error", err.Error()))
		RecordChatRequest(chatStatusConfigError)
		c.JSON(http.StatusInternalServerError, domain.ChatResponse{Reply: ConfigErrorReply})
		return
	case err != nil:
		RecordChatRequest(chatStatusError)
		c.JSON(http.StatusInternalServerError, domain.ChatResponse{Reply: ErrorReplyPrefix + err.Error()})
		return
	}

	RecordContentMatch(result.Match)
	if result.Fallback {
		RecordChatRequest(chatStatusFallback)
	} else {
		RecordGeneration(result.Duration)
		RecordChatRequest(chatStatusOK)
	}
	c.JSON(http.StatusOK, domain.ChatResponse{Reply: result.Reply})
}

// ListProducts returns all products
func (h *Handler) ListProducts(c *gin.Context) {
	if h.catalogService == nil {
		catalogUnavailable(c)
		return
	}
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": products})
}

// GetProduct returns one product by slug
func (h *Handler) GetProduct(c *gin.Context) {
	if h.catalogService == nil {
		catalogUnavailable(c)
		return
	}
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListBlogPosts returns blog posts, newest first
func (h *Handler) ListBlogPosts(c *gin.Context) {
	if h.catalogService == nil {
		catalogUnavailable(c)
		return
	}
	posts, err := h.catalogService.ListBlogPosts(c.Request.Context())
	if err != nil {
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": posts})
}

// GetBlogPost returns one blog post by slug
func (h *Handler) GetBlogPost(c *gin.Context) {
	if h.catalogService == nil {
		catalogUnavailable(c)
		return
	}
	post, err := h.catalogService.GetBlogPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) catalogError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error("catalog request failed",
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()))
	c.JSON(http.StatusBadGateway, gin.H{"error": "content source unavailable"})
}

func catalogUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content source not configured"})
}
