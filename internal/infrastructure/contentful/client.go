package contentful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smartcoffeehub/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	queryProducts = `query GetProducts {
  coffeeProductCollection {
    items { name slug category description { json } }
  }
}`

	queryProductBySlug = `query GetCoffeeProductBySlug($slug: String!) {
  coffeeProductCollection(where: { slug: $slug }, limit: 1) {
    items { name slug category description { json } }
  }
}`

	queryBlogPosts = `query GetBlogPosts {
  blogPostCollection {
    items { title slug excerpt body { json } category tags publishDate }
  }
}`

	queryRecentBlogPosts = `query GetRecentBlogPosts {
  blogPostCollection(order: publishDate_DESC) {
    items { title slug excerpt body { json } category tags publishDate }
  }
}`

	queryBlogPostBySlug = `query GetPostBySlug($slug: String!) {
  blogPostCollection(where: { slug: $slug }, limit: 1) {
    items { title slug excerpt body { json } category tags publishDate }
  }
}`
)

// Options configures the Contentful GraphQL client
type Options struct {
	BaseURL     string
	SpaceID     string
	Environment string
	AccessToken string
	Timeout     time.Duration
}

// Client queries the Contentful GraphQL Content API
type Client struct {
	httpClient  *http.Client
	endpoint    string
	accessToken string
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// NewClient creates a new Contentful client
func NewClient(opts Options, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://graphql.contentful.com"
	}
	environment := opts.Environment
	if environment == "" {
		environment = "master"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	// Content Delivery API allows 55 requests per second
	limiter := rate.NewLimiter(rate.Limit(50), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint: fmt.Sprintf("%s/content/v1/spaces/%s/environments/%s",
			baseURL, url.PathEscape(opts.SpaceID), url.PathEscape(environment)),
		accessToken: opts.AccessToken,
		rateLimiter: limiter,
		logger:      logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// ListProducts returns every coffee product in source order
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var data productsData
	if err := c.query(ctx, queryProducts, nil, &data); err != nil {
		return nil, err
	}
	return mapProducts(data.Collection.Items), nil
}

// GetProductBySlug returns the product with the given slug
func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var data productsData
	if err := c.query(ctx, queryProductBySlug, map[string]any{"slug": slug}, &data); err != nil {
		return nil, err
	}
	products := mapProducts(data.Collection.Items)
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, slug)
	}
	return &products[0], nil
}

// ListBlogPosts returns every blog post in source order
func (c *Client) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var data blogPostsData
	if err := c.query(ctx, queryBlogPosts, nil, &data); err != nil {
		return nil, err
	}
	return mapBlogPosts(data.Collection.Items), nil
}

// ListRecentBlogPosts returns every blog post, newest first
func (c *Client) ListRecentBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var data blogPostsData
	if err := c.query(ctx, queryRecentBlogPosts, nil, &data); err != nil {
		return nil, err
	}
	return mapBlogPosts(data.Collection.Items), nil
}

// GetBlogPostBySlug returns the blog post with the given slug
func (c *Client) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var data blogPostsData
	if err := c.query(ctx, queryBlogPostBySlug, map[string]any{"slug": slug}, &data); err != nil {
		return nil, err
	}
	posts := mapBlogPosts(data.Collection.Items)
	if len(posts) == 0 {
		return nil, fmt.Errorf("%w: blog post %q", domain.ErrNotFound, slug)
	}
	return &posts[0], nil
}

// query executes one GraphQL request. Partial data is accepted when the
// response carries errors alongside non-null data.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("User-Agent", "SmartCoffeeHub/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", domain.ErrCatalogUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogUnavailable, resp.StatusCode, string(body))
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		if len(gqlResp.Errors) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, gqlResp.Errors[0].Message)
		}
		return fmt.Errorf("%w: empty response", domain.ErrCatalogUnavailable)
	}

	for _, e := range gqlResp.Errors {
		c.logger.Warn("contentful returned partial data", slog.String("error", e.Message))
	}

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
