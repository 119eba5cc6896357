package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Add stores value only when key is absent, returning ErrCacheKeyExists otherwise
	Add(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository is the read-only content source for products and blog posts.
// List methods return items in the source's default order.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListBlogPosts(ctx context.Context) ([]BlogPost, error)
	ListRecentBlogPosts(ctx context.Context) ([]BlogPost, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error)
}

// TextGenerator turns a prompt into a single text completion
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
