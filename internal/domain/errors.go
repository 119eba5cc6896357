package domain

import "errors"

var (
	// ErrEmptyMessage is returned when the chat request has no message
	ErrEmptyMessage = errors.New("message is required")

	// ErrGeneratorNotConfigured is returned when no text generation credential is set
	ErrGeneratorNotConfigured = errors.New("text generation API key is not configured")

	// ErrCatalogUnavailable is returned when the content source cannot be queried
	ErrCatalogUnavailable = errors.New("content source request failed")

	// ErrGenerationFailed is returned when the text generation API call fails
	ErrGenerationFailed = errors.New("text generation request failed")

	// ErrNotFound is returned when a product or blog post slug does not exist
	ErrNotFound = errors.New("content not found")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheKeyExists is returned when adding a key that is already cached
	ErrCacheKeyExists = errors.New("cache key already exists")
)
