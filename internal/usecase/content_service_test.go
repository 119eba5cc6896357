package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smartcoffeehub/backend/internal/domain"
)

func TestContentService_FindContentMatch(t *testing.T) {
	matcher := NewMatchingService(MatchConfig{}, nil)

	t.Run("matches against both collections", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("ListProducts", mock.Anything).Return(testProducts(), nil)
		catalog.On("ListBlogPosts", mock.Anything).Return(testBlogPosts(), nil)

		svc := NewContentService(catalog, matcher, nil)
		got := svc.FindContentMatch(context.Background(), "any tips on brewing?")

		assert.Equal(t, domain.MatchTypeBlog, got.Type)
		assert.Equal(t, 0.7, got.Confidence)
		catalog.AssertExpectations(t)
	})

	t.Run("product fetch failure degrades to no match", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("ListProducts", mock.Anything).Return(nil, errors.New("timeout"))
		catalog.On("ListBlogPosts", mock.Anything).Return(testBlogPosts(), nil).Maybe()

		svc := NewContentService(catalog, matcher, nil)
		got := svc.FindContentMatch(context.Background(), "The Art of Pour Over")

		assert.Equal(t, domain.MatchTypeNone, got.Type)
		assert.Empty(t, got.MatchedTerms)
	})

	t.Run("blog fetch failure degrades even with a product hit", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("ListProducts", mock.Anything).Return(testProducts(), nil).Maybe()
		catalog.On("ListBlogPosts", mock.Anything).Return(nil, domain.ErrCatalogUnavailable)

		svc := NewContentService(catalog, matcher, nil)
		got := svc.FindContentMatch(context.Background(), "Cold Brew")

		assert.Equal(t, domain.MatchTypeNone, got.Type)
	})

	t.Run("nil catalog degrades to no match", func(t *testing.T) {
		svc := NewContentService(nil, matcher, nil)
		got := svc.FindContentMatch(context.Background(), "Cold Brew")

		assert.Equal(t, domain.MatchTypeNone, got.Type)
	})

	t.Run("empty collections", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("ListProducts", mock.Anything).Return([]domain.Product{}, nil)
		catalog.On("ListBlogPosts", mock.Anything).Return([]domain.BlogPost{}, nil)

		svc := NewContentService(catalog, matcher, nil)
		got := svc.FindContentMatch(context.Background(), "Cold Brew")

		assert.Equal(t, domain.MatchTypeNone, got.Type)
	})
}
