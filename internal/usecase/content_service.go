package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/smartcoffeehub/backend/internal/domain"
)

// ContentService matches chat messages against a fresh catalog snapshot.
// Flow: fetch products and blog posts concurrently -> wait for both -> score
type ContentService struct {
	catalog domain.CatalogRepository
	matcher *MatchingService
	logger  *slog.Logger
}

// NewContentService creates a new content service with dependencies
func NewContentService(catalog domain.CatalogRepository, matcher *MatchingService, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentService{
		catalog: catalog,
		matcher: matcher,
		logger:  logger,
	}
}

// FindContentMatch never fails: any fetch error degrades to no match
func (s *ContentService) FindContentMatch(ctx context.Context, message string) domain.ContentMatch {
	products, posts, err := s.fetchCatalog(ctx)
	if err != nil {
		s.logger.Warn("content match degraded to generic",
			slog.String("error", err.Error()))
		return domain.NoMatch()
	}

	return s.matcher.Match(message, products, posts)
}

// fetchCatalog issues both collection queries and joins on their completion
func (s *ContentService) fetchCatalog(ctx context.Context) ([]domain.Product, []domain.BlogPost, error) {
	if s.catalog == nil {
		return nil, nil, fmt.Errorf("%w: no content source configured", domain.ErrCatalogUnavailable)
	}

	var (
		products []domain.Product
		posts    []domain.BlogPost
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		products, err = s.catalog.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		posts, err = s.catalog.ListBlogPosts(gctx)
		if err != nil {
			return fmt.Errorf("list blog posts: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return products, posts, nil
}
