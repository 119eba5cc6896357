package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartcoffeehub/backend/internal/domain"
)

// ProductView is a product with its description flattened to plain text
type ProductView struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// BlogPostView is a blog post with its body flattened to plain text
type BlogPostView struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Body        string     `json:"body,omitempty"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
}

// CatalogService serves read-only catalog views
type CatalogService struct {
	catalog domain.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog domain.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListProducts returns all products in source order
func (s *CatalogService) ListProducts(ctx context.Context) ([]ProductView, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, toProductView(&products[i]))
	}
	return views, nil
}

// GetProduct returns a single product by slug
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*ProductView, error) {
	product, err := s.catalog.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, wrapCatalogErr(err)
	}
	view := toProductView(product)
	return &view, nil
}

// ListBlogPosts returns blog posts newest first, bodies omitted
func (s *CatalogService) ListBlogPosts(ctx context.Context) ([]BlogPostView, error) {
	posts, err := s.catalog.ListRecentBlogPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	views := make([]BlogPostView, 0, len(posts))
	for i := range posts {
		view := toBlogPostView(&posts[i])
		view.Body = ""
		views = append(views, view)
	}
	return views, nil
}

// GetBlogPost returns a single blog post by slug
func (s *CatalogService) GetBlogPost(ctx context.Context, slug string) (*BlogPostView, error) {
	post, err := s.catalog.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, wrapCatalogErr(err)
	}
	view := toBlogPostView(post)
	return &view, nil
}

func wrapCatalogErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
}

func toProductView(p *domain.Product) ProductView {
	return ProductView{
		Name:        p.Name,
		Slug:        p.Slug,
		Category:    p.Category,
		Description: FlattenRichText(p.Description),
	}
}

func toBlogPostView(p *domain.BlogPost) BlogPostView {
	view := BlogPostView{
		Title:    p.Title,
		Slug:     p.Slug,
		Excerpt:  p.Excerpt,
		Category: p.Category,
		Tags:     p.Tags,
		Body:     FlattenRichText(p.Body),
	}
	if !p.PublishDate.IsZero() {
		published := p.PublishDate
		view.PublishDate = &published
	}
	return view
}
