package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/smartcoffeehub/backend/internal/domain"
)

// mockCatalog is a testify mock of domain.CatalogRepository
type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *mockCatalog) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]domain.BlogPost)
	return posts, args.Error(1)
}

func (m *mockCatalog) ListRecentBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]domain.BlogPost)
	return posts, args.Error(1)
}

func (m *mockCatalog) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	args := m.Called(ctx, slug)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *mockCatalog) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, slug)
	post, _ := args.Get(0).(*domain.BlogPost)
	return post, args.Error(1)
}

// stubGenerator records prompts and returns a fixed reply or error
type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *stubGenerator) Name() string { return "stub" }

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func paragraphDoc(texts ...string) *domain.RichTextDocument {
	children := make([]domain.RichTextNode, 0, len(texts))
	for _, t := range texts {
		children = append(children, &domain.Text{Value: t})
	}
	return &domain.RichTextDocument{Content: []domain.RichTextNode{&domain.Paragraph{Content: children}}}
}
