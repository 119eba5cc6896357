package contentful

import (
	"time"

	"github.com/smartcoffeehub/backend/internal/domain"
)

type richTextField struct {
	JSON *domain.RichTextDocument `json:"json"`
}

type productItem struct {
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Category    string         `json:"category"`
	Description *richTextField `json:"description"`
}

type productsData struct {
	Collection struct {
		Items []*productItem `json:"items"`
	} `json:"coffeeProductCollection"`
}

type blogPostItem struct {
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Excerpt     *string        `json:"excerpt"`
	Body        *richTextField `json:"body"`
	Category    *string        `json:"category"`
	Tags        []string       `json:"tags"`
	PublishDate *string        `json:"publishDate"`
}

type blogPostsData struct {
	Collection struct {
		Items []*blogPostItem `json:"items"`
	} `json:"blogPostCollection"`
}

// mapProducts converts collection items to domain products, keeping order.
// Null items (unpublished links under errorPolicy "all") are dropped.
func mapProducts(items []*productItem) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		product := domain.Product{
			Name:     item.Name,
			Slug:     item.Slug,
			Category: item.Category,
		}
		if item.Description != nil {
			product.Description = item.Description.JSON
		}
		products = append(products, product)
	}
	return products
}

// mapBlogPosts converts collection items to domain blog posts, keeping order
func mapBlogPosts(items []*blogPostItem) []domain.BlogPost {
	posts := make([]domain.BlogPost, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		post := domain.BlogPost{
			Title: item.Title,
			Slug:  item.Slug,
			Tags:  item.Tags,
		}
		if item.Excerpt != nil {
			post.Excerpt = *item.Excerpt
		}
		if item.Category != nil {
			post.Category = *item.Category
		}
		if item.Body != nil {
			post.Body = item.Body.JSON
		}
		if item.PublishDate != nil {
			post.PublishDate = parseDate(*item.PublishDate)
		}
		posts = append(posts, post)
	}
	return posts
}

// Contentful date fields may omit seconds or the zone
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate returns the zero time for values in no known layout
func parseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
