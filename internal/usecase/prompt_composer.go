package usecase

import (
	"fmt"
	"strings"

	"github.com/smartcoffeehub/backend/internal/domain"
)

const (
	blogContentPreviewLen = 500
	ellipsis              = "..."
	noExcerptPlaceholder  = "No excerpt available"
	defaultBlogCategory   = "General"
)

const promptPreamble = `You are a friendly and knowledgeable assistant for Smart Coffee Hub, a local coffee shop.
Use the shop information below to answer the customer's question.

SHOP INFORMATION:
`

const promptInstructions = `INSTRUCTIONS:
- Be warm, friendly, and conversational, like a helpful barista.
- Keep answers brief: two to four short paragraphs at most.
- Use **bold** for product names and prices, and bullet points for lists.
- Only state facts found in the shop information or the content above; if you don't know, say so and suggest calling (555) 123-BREW.
- When mentioning a product, link it as [Product Name](/products/product-slug).
- When mentioning a blog post, link it as [Post Title](/blog/post-slug).
- Never invent links, prices, or opening hours.`

// ComposePrompt builds the final prompt handed to the text generator.
// The shop context is always included verbatim; a product or blog block is
// appended when the match carries an item.
func ComposePrompt(shopContext string, match domain.ContentMatch, userMessage string) string {
	var b strings.Builder

	b.WriteString(promptPreamble)
	b.WriteString(shopContext)
	b.WriteString("\n\n")

	switch {
	case match.Type == domain.MatchTypeProduct && match.Product != nil:
		writeProductBlock(&b, match.Product)
	case match.Type == domain.MatchTypeBlog && match.BlogPost != nil:
		writeBlogBlock(&b, match.BlogPost)
	}

	fmt.Fprintf(&b, "CUSTOMER QUESTION: %s\n\n", userMessage)
	b.WriteString(promptInstructions)

	return b.String()
}

func writeProductBlock(b *strings.Builder, p *domain.Product) {
	b.WriteString("SPECIFIC PRODUCT INFORMATION:\n")
	fmt.Fprintf(b, "- Name: %s\n", p.Name)
	fmt.Fprintf(b, "- Category: %s\n", p.Category)
	fmt.Fprintf(b, "- Description: %s\n", FlattenRichText(p.Description))
	fmt.Fprintf(b, "- Product page: /products/%s\n\n", p.Slug)
}

func writeBlogBlock(b *strings.Builder, post *domain.BlogPost) {
	excerpt := post.Excerpt
	if excerpt == "" {
		excerpt = noExcerptPlaceholder
	}
	category := post.Category
	if category == "" {
		category = defaultBlogCategory
	}

	b.WriteString("SPECIFIC BLOG POST INFORMATION:\n")
	fmt.Fprintf(b, "- Title: %s\n", post.Title)
	fmt.Fprintf(b, "- Excerpt: %s\n", excerpt)
	fmt.Fprintf(b, "- Category: %s\n", category)
	fmt.Fprintf(b, "- Content: %s%s\n", truncateRunes(FlattenRichText(post.Body), blogContentPreviewLen), ellipsis)
	fmt.Fprintf(b, "- Blog post: /blog/%s\n\n", post.Slug)
}

// truncateRunes keeps at most n characters without splitting a UTF-8 sequence
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
