package usecase

import (
	"strings"

	"github.com/smartcoffeehub/backend/internal/domain"
)

// FlattenRichText extracts plain text from a rich text document.
// Only text leaves directly under top-level paragraphs contribute; every
// other node kind (headings, lists, embeds, quotes) is skipped.
func FlattenRichText(doc *domain.RichTextDocument) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder
	for _, node := range doc.Content {
		paragraph, ok := node.(*domain.Paragraph)
		if !ok || paragraph.Content == nil {
			continue
		}
		for _, child := range paragraph.Content {
			if text, ok := child.(*domain.Text); ok {
				b.WriteString(text.Value)
				b.WriteByte(' ')
			}
		}
	}

	return strings.TrimSpace(b.String())
}
