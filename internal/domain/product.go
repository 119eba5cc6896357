package domain

import "time"

// Product represents a coffee product entry from the content source
type Product struct {
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Category    string            `json:"category"`
	Description *RichTextDocument `json:"description,omitempty"`
}

// BlogPost represents a blog entry from the content source.
// Excerpt and Category are optional; an empty string means absent.
type BlogPost struct {
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Excerpt     string            `json:"excerpt,omitempty"`
	Category    string            `json:"category,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Body        *RichTextDocument `json:"body,omitempty"`
	PublishDate time.Time         `json:"publishDate,omitempty"`
}

// MatchType identifies which collection a ContentMatch came from
type MatchType string

const (
	MatchTypeProduct MatchType = "product"
	MatchTypeBlog    MatchType = "blog"
	MatchTypeNone    MatchType = "none"
)

// ContentMatch is the result of matching a user message against the catalog.
// Exactly one of Product and BlogPost is set when Type is not MatchTypeNone.
type ContentMatch struct {
	Type         MatchType `json:"type"`
	Product      *Product  `json:"product,omitempty"`
	BlogPost     *BlogPost `json:"blogPost,omitempty"`
	Confidence   float64   `json:"confidence"`
	MatchedTerms []string  `json:"matchedTerms"`
}

// NoMatch returns the empty match
func NoMatch() ContentMatch {
	return ContentMatch{
		Type:         MatchTypeNone,
		Confidence:   0,
		MatchedTerms: []string{},
	}
}

// Found reports whether the match carries an item
func (m ContentMatch) Found() bool {
	return m.Type != MatchTypeNone
}
