package usecase

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/smartcoffeehub/backend/internal/domain"
)

// Rule weights, most specific first
const (
	confidenceExactName   = 0.9 // full product name or blog title
	confidenceSlug        = 0.8 // product slug
	confidenceCategory    = 0.7 // product or blog category
	confidenceTagOrWord   = 0.6 // blog tag, or product name word
	confidenceTitleWord   = 0.5 // blog title word
	confidenceExcerptWord = 0.4 // blog excerpt word
)

// Minimum word lengths (exclusive) for partial matches
const (
	minNameWordLen    = 3
	minExcerptWordLen = 4
)

// DefaultAcceptThreshold is the strict lower bound a match must exceed to be returned
const DefaultAcceptThreshold = 0.6

// Tie-break policies
const (
	TieBreakOrder = "order" // first item in source order wins
	TieBreakSlug  = "slug"  // lexicographically smallest slug wins
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	AcceptThreshold    float64
	TieBreak           string
	EnableDebugLogging bool
}

// MatchingService associates a free-text message with a product or blog post
type MatchingService struct {
	acceptThreshold    float64
	tieBreak           string
	enableDebugLogging bool
	logger             *slog.Logger
}

// NewMatchingService creates a new matching service with the given configuration
func NewMatchingService(config MatchConfig, logger *slog.Logger) *MatchingService {
	threshold := config.AcceptThreshold
	if threshold <= 0 {
		threshold = DefaultAcceptThreshold
	}

	tieBreak := config.TieBreak
	if tieBreak != TieBreakSlug {
		tieBreak = TieBreakOrder
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MatchingService{
		acceptThreshold:    threshold,
		tieBreak:           tieBreak,
		enableDebugLogging: config.EnableDebugLogging,
		logger:             logger,
	}
}

// Match scores products first and only falls through to blog posts when no
// product clears the threshold. Never fails; an empty message yields no match.
func (s *MatchingService) Match(message string, products []domain.Product, posts []domain.BlogPost) domain.ContentMatch {
	lowerMessage := strings.ToLower(message)

	if s.tieBreak == TieBreakSlug {
		products = sortedProducts(products)
		posts = sortedBlogPosts(posts)
	}

	productMatch := s.findProductMatch(lowerMessage, products)
	if productMatch.Confidence > s.acceptThreshold {
		s.debug("product match", productMatch)
		return productMatch
	}

	blogMatch := s.findBlogMatch(lowerMessage, posts)
	if blogMatch.Confidence > s.acceptThreshold {
		s.debug("blog match", blogMatch)
		return blogMatch
	}

	if s.enableDebugLogging {
		s.logger.Debug("no content match",
			slog.Float64("best_product", productMatch.Confidence),
			slog.Float64("best_blog", blogMatch.Confidence))
	}
	return domain.NoMatch()
}

// findProductMatch returns on the first full-name hit, otherwise the best
// candidate seen. Later candidates replace it only on a strictly higher score.
func (s *MatchingService) findProductMatch(message string, products []domain.Product) domain.ContentMatch {
	best := domain.NoMatch()

	for i := range products {
		product := &products[i]
		name := strings.ToLower(product.Name)

		if contains(message, name) {
			return domain.ContentMatch{
				Type:         domain.MatchTypeProduct,
				Product:      product,
				Confidence:   confidenceExactName,
				MatchedTerms: []string{name},
			}
		}

		confidence, term := scoreProduct(message, name, product)
		if confidence > best.Confidence {
			best = domain.ContentMatch{
				Type:         domain.MatchTypeProduct,
				Product:      product,
				Confidence:   confidence,
				MatchedTerms: []string{term},
			}
		}
	}

	return best
}

func scoreProduct(message, name string, product *domain.Product) (float64, string) {
	if slug := strings.ToLower(product.Slug); contains(message, slug) {
		return confidenceSlug, slug
	}
	if category := strings.ToLower(product.Category); contains(message, category) {
		return confidenceCategory, category
	}
	if word, ok := firstWordIn(message, name, minNameWordLen); ok {
		return confidenceTagOrWord, word
	}
	return 0, ""
}

// findBlogMatch mirrors findProductMatch with the blog rule order
func (s *MatchingService) findBlogMatch(message string, posts []domain.BlogPost) domain.ContentMatch {
	best := domain.NoMatch()

	for i := range posts {
		post := &posts[i]
		title := strings.ToLower(post.Title)

		if contains(message, title) {
			return domain.ContentMatch{
				Type:         domain.MatchTypeBlog,
				BlogPost:     post,
				Confidence:   confidenceExactName,
				MatchedTerms: []string{title},
			}
		}

		confidence, term := scoreBlogPost(message, title, post)
		if confidence > best.Confidence {
			best = domain.ContentMatch{
				Type:         domain.MatchTypeBlog,
				BlogPost:     post,
				Confidence:   confidence,
				MatchedTerms: []string{term},
			}
		}
	}

	return best
}

func scoreBlogPost(message, title string, post *domain.BlogPost) (float64, string) {
	if category := strings.ToLower(post.Category); contains(message, category) {
		return confidenceCategory, category
	}
	for _, tag := range post.Tags {
		if tag = strings.ToLower(tag); contains(message, tag) {
			return confidenceTagOrWord, tag
		}
	}
	if word, ok := firstWordIn(message, title, minNameWordLen); ok {
		return confidenceTitleWord, word
	}
	if word, ok := firstWordIn(message, strings.ToLower(post.Excerpt), minExcerptWordLen); ok {
		return confidenceExcerptWord, word
	}
	return 0, ""
}

// contains is substring containment that never fires on an empty needle
func contains(message, needle string) bool {
	return needle != "" && strings.Contains(message, needle)
}

// firstWordIn returns the first whitespace-separated word of text longer
// than minLen characters that appears in message
func firstWordIn(message, text string, minLen int) (string, bool) {
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > minLen && strings.Contains(message, word) {
			return word, true
		}
	}
	return "", false
}

func sortedProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Slug) < strings.ToLower(out[j].Slug)
	})
	return out
}

func sortedBlogPosts(posts []domain.BlogPost) []domain.BlogPost {
	out := make([]domain.BlogPost, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Slug) < strings.ToLower(out[j].Slug)
	})
	return out
}

func (s *MatchingService) debug(msg string, match domain.ContentMatch) {
	if !s.enableDebugLogging {
		return
	}
	s.logger.Debug(msg,
		slog.String("type", string(match.Type)),
		slog.Float64("confidence", match.Confidence),
		slog.Any("matched_terms", match.MatchedTerms))
}
