package usecase

import (
	"fmt"
	"strings"
)

// FallbackEntry pairs a keyword with a canned reply
type FallbackEntry struct {
	Keyword  string
	Response string
}

// FallbackTable is an ordered keyword lookup used when text generation is unavailable.
// Earlier entries win when several keywords appear in a message.
type FallbackTable struct {
	entries []FallbackEntry
}

// NewFallbackTable creates a table; keywords are stored lower-cased
func NewFallbackTable(entries []FallbackEntry) *FallbackTable {
	normalized := make([]FallbackEntry, 0, len(entries))
	for _, e := range entries {
		keyword := strings.ToLower(strings.TrimSpace(e.Keyword))
		if keyword == "" {
			continue
		}
		normalized = append(normalized, FallbackEntry{Keyword: keyword, Response: e.Response})
	}
	return &FallbackTable{entries: normalized}
}

// DefaultFallbackTable returns the built-in coffee topics
func DefaultFallbackTable() *FallbackTable {
	return NewFallbackTable([]FallbackEntry{
		{"coffee", "Coffee is a wonderful beverage made from roasted coffee beans! It comes in many varieties like Arabica and Robusta, and can be brewed in countless ways."},
		{"espresso", "Espresso is a concentrated coffee beverage made by forcing hot water through finely-ground coffee beans. It's the base for many coffee drinks like lattes and cappuccinos."},
		{"latte", "A latte is a coffee drink made with espresso and steamed milk, typically topped with a small amount of foam. It's creamy and smooth!"},
		{"cappuccino", "A cappuccino is an espresso-based drink with equal parts espresso, steamed milk, and milk foam. It has a rich, bold flavor."},
		{"brewing", "There are many ways to brew coffee: drip, French press, pour-over, cold brew, and more. Each method brings out different flavors from the beans."},
		{"beans", "Coffee beans are the seeds of the coffee plant. They're roasted to different levels (light, medium, dark) which affects the flavor profile."},
		{"grind", "The grind size of coffee beans affects extraction. Fine grind for espresso, medium for drip coffee, and coarse for French press."},
		{"temperature", "The ideal water temperature for brewing coffee is between 195-205°F (90-96°C). Too hot can burn the coffee, too cold won't extract properly."},
	})
}

// Lookup returns the reply of the first keyword contained in message,
// or a generic apology that echoes the question
func (t *FallbackTable) Lookup(message string) string {
	lowerMessage := strings.ToLower(message)
	for _, e := range t.entries {
		if strings.Contains(lowerMessage, e.Keyword) {
			return e.Response
		}
	}
	return fmt.Sprintf("Thanks for asking about %q! I'm a coffee assistant, but I'm currently having some technical difficulties. "+
		"Feel free to ask me about coffee brewing, different types of coffee drinks, or coffee beans, and I'll do my best to help!", message)
}

// Len returns the number of entries
func (t *FallbackTable) Len() int {
	return len(t.entries)
}
