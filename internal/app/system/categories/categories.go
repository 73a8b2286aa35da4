// Package categories is the single source of truth for the project
// category labels. The list is fixed at deployment time: order is
// display order, entries are unique, and there is no mutation API.
// Changing the list means shipping a new build.
package categories

import "strings"

// labels is the backing array. Never returned directly; All hands out
// copies so callers cannot mutate the registry.
var labels = []string{
	"AI / Machine Learning",
	"SaaS",
	"Fintech",
	"Developer Tools",
	"E-Commerce",
	"Health & Wellness",
	"Education",
	"Climate & Energy",
	"Productivity",
	"Entertainment",
}

var bySlug = func() map[string]string {
	m := make(map[string]string, len(labels))
	for _, l := range labels {
		m[Slug(l)] = l
	}
	return m
}()

// All returns the category labels in display order. The returned slice
// is a copy.
func All() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// Count returns the number of categories.
func Count() int { return len(labels) }

// IsValid reports whether label is exactly one of the registered
// category labels.
func IsValid(label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// Slug returns the URL form of a category label, e.g.
// "AI / Machine Learning" → "ai-machine-learning".
func Slug(label string) string {
	s := strings.ToLower(label)
	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// FromSlug resolves a URL slug back to its category label.
func FromSlug(slug string) (string, bool) {
	label, ok := bySlug[slug]
	return label, ok
}
