package gallery

import (
	"strings"

	"stash-bridge/core/stash"
)

// matchKey bundles what the matcher knows about the post side.
type matchKey struct {
	code  string
	title string
	date  string
	url   string
}

// match returns the gallery the post resolves to, or nil. A code hit
// short-circuits the weaker heuristics.
func match(key matchKey, galleries []stash.Gallery) *stash.Gallery {
	for i := range galleries {
		if key.code != "" && galleries[i].Code == key.code {
			return &galleries[i]
		}
	}

	normTitle := normalizeTitle(key.title)
	for i := range galleries {
		g := &galleries[i]
		// A gallery stamped with a different code belongs to another post
		if g.Code != "" && g.Code != key.code {
			continue
		}
		if normTitle != "" && normalizeTitle(g.Title) == normTitle && g.Date == key.date {
			return g
		}
		if key.url != "" && g.HasURL(key.url) {
			return g
		}
	}
	return nil
}

// normalizeTitle lowercases and collapses inner whitespace.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
