package performer

import (
	"strings"
	"unicode"

	"stash-bridge/core/stash"
)

// normalizeName lowercases a name, strips punctuation and collapses
// whitespace so "Jane_Doe " and "jane doe" compare equal.
func normalizeName(name string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || r == '_' || r == '-' || r == '.':
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// candidate bundles what the matcher knows about the account side.
type candidate struct {
	displayName string
	usernames   []string
	profileURL  string
}

// match returns the first performer the candidate can be safely linked to,
// or nil when none qualifies.
func match(c candidate, performers []stash.Performer) *stash.Performer {
	names := make(map[string]struct{}, len(c.usernames)+1)
	if n := normalizeName(c.displayName); n != "" {
		names[n] = struct{}{}
	}
	for _, username := range c.usernames {
		if n := normalizeName(username); n != "" {
			names[n] = struct{}{}
		}
	}
	profile := stash.NormalizeURL(c.profileURL)

	for i := range performers {
		p := &performers[i]

		// Name hit: performer name equals any known account name
		if _, ok := names[normalizeName(p.Name)]; ok {
			return p
		}

		// Alias hit in either direction
		for _, alias := range p.Aliases {
			if _, ok := names[normalizeName(alias)]; ok {
				return p
			}
		}

		// URL hit
		if profile != "" {
			for _, u := range p.URLs {
				if stash.NormalizeURL(u) == profile {
					return p
				}
			}
		}
	}
	return nil
}

// appendAliases returns existing extended with the additions not already
// present under normalization. Existing aliases are kept verbatim, so the
// result only ever grows.
func appendAliases(name string, existing, additions []string) []string {
	seen := map[string]struct{}{normalizeName(name): {}}
	for _, alias := range existing {
		seen[normalizeName(alias)] = struct{}{}
	}
	merged := append([]string(nil), existing...)
	for _, alias := range additions {
		key := normalizeName(alias)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, alias)
	}
	return merged
}

// mergeAliases builds a fresh alias list from existing plus additions,
// skipping normalized duplicates and the performer's own name. Used when
// creating a performer; updates go through appendAliases instead.
func mergeAliases(name string, existing, additions []string) []string {
	seen := map[string]struct{}{normalizeName(name): {}}
	merged := make([]string, 0, len(existing)+len(additions))
	for _, alias := range existing {
		key := normalizeName(alias)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, alias)
	}
	for _, alias := range additions {
		key := normalizeName(alias)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, alias)
	}
	return merged
}
