package stash

import (
	"net/url"
	"strings"
)

// NormalizeURL reduces a URL to lowercase host+path with no scheme, no
// "www." prefix and no trailing slash, so that dedup comparisons are not
// defeated by cosmetic differences.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return strings.ToLower(strings.TrimSuffix(trimmed, "/"))
	}
	host := strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")
	path := strings.TrimSuffix(parsed.Path, "/")
	return host + strings.ToLower(path)
}
