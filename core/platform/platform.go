// Package platform derives canonical URLs and labels from the configured
// content platform name. The processing features use these for dedup keys
// and for the links written onto Stash entities.
package platform

import (
	"fmt"
	"strings"
)

// Platform is the configured content platform.
type Platform struct {
	Name string
}

// Title returns the platform name with an uppercased first letter,
// e.g. "fansly" -> "Fansly". Used as the parent studio name.
func (p Platform) Title() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// SiteURL returns the platform landing page URL.
func (p Platform) SiteURL() string {
	return fmt.Sprintf("https://%s.com", strings.ToLower(strings.TrimSpace(p.Name)))
}

// ProfileURL returns the canonical profile URL for a username.
func (p Platform) ProfileURL(username string) string {
	return fmt.Sprintf("%s/%s", p.SiteURL(), username)
}

// PostURL returns the canonical URL for a post ID.
func (p Platform) PostURL(postID int64) string {
	return fmt.Sprintf("%s/post/%d", p.SiteURL(), postID)
}
