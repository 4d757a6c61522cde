package platform_test

import (
	"testing"

	"stash-bridge/core/platform"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Fansly", platform.Platform{Name: "fansly"}.Title())
	assert.Equal(t, "Onlyfans", platform.Platform{Name: "onlyfans"}.Title())
	assert.Equal(t, "Fansly", platform.Platform{Name: " fansly "}.Title())
	assert.Equal(t, "", platform.Platform{Name: ""}.Title())
}

func TestURLs(t *testing.T) {
	p := platform.Platform{Name: "fansly"}

	assert.Equal(t, "https://fansly.com", p.SiteURL())
	assert.Equal(t, "https://fansly.com/janedoe", p.ProfileURL("janedoe"))
	assert.Equal(t, "https://fansly.com/post/12345", p.PostURL(12345))
}
