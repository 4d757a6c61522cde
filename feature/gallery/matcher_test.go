package gallery

import (
	"testing"

	"stash-bridge/core/stash"

	"github.com/stretchr/testify/assert"
)

func TestMatchByCode(t *testing.T) {
	galleries := []stash.Gallery{
		{ID: "1", Code: "111", Title: "Other"},
		{ID: "2", Code: "222", Title: "Beach day", Date: "2026-01-05"},
	}

	// A code hit wins even when title and date point elsewhere
	found := match(matchKey{code: "222", title: "Other", date: "1999-01-01"}, galleries)
	assert.NotNil(t, found)
	assert.Equal(t, "2", found.ID)
}

func TestMatchByTitleAndDate(t *testing.T) {
	galleries := []stash.Gallery{
		{ID: "1", Title: "Beach day", Date: "2026-01-05"},
		{ID: "2", Title: "Beach day", Date: "2026-02-01"},
	}

	found := match(matchKey{code: "333", title: "beach  DAY", date: "2026-02-01"}, galleries)
	assert.NotNil(t, found)
	assert.Equal(t, "2", found.ID)
}

func TestMatchSkipsForeignCode(t *testing.T) {
	// Same title and date, but the gallery is already claimed by another post
	galleries := []stash.Gallery{
		{ID: "1", Code: "999", Title: "Beach day", Date: "2026-01-05"},
	}

	found := match(matchKey{code: "333", title: "Beach day", date: "2026-01-05"}, galleries)
	assert.Nil(t, found)
}

func TestMatchByURL(t *testing.T) {
	galleries := []stash.Gallery{
		{ID: "1", Title: "Untitled", URLs: []string{"https://www.fansly.com/post/444/"}},
	}

	found := match(matchKey{code: "444", url: "https://fansly.com/post/444"}, galleries)
	assert.NotNil(t, found)
	assert.Equal(t, "1", found.ID)
}

func TestMatchNone(t *testing.T) {
	galleries := []stash.Gallery{
		{ID: "1", Title: "Beach day", Date: "2026-01-05"},
	}

	found := match(matchKey{code: "333", title: "Pool day", date: "2026-01-05", url: "https://fansly.com/post/333"}, galleries)
	assert.Nil(t, found)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "beach day", normalizeTitle("  Beach   DAY "))
	assert.Equal(t, "", normalizeTitle("   "))
}
