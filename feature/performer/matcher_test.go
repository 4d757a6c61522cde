package performer

import (
	"testing"

	"stash-bridge/core/stash"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "jane doe"},
		{"jane_doe", "jane doe"},
		{"Jane-Doe", "jane doe"},
		{"jane.doe", "jane doe"},
		{"  Jane   Doe  ", "jane doe"},
		{"JaneDoe!", "janedoe"},
		{"", ""},
		{"___", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeName(tc.in), tc.in)
	}
}

func TestMatchByName(t *testing.T) {
	performers := []stash.Performer{
		{ID: "1", Name: "Someone Else"},
		{ID: "2", Name: "Jane Doe"},
	}

	found := match(candidate{displayName: "jane_doe"}, performers)
	assert.NotNil(t, found)
	assert.Equal(t, "2", found.ID)
}

func TestMatchByUsername(t *testing.T) {
	performers := []stash.Performer{
		{ID: "1", Name: "Jane Doe"},
	}

	// The performer's name matches a historical username
	found := match(candidate{displayName: "Completely Different", usernames: []string{"janedoe", "jane.doe"}}, performers)
	assert.NotNil(t, found)
	assert.Equal(t, "1", found.ID)
}

func TestMatchByAlias(t *testing.T) {
	performers := []stash.Performer{
		{ID: "1", Name: "Stage Name", Aliases: []string{"jane_doe"}},
	}

	found := match(candidate{displayName: "Jane Doe"}, performers)
	assert.NotNil(t, found)
	assert.Equal(t, "1", found.ID)
}

func TestMatchByURL(t *testing.T) {
	performers := []stash.Performer{
		{ID: "1", Name: "Stage Name", URLs: []string{"https://www.fansly.com/janedoe/"}},
	}

	found := match(candidate{
		displayName: "No Name Overlap",
		profileURL:  "https://fansly.com/janedoe",
	}, performers)
	assert.NotNil(t, found)
	assert.Equal(t, "1", found.ID)
}

func TestMatchNone(t *testing.T) {
	performers := []stash.Performer{
		{ID: "1", Name: "Stage Name", Aliases: []string{"other"}, URLs: []string{"https://fansly.com/other"}},
	}

	found := match(candidate{
		displayName: "Jane Doe",
		usernames:   []string{"janedoe"},
		profileURL:  "https://fansly.com/janedoe",
	}, performers)
	assert.Nil(t, found)
}

func TestAppendAliases(t *testing.T) {
	merged := appendAliases("Jane Doe", []string{"jdoe"}, []string{"janedoe", "jane_old", "jdoe", "Jane Doe", ""})

	// Additions matching the own name, existing aliases or earlier
	// additions are skipped
	assert.Equal(t, []string{"jdoe", "janedoe", "jane_old"}, merged)
}

func TestAppendAliasesKeepsExistingVerbatim(t *testing.T) {
	existing := []string{"Jane Doe", "Jane_Doe", "jdoe"}
	merged := appendAliases("Jane Doe", existing, []string{"janedoe", "jane_old"})

	// Stored aliases are never dropped, even when they normalize to the
	// performer's own name or to each other
	assert.Equal(t, []string{"Jane Doe", "Jane_Doe", "jdoe", "janedoe", "jane_old"}, merged)
}

func TestAppendAliasesNoAdditions(t *testing.T) {
	existing := []string{"Jane_Old"}
	merged := appendAliases("Jane Doe", existing, []string{"jane old", "jane.old", "Jane Doe"})
	assert.Equal(t, existing, merged)
}

func TestMergeAliases(t *testing.T) {
	merged := mergeAliases("Jane Doe", []string{"jdoe"}, []string{"jane_old", "jdoe", "Jane Doe", ""})

	// Own name, duplicates and empties are dropped
	assert.Equal(t, []string{"jdoe", "jane_old"}, merged)
}

func TestMergeAliasesNormalizedDuplicates(t *testing.T) {
	merged := mergeAliases("Jane Doe", []string{"Jane_Old"}, []string{"jane old", "jane.old"})
	assert.Equal(t, []string{"Jane_Old"}, merged)
}
