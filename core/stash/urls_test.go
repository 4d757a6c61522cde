package stash_test

import (
	"testing"

	"stash-bridge/core/stash"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://fansly.com/janedoe", "fansly.com/janedoe"},
		{"http scheme", "http://fansly.com/janedoe", "fansly.com/janedoe"},
		{"no scheme", "fansly.com/janedoe", "fansly.com/janedoe"},
		{"www prefix", "https://www.fansly.com/janedoe", "fansly.com/janedoe"},
		{"trailing slash", "https://fansly.com/janedoe/", "fansly.com/janedoe"},
		{"mixed case", "https://Fansly.com/JaneDoe", "fansly.com/janedoe"},
		{"surrounding space", "  https://fansly.com/janedoe  ", "fansly.com/janedoe"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stash.NormalizeURL(tc.in))
		})
	}
}

func TestNormalizeURLEquivalence(t *testing.T) {
	variants := []string{
		"https://fansly.com/janedoe",
		"http://www.fansly.com/janedoe/",
		"fansly.com/janedoe",
	}
	want := stash.NormalizeURL(variants[0])
	for _, v := range variants {
		assert.Equal(t, want, stash.NormalizeURL(v), v)
	}
}
