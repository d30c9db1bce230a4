package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Mario ":   "mario",
		"LUIGI":      "luigi",
		"\t\n":       "",
		"":           "",
		" Bowser Jr": "bowser jr",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Mario", Capitalize("mario"))
	assert.Equal(t, "McDonald", Capitalize("mcDonald"))
	assert.Equal(t, "Élise", Capitalize("élise"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "1up", Capitalize("1up"))
}

func TestHasHTTPScheme(t *testing.T) {
	assert.True(t, HasHTTPScheme("https://example.com/mario.png"))
	assert.True(t, HasHTTPScheme("HTTP://example.com/mario.png"))
	assert.False(t, HasHTTPScheme("ftp://example.com/mario.png"))
	assert.False(t, HasHTTPScheme("/static/mario.png"))
	assert.False(t, HasHTTPScheme("httpx"))
	assert.False(t, HasHTTPScheme(""))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Mar...", TruncateString("Mario Bros", 3))
	assert.Equal(t, "Mario", TruncateString("Mario", 5))
}
