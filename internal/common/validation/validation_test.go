package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDisplayName(t *testing.T) {
	assert.EqualError(t, ValidateDisplayName(""), "displayName is required")
	assert.NoError(t, ValidateDisplayName("DJ Test"))
	assert.NoError(t, ValidateDisplayName(strings.Repeat("a", 101)))
	assert.NoError(t, ValidateDisplayName(strings.Repeat("ё", 500)))
}

func TestValidateFilename(t *testing.T) {
	assert.NoError(t, ValidateFilename("song.mp3"))
	assert.Error(t, ValidateFilename(""))
	assert.Error(t, ValidateFilename("../etc/passwd"))
	assert.Error(t, ValidateFilename(`a\b.mp3`))
	assert.Error(t, ValidateFilename(".."))
	assert.NoError(t, ValidateFilename(strings.Repeat("é", MaxFilenameLength)))
	assert.Error(t, ValidateFilename(strings.Repeat("a", MaxFilenameLength+1)))
}

func TestCleanDisplay(t *testing.T) {
	tests := map[string]string{
		"  The   Band  ":     "The Band",
		"AC/DC":              "ACDC",
		"Sigur Rós":          "Sigur Rs",
		"tab\tand\nnewline":  "tab and newline",
		"keep_this.and-that": "keep_this.and-that",
		"":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, CleanDisplay(in), in)
	}
}

func TestSlugKey(t *testing.T) {
	tests := map[string]string{
		"The Band":       "the_band",
		"  Lots   of  _": "lots_of",
		"___":            "unknown",
		"!!!":            "unknown",
		"":               "unknown",
		"Album_ _Two":    "album_two",
	}
	for in, want := range tests {
		assert.Equal(t, want, SlugKey(in), in)
	}
}

func TestIsAudioKey(t *testing.T) {
	assert.True(t, IsAudioKey("raw/a/b/1__song.mp3"))
	assert.True(t, IsAudioKey("raw/a/b/1__song.FLAC"))
	assert.False(t, IsAudioKey("raw/a/b/1__cover.jpg"))
	assert.False(t, IsAudioKey("raw/a/b/1__song.mp3__meta.json"))
}

func TestTitleFromKey(t *testing.T) {
	assert.Equal(t, "1700000000__song", TitleFromKey("raw/a/b/1700000000__song.mp3"))
	assert.Equal(t, "track", TitleFromKey("track"))
}
