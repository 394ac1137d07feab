package validation

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxFilenameLength caps an uploaded file name in characters.
const MaxFilenameLength = 255

var (
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	unsafeRegex       = regexp.MustCompile(`[^a-zA-Z0-9 _.\-]`)
	underscoreRunRe   = regexp.MustCompile(`_+`)
	audioExtensionsRe = regexp.MustCompile(`(?i)\.(mp3|flac)$`)
)

// ValidateDisplayName checks an already trimmed artist display name. Any
// non-empty name is accepted.
func ValidateDisplayName(name string) error {
	if name == "" {
		return fmt.Errorf("displayName is required")
	}
	return nil
}

// ValidateFilename rejects names that would escape their key prefix.
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxFilenameLength {
		return fmt.Errorf("filename cannot exceed %d characters", MaxFilenameLength)
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return fmt.Errorf("invalid filename: %s", name)
	}
	return nil
}

// CleanDisplay collapses whitespace and keeps only letters, digits, space,
// underscore, dot and dash.
func CleanDisplay(s string) string {
	s = whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
	return unsafeRegex.ReplaceAllString(s, "")
}

// SlugKey turns a display value into an object key segment.
func SlugKey(s string) string {
	s = strings.ToLower(CleanDisplay(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = underscoreRunRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "unknown"
	}
	return s
}

// IsAudioKey reports whether an object key names a supported audio file.
func IsAudioKey(key string) bool {
	return audioExtensionsRe.MatchString(key)
}

// TitleFromKey is the file name of key without its extension.
func TitleFromKey(key string) string {
	base := path.Base(key)
	return strings.TrimSuffix(base, path.Ext(base))
}
