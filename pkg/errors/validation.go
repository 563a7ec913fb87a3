package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Supported test-case file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// ValidateLevelCount checks that a level graph has at least one level.
func ValidateLevelCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidLevelCount, "number of levels must be at least 1, got %d", n)
	}
	return nil
}

// ValidateEdge checks that both endpoints of the i-th teleporter lie in
// [1, numLevels].
func ValidateEdge(i, from, to, numLevels int) error {
	if from < 1 || from > numLevels {
		return New(ErrCodeInvalidEdge, "edge %d (%d -> %d): source level %d outside [1, %d]", i, from, to, from, numLevels)
	}
	if to < 1 || to > numLevels {
		return New(ErrCodeInvalidEdge, "edge %d (%d -> %d): target level %d outside [1, %d]", i, from, to, to, numLevels)
	}
	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}

// FormatFromPath infers the test-case format from a file extension.
// Anything that is not .toml is read as JSON.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// ValidateFormat rejects unknown test-case formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatTOML:
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want %s or %s)", format, FormatJSON, FormatTOML)
}
