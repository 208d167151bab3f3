package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a person identifier from an org file.
// Identifiers become Graphviz node names and file content, so the rules are
// intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeValidation, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeValidation, "node id too long (max 256 characters): %q", id[:32]+"...")
	}

	for _, r := range id {
		if unicode.IsControl(r) && r != '\n' {
			return New(ErrCodeValidation, "node id contains invalid control characters: %q", id)
		}
	}

	return nil
}

// ValidateOutputPath validates a destination path for exported files.
// It rejects empty paths, null bytes, and paths that are obviously
// directories rather than files.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeIO, "output path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeIO, "output path contains a null byte")
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeIO, "output path is a directory: %q", path)
	}

	return nil
}
