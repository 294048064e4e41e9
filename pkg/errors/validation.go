package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSourceBytes bounds the size of a wireframe document accepted by the
// pipeline. Parsing itself has no limit.
const MaxSourceBytes = 1 << 20

// ValidateSource rejects input the parser should never see: oversized,
// non-UTF-8 or NUL-bearing text. Structure is checked by the parser.
func ValidateSource(src string) error {
	if len(src) > MaxSourceBytes {
		return New(ErrCodeInvalidInput, "document too large (max %d bytes)", MaxSourceBytes)
	}
	if !utf8.ValidString(src) {
		return New(ErrCodeInvalidInput, "document is not valid UTF-8")
	}
	if strings.ContainsRune(src, '\x00') {
		return New(ErrCodeInvalidInput, "document contains null bytes")
	}
	return nil
}

// documentNameRegex matches names usable as output file stems and cache scopes.
var documentNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateDocumentName validates a document name used for output files and
// cache scoping.
func ValidateDocumentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "document name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "document name too long (max 128 characters)")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "document name cannot contain %q", "..")
	}
	if !documentNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid document name: %q", name)
	}
	return nil
}

// ValidateOutputPath rejects empty, overlong or control-character paths
// before the CLI writes an artifact.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}
	return nil
}
