package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// boardIDRegex matches valid board identifiers.
var boardIDRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateBoardID validates a board identifier for safety and correctness.
// Board IDs become storage keys (Mongo collection filters, Redis keys,
// file names in the CLI workflow), so the rules are intentionally
// conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateBoardID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidBoard, "board ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidBoard, "board ID too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBoard, "board ID contains invalid control characters")
		}
	}

	if !boardIDRegex.MatchString(id) {
		return New(ErrCodeInvalidBoard, "invalid board ID: %q", id)
	}

	return nil
}

// shapeIDRegex matches valid shape handles: an optional "shape:" prefix
// followed by a UUID-like or slug identifier.
var shapeIDRegex = regexp.MustCompile(`^(shape:)?[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateShapeID validates a shape handle supplied by a caller.
// Handles appear in URLs and store queries, so the same conservative
// rules apply as for board IDs.
func ValidateShapeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidShape, "shape ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidShape, "shape ID too long (max 128 characters)")
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidShape, "shape ID cannot contain path separators")
	}

	if !shapeIDRegex.MatchString(id) {
		return New(ErrCodeInvalidShape, "invalid shape ID: %q", id)
	}

	return nil
}
