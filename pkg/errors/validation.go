package errors

import "unicode"

// maxVertexIDLength bounds vertex identifiers read from definition files.
// Long IDs are almost certainly malformed input and would bloat every
// dimension-vector table and DOT label downstream.
const maxVertexIDLength = 128

// ValidateVertexID validates a vertex identifier from an external quiver
// definition.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters (they corrupt DOT output and log lines)
//   - Maximum length of 128 characters
func ValidateVertexID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidVertex, "vertex ID cannot be empty")
	}
	if len(id) > maxVertexIDLength {
		return New(ErrCodeInvalidVertex, "vertex ID too long (max %d characters)", maxVertexIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidVertex, "vertex ID %q contains control characters", id)
		}
	}
	return nil
}
