package requestid

import (
	"strings"

	"github.com/google/uuid"
)

const separator = ","

// canonicalUUIDLen is the length of xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
const canonicalUUIDLen = 36

// Tokens splits a header value on commas. No whitespace is trimmed and empty
// elements are kept, so "" yields a single empty token.
func Tokens(value string) []string {
	return strings.Split(value, separator)
}

// ParseUUIDv4 reports whether token is a version 4 UUID in canonical
// hyphenated form. Braced, URN and unhyphenated encodings are rejected.
func ParseUUIDv4(token string) (uuid.UUID, bool) {
	if len(token) != canonicalUUIDLen {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, false
	}
	if id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		return uuid.Nil, false
	}
	return id, true
}

// IsUnique reports whether token can be trusted as a unique request ID.
// The prefix matches anywhere in the token, not only at its start.
// An empty prefix disables the prefix rule.
func IsUnique(token, prefix string) bool {
	if prefix != "" && strings.Contains(token, prefix) {
		return true
	}
	_, ok := ParseUUIDv4(token)
	return ok
}
