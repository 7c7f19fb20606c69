package profile

import "strings"

const (
	// DefaultIdentifier is used when the entered name is empty.
	DefaultIdentifier = "student"
	// MentorIdentifier is the reserved profile for the school mentor.
	MentorIdentifier = "mentor"

	dataPrefix        = "waw:profile:"
	currentProfileKey = "waw:current-profile"
)

// Normalize maps raw, user-entered text to a profile identifier: trimmed,
// lower-cased, with empty input falling back to DefaultIdentifier. Nothing
// disambiguates beyond case folding, so identical names share a profile.
func Normalize(raw string) string {
	id := strings.ToLower(strings.TrimSpace(raw))
	if id == "" {
		return DefaultIdentifier
	}
	return id
}

// StorageKeyFor maps a normalized identifier to its storage key. The
// mapping is injective: distinct identifiers never share a key.
func StorageKeyFor(id string) string {
	return dataPrefix + id
}
