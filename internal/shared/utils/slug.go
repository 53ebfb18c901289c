package utils

import "regexp"

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug reports whether s is lowercase-kebab: letters, digits, hyphens.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
