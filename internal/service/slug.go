package service

import (
	"regexp"
	"strings"
)

const (
	slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugSuffixLength   = 4
	maxSlugAttempts    = 10

	// fallbackSlug stands in for names with no usable characters
	fallbackSlug = "org"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the base tenant slug from an organization name
func Slugify(name string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return fallbackSlug
	}
	return slug
}
