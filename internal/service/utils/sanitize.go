package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Sanitize strips all markup from user-supplied text. The API stores and
// serves plain text only, so any tags arriving here are never legitimate.
// Entities escaped by the policy are unescaped back to plain characters.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

// SanitizeAll sanitizes each element, keeping positions.
func SanitizeAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = Sanitize(s)
	}
	return out
}
