package services

import (
	"fmt"
	"strings"
)

// FormatHashtag formats a tag value as a hashtag for share links. It
// keeps letters, numbers, and underscores, lowercases the result, and
// returns "" for tags that would start with a digit.
func FormatHashtag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	var result strings.Builder
	for _, r := range tag {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			result.WriteRune(r)
		}
	}

	formatted := strings.ToLower(result.String())
	if len(formatted) > 0 && formatted[0] >= '0' && formatted[0] <= '9' {
		return ""
	}
	return formatted
}

// BuildPostURL constructs a public permalink for one archive post.
// Returns "" when either part is missing so callers can omit the field.
func BuildPostURL(baseURL, postID string) string {
	if baseURL == "" || postID == "" {
		return ""
	}
	return fmt.Sprintf("%s/blog/%s", strings.TrimSuffix(baseURL, "/"), postID)
}
