package models

import "strings"

// ParseTags splits a comma-delimited tag string and trims every segment.
// Blank input yields an empty, non-nil slice. Segments that trim down to
// nothing are kept so the result lines up with what was typed.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tags = append(tags, strings.TrimSpace(part))
	}
	return tags
}

// JoinTags renders tags back into the form used by ParseTags.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
