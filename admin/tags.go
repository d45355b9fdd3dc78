// Package admin holds the settings editors: form parsing, validation and image-bearing saves.
package admin

import "strings"

// ParseTags splits comma separated input into tags. Blank segments are dropped; order and
// duplicates are kept.
func ParseTags(input string) []string {
	tags := []string{}
	for _, part := range strings.Split(input, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags renders tags back into the text the editor shows.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
