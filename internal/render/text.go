// Package render holds the plain-text presentation shared by the CLI
// and the web download path.
package render

import (
	"fmt"
	"strings"

	"github.com/adcopy-studio/backend/internal/models"
)

// NormalizeHashtag strips any '#' and spaces from a tag and re-prefixes
// it, so " marketing " and "#marketing" both render as "#marketing".
func NormalizeHashtag(tag string) string {
	tag = strings.ReplaceAll(tag, "#", "")
	tag = strings.ReplaceAll(tag, " ", "")
	return "#" + tag
}

// Hashtags renders a space-separated normalized hashtag line.
func Hashtags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, NormalizeHashtag(t))
	}
	return strings.Join(out, " ")
}

// Text is the flat-file layout used for saves and downloads.
func Text(ad models.AdCopy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "HEADLINE: %s\n\n", ad.Headline)
	fmt.Fprintf(&b, "DESCRIPTION: %s\n\n", ad.Description)
	fmt.Fprintf(&b, "HASHTAGS: %s\n\n", Hashtags(ad.Hashtags))
	fmt.Fprintf(&b, "CALL TO ACTION: %s", ad.CTA)
	return b.String()
}

// Block is the decorated terminal output of the CLI.
func Block(ad models.AdCopy) string {
	rule := strings.Repeat("=", 50)
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "HEADLINE:\n%s\n\n", ad.Headline)
	fmt.Fprintf(&b, "DESCRIPTION:\n%s\n\n", ad.Description)
	fmt.Fprintf(&b, "HASHTAGS:\n%s\n\n", Hashtags(ad.Hashtags))
	fmt.Fprintf(&b, "CALL TO ACTION:\n%s\n", ad.CTA)
	b.WriteString(rule)
	return b.String()
}

// FileName derives the save/download file name from the brand name.
func FileName(brand string) string {
	s := strings.ToLower(strings.TrimSpace(brand))
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		name = "ad"
	}
	return name + "_marketing_copy.txt"
}
