package jobsearch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SanitizeDescription reduces a listing description to plain text. Some
// boards return descriptions as HTML fragments; scripts, styles and tags
// are stripped and whitespace is collapsed to non-empty lines.
func SanitizeDescription(desc string) string {
	if !strings.Contains(desc, "<") {
		return cleanWhitespace(desc)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	if err != nil {
		return cleanWhitespace(desc)
	}
	doc.Find("script, style, noscript").Remove()
	return cleanWhitespace(doc.Text())
}

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, strings.Join(strings.Fields(line), " "))
		}
	}
	return strings.Join(cleaned, "\n")
}
