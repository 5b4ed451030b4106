package textclean

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern = regexp.MustCompile(`@[A-Za-z0-9_]+`)
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	nonLetter      = regexp.MustCompile(`[^a-z\s]+`)
)

// RemoveLinks drops raw URLs and unwraps markdown links, keeping only the
// link text.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and strips the resulting markup,
// leaving plain text. Reddit and similar sources deliver markdown bodies.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(output), " ")
	return html.UnescapeString(plain)
}

// Clean normalizes a raw post for feature extraction: markdown and links
// go first, then mentions, then everything outside lowercase letters and
// whitespace, and finally runs of whitespace collapse to single spaces.
// Clean is idempotent: its output passes through unchanged.
func Clean(input string) string {
	text := ConvertMarkdownToText(input)
	text = RemoveLinks(text)
	text = mentionPattern.ReplaceAllString(text, "")
	text = strings.ToLower(text)
	text = nonLetter.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
