package normalize

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// StripLinks keeps the display text of markdown links and drops bare URLs.
func StripLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// FlattenMarkdown renders Reddit markdown and reduces it to plain text.
// Used at the ingest boundary so comment bodies reach the pipeline as
// ordinary prose.
func FlattenMarkdown(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(rendered), " ")
	plain = html.UnescapeString(plain)
	plain = StripLinks(plain)
	return strings.Join(strings.Fields(plain), " ")
}
