// Package normalize turns raw social-media text into the lowercase token
// stream the scorer consumes. The pipeline is pure: identical input always
// yields identical output.
package normalize

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+|www\.\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	charsetPattern    = regexp.MustCompile(`[^a-z_\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize runs the full cleaning pipeline and splits the result into
// tokens. Empty or unusable input yields an empty token slice.
func Normalize(text string) []string {
	cleaned := Clean(text)
	if cleaned == "" {
		return nil
	}
	return strings.Fields(cleaned)
}

// Clean applies the pipeline stages in order: lowercase, slang
// substitution, emoji-to-word conversion, URL/e-mail stripping, charset
// filtering (keeping underscore-joined canonical tokens), and whitespace
// collapsing.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(text)
	s = replaceSlang(s)
	s = demojize(s)
	s = urlPattern.ReplaceAllString(s, "")
	s = emailPattern.ReplaceAllString(s, "")
	s = charsetPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
