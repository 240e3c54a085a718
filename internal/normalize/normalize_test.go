package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanLowercasesAndStripsPunctuation(t *testing.T) {
	assert.Equal(t, "hello world", Clean("Hello WORLD!"))
}

func TestCleanStripsURLs(t *testing.T) {
	assert.Equal(t, "check this out", Clean("Check this out https://example.com/post"))
	assert.Equal(t, "see", Clean("see www.example.com"))
}

func TestCleanStripsEmails(t *testing.T) {
	assert.Equal(t, "mail me at", Clean("mail me at someone@example.com"))
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Clean("a\t b\n\n  c"))
}

func TestCleanDropsNumbersAndSymbols(t *testing.T) {
	assert.Equal(t, "i rate it", Clean("I rate it 10/10 ***"))
}

func TestCleanEmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("12345 !!! ???"))
}

func TestNormalizeTokenizes(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, Normalize("Hello, world."))
}

func TestNormalizeEmptyYieldsNil(t *testing.T) {
	assert.Nil(t, Normalize(""))
	assert.Nil(t, Normalize("   \n\t "))
}

func TestSlangSubstitution(t *testing.T) {
	cases := map[string]string{
		"lol that was wild":  "funny that was wild",
		"this is sus":        "this is suspicious",
		"that story is cap":  "that story is lie",
		"smh at this thread": "disappointed at this thread",
		"lowkey impressive":  "slightly impressive",
	}
	for in, want := range cases {
		assert.Equal(t, want, Clean(in), "input %q", in)
	}
}

func TestMultiWordSlangWinsOverPrefix(t *testing.T) {
	// "no cap" must be rewritten as a unit before "cap" alone applies.
	assert.Equal(t, "truth that happened", Clean("no cap that happened"))
	assert.Equal(t, "returning in five", Clean("be right back in five"))
}

func TestSlangIsWholeWordOnly(t *testing.T) {
	// "capital" contains "cap" but must survive untouched.
	assert.Equal(t, "capital city", Clean("capital city"))
}

func TestEmojiConversion(t *testing.T) {
	assert.Equal(t, "funny", Clean("😂"))
	assert.Equal(t, "very_sad", Clean("😭"))
	assert.Equal(t, "that movie was funny", Clean("that movie was 😂"))
}

func TestUnknownEmojiLeavesNoGarbage(t *testing.T) {
	// A glyph without a word mapping degrades to its underscore-joined
	// code after charset filtering, never to raw bytes.
	got := Clean("nice 🚀")
	assert.Contains(t, got, "nice")
	assert.NotContains(t, got, "🚀")
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"Hello WORLD!",
		"lol no cap 😂 check https://example.com",
		"smh... 10/10 would not recommend",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}

func TestStripLinksKeepsDisplayText(t *testing.T) {
	assert.Equal(t, "the docs say so",
		StripLinks("the [docs](https://docs.example.com/page) say so"))
}

func TestFlattenMarkdown(t *testing.T) {
	got := FlattenMarkdown("**bold** and *italic* with [a link](https://example.com)")
	assert.Equal(t, "bold and italic with a link", got)
}

func TestFlattenMarkdownLists(t *testing.T) {
	got := FlattenMarkdown("- first point\n- second point")
	assert.Equal(t, "first point second point", got)
}
