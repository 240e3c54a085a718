package lexicon

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Config points the store at its word-list sources.
type Config struct {
	// Dir holds the base opinion lexicon (positive-words.txt,
	// negative-words.txt).
	Dir string

	// UseWeighted enables the SocialSent community lexicons.
	UseWeighted bool

	// WeightedDir holds the converted SocialSent JSON files plus the
	// subreddit mapping.
	WeightedDir string

	// Community selects a weighted-lexicon partition (a subreddit name).
	// Empty or unknown communities fall back to the general partition.
	Community string
}

const (
	positiveWordsFile  = "positive-words.txt"
	negativeWordsFile  = "negative-words.txt"
	generalLexiconFile = "reddit_general.json"
	mappingFile        = "subreddit_mapping.json"
)

// Load builds the Lexicon for the given configuration. A missing base list
// is fatal; a missing or malformed weighted lexicon degrades to binary-only
// scoring and records the reason on the returned Lexicon.
func Load(cfg Config) (*Lexicon, error) {
	positive, err := readWordList(filepath.Join(cfg.Dir, positiveWordsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingBase, err)
	}
	negative, err := readWordList(filepath.Join(cfg.Dir, negativeWordsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingBase, err)
	}

	lex := New(positive, negative, nil)
	if n := len(lex.removedOverlap); n > 0 {
		sort.Strings(lex.removedOverlap)
		slog.Warn("[LexiconStore] Removed overlapping words from both polarity sets",
			slog.Int("count", n),
			slog.String("words", strings.Join(lex.removedOverlap, " ")))
	}

	if cfg.UseWeighted {
		loadWeighted(lex, cfg)
	}

	pos, neg, weighted := lex.Sizes()
	slog.Info("[LexiconStore] Lexicon ready",
		slog.Int("positive", pos),
		slog.Int("negative", neg),
		slog.Int("weighted", weighted),
		slog.String("community", lex.community))
	return lex, nil
}

// readWordList reads one word per line, skipping blank lines and comment
// lines starting with ';' or '#'. Word forms are lowercased.
func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
