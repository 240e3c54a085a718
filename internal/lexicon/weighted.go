package lexicon

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// loadWeighted attaches the SocialSent scores for the configured community,
// falling back to the general partition. Failure is not fatal: the lexicon
// degrades to binary-only scoring and exposes the reason.
func loadWeighted(lex *Lexicon, cfg Config) {
	name, path := resolveCommunity(cfg)

	scores, err := readWeighted(path)
	if err != nil && name != "" {
		slog.Warn("[LexiconStore] Community lexicon unavailable, falling back to general",
			slog.String("community", name),
			slog.String("error", err.Error()))
		name = ""
		scores, err = readWeighted(filepath.Join(cfg.WeightedDir, generalLexiconFile))
	}
	if err != nil {
		lex.degraded = fmt.Sprintf("weighted lexicon unavailable: %v", err)
		slog.Warn("[LexiconStore] Weighted scoring disabled, using binary lexicon only",
			slog.String("reason", lex.degraded))
		return
	}

	lex.weighted = rescale(scores)
	lex.community = name
}

// resolveCommunity maps the configured community through the subreddit
// mapping file, when one exists, and returns the partition name and path.
func resolveCommunity(cfg Config) (string, string) {
	name := cfg.Community
	if name == "" {
		return "", filepath.Join(cfg.WeightedDir, generalLexiconFile)
	}

	var mapping map[string]string
	if raw, err := os.ReadFile(filepath.Join(cfg.WeightedDir, mappingFile)); err == nil {
		if err := json.Unmarshal(raw, &mapping); err != nil {
			slog.Warn("[LexiconStore] Ignoring malformed subreddit mapping",
				slog.String("error", err.Error()))
		}
	}
	if mapped, ok := mapping[name]; ok {
		name = mapped
	}
	return name, filepath.Join(cfg.WeightedDir, name+".json")
}

func readWeighted(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scores map[string]float64
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("empty lexicon %s", filepath.Base(path))
	}
	return scores, nil
}
