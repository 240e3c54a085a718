package datasets

import (
	"archive/zip"
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// subredditMapping points common subreddits at the closest available
// SocialSent community lexicon.
var subredditMapping = map[string]string{
	// Technical communities
	"python":           "programming",
	"learnprogramming": "programming",
	"webdev":           "programming",

	// General discussion
	"AskReddit":        "funny",
	"unpopularopinion": "changemyview",
	"ChangeMyView":     "changemyview",

	// Entertainment
	"movies": "movies",
	"gaming": "gaming",

	// News / politics
	"politics":      "politics",
	"news":          "news",
	"AmItheAsshole": "relationships",
}

// generalLexiconSources are the diverse communities averaged into the
// fallback lexicon used when no subreddit-specific one applies.
var generalLexiconSources = []string{
	"AskReddit", "funny", "pics", "todayilearned", "worldnews",
	"videos", "IAmA", "gaming", "movies", "Music",
}

// SetupSocialSent downloads the SocialSent subreddit lexicons, converts
// every text lexicon to JSON under dataDir/socialsent, writes the
// subreddit mapping, and builds the averaged general lexicon.
func SetupSocialSent(ctx context.Context, dataDir string) error {
	outDir := filepath.Join(dataDir, "socialsent")
	tempDir := filepath.Join(dataDir, "temp")
	for _, dir := range []string{outDir, tempDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	zipPath := filepath.Join(tempDir, "socialsent_subreddits.zip")
	if _, err := os.Stat(zipPath); err != nil {
		if err := downloadFile(ctx, socialSentURL, zipPath); err != nil {
			return fmt.Errorf("datasets: socialsent download: %w", err)
		}
	}

	converted, err := convertArchive(zipPath, outDir)
	if err != nil {
		return err
	}
	slog.Info("[Datasets] Converted SocialSent lexicons",
		slog.Int("count", converted))

	if err := writeSubredditMapping(outDir); err != nil {
		return err
	}
	if err := buildGeneralLexicon(outDir); err != nil {
		return err
	}

	// The zip is large; keep only the converted JSON.
	if err := os.Remove(zipPath); err != nil {
		slog.Warn("[Datasets] Could not remove zip",
			slog.String("error", err.Error()))
	}
	return nil
}

func convertArchive(zipPath, outDir string) (int, error) {
	archive, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, fmt.Errorf("datasets: open socialsent zip: %w", err)
	}
	defer archive.Close()

	converted := 0
	for _, file := range archive.File {
		name := filepath.Base(file.Name)
		if file.FileInfo().IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		count, err := convertLexicon(file, filepath.Join(outDir, stem+".json"))
		if err != nil {
			slog.Warn("[Datasets] Skipping lexicon",
				slog.String("file", name),
				slog.String("error", err.Error()))
			continue
		}
		if count > 0 {
			converted++
		}
	}
	return converted, nil
}

// convertLexicon parses "word<sep>score" lines (tab or space separated)
// and writes a JSON mapping. Scores far outside [-1,1] are rescaled by the
// maximum absolute value.
func convertLexicon(file *zip.File, outPath string) (int, error) {
	r, err := file.Open()
	if err != nil {
		return 0, err
	}
	defer r.Close()

	lexicon := make(map[string]float64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		lexicon[fields[0]] = score
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if len(lexicon) == 0 {
		return 0, nil
	}

	maxAbs := 0.0
	for _, s := range lexicon {
		if a := math.Abs(s); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > 10 {
		for w, s := range lexicon {
			lexicon[w] = s / maxAbs
		}
	}

	return len(lexicon), writeJSON(outPath, lexicon)
}

func writeSubredditMapping(outDir string) error {
	return writeJSON(filepath.Join(outDir, "subreddit_mapping.json"), subredditMapping)
}

// buildGeneralLexicon averages word scores across a diverse set of
// communities into reddit_general.json, the fallback partition.
func buildGeneralLexicon(outDir string) error {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, name := range generalLexiconSources {
		raw, err := os.ReadFile(filepath.Join(outDir, name+".json"))
		if err != nil {
			continue
		}
		var lexicon map[string]float64
		if err := json.Unmarshal(raw, &lexicon); err != nil {
			continue
		}
		for word, score := range lexicon {
			sums[word] += score
			counts[word]++
		}
	}

	if len(sums) == 0 {
		return fmt.Errorf("datasets: no source lexicons found for the general lexicon")
	}

	general := make(map[string]float64, len(sums))
	for word, sum := range sums {
		general[word] = sum / float64(counts[word])
	}

	slog.Info("[Datasets] Built general lexicon",
		slog.Int("words", len(general)),
		slog.Int("sources", len(generalLexiconSources)))
	return writeJSON(filepath.Join(outDir, "reddit_general.json"), general)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
