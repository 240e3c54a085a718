package datasets

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestZip(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicons.zip")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func readLexiconJSON(t *testing.T, path string) map[string]float64 {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var lexicon map[string]float64
	require.NoError(t, json.Unmarshal(raw, &lexicon))
	return lexicon
}

func TestConvertArchive(t *testing.T) {
	zipPath := writeTestZip(t, map[string]string{
		"subreddits/gaming.tsv": "fun\t1.2\nlame\t-0.8\n# comment line\n",
		"subreddits/.hidden":    "ignored",
		"subreddits/empty.tsv":  "\n\n",
	})
	outDir := t.TempDir()

	converted, err := convertArchive(zipPath, outDir)
	require.NoError(t, err)
	assert.Equal(t, 1, converted)

	lexicon := readLexiconJSON(t, filepath.Join(outDir, "gaming.json"))
	assert.InDelta(t, 1.2, lexicon["fun"], 1e-9)
	assert.InDelta(t, -0.8, lexicon["lame"], 1e-9)
	assert.NotContains(t, lexicon, "#")
}

func TestConvertArchiveRescalesWildScores(t *testing.T) {
	zipPath := writeTestZip(t, map[string]string{
		"raw.tsv": "good 50\nbad -25\n",
	})
	outDir := t.TempDir()

	_, err := convertArchive(zipPath, outDir)
	require.NoError(t, err)

	lexicon := readLexiconJSON(t, filepath.Join(outDir, "raw.json"))
	assert.InDelta(t, 1.0, lexicon["good"], 1e-9)
	assert.InDelta(t, -0.5, lexicon["bad"], 1e-9)
}

func TestBuildGeneralLexiconAverages(t *testing.T) {
	outDir := t.TempDir()
	for name, lexicon := range map[string]map[string]float64{
		"AskReddit": {"nice": 0.4, "rare": 1.0},
		"funny":     {"nice": 0.8},
	} {
		raw, err := json.Marshal(lexicon)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(outDir, name+".json"), raw, 0o644))
	}

	require.NoError(t, buildGeneralLexicon(outDir))

	general := readLexiconJSON(t, filepath.Join(outDir, "reddit_general.json"))
	assert.InDelta(t, 0.6, general["nice"], 1e-9)
	assert.InDelta(t, 1.0, general["rare"], 1e-9)
}

func TestBuildGeneralLexiconFailsWithoutSources(t *testing.T) {
	assert.Error(t, buildGeneralLexicon(t.TempDir()))
}

func TestWriteSubredditMapping(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, writeSubredditMapping(outDir))

	raw, err := os.ReadFile(filepath.Join(outDir, "subreddit_mapping.json"))
	require.NoError(t, err)
	var mapping map[string]string
	require.NoError(t, json.Unmarshal(raw, &mapping))
	assert.Equal(t, "programming", mapping["python"])
}
