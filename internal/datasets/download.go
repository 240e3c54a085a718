// Package datasets fetches and prepares the lexicon and evaluation data
// the engine depends on: the Liu & Hu opinion lexicon, the SocialSent
// community lexicons, and the SST-2 benchmark split.
package datasets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	opinionLexiconBaseURL = "https://raw.githubusercontent.com/jeffreybreen/twitter-sentiment-analysis-tutorial-201107/master/data/opinion-lexicon-English"
	socialSentURL         = "https://nlp.stanford.edu/projects/socialsent/files/socialsent_subreddits.zip"
	sst2BaseURL           = "https://raw.githubusercontent.com/clairett/pytorch-sentiment-classification/master/data/SST2"

	downloadTimeout = 5 * time.Minute
)

// SetupOpinionLexicon downloads the binary opinion lexicon word lists into
// dataDir/opinion-lexicon-English. Existing files are kept.
func SetupOpinionLexicon(ctx context.Context, dataDir string) error {
	dir := filepath.Join(dataDir, "opinion-lexicon-English")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, name := range []string{"positive-words.txt", "negative-words.txt"} {
		dest := filepath.Join(dir, name)
		if _, err := os.Stat(dest); err == nil {
			slog.Info("[Datasets] Already present, skipping",
				slog.String("file", name))
			continue
		}
		if err := downloadFile(ctx, opinionLexiconBaseURL+"/"+name, dest); err != nil {
			return fmt.Errorf("datasets: opinion lexicon %s: %w", name, err)
		}
	}
	return nil
}

// SetupSST2 downloads the SST-2 dev and train splits into dataDir/sst2.
func SetupSST2(ctx context.Context, dataDir string) error {
	dir := filepath.Join(dataDir, "sst2")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, name := range []string{"dev.tsv", "train.tsv"} {
		dest := filepath.Join(dir, name)
		if _, err := os.Stat(dest); err == nil {
			slog.Info("[Datasets] Already present, skipping",
				slog.String("file", name))
			continue
		}
		if err := downloadFile(ctx, sst2BaseURL+"/"+name, dest); err != nil {
			return fmt.Errorf("datasets: sst2 %s: %w", name, err)
		}
	}
	return nil
}

func downloadFile(ctx context.Context, url, dest string) error {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	slog.Info("[Datasets] Downloading", slog.String("url", url))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}
