package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/zmckinney22/CS410-Group-Project/internal/datasets"
	"github.com/zmckinney22/CS410-Group-Project/internal/logging"
)

// setup-lexicons downloads everything the engine needs to run: the Liu & Hu
// opinion lexicon, the SocialSent subreddit lexicons (converted to JSON),
// and optionally the SST-2 benchmark for evaluation.
func main() {
	dataDir := flag.String("data-dir", "data", "directory the datasets are written under")
	skipSocialSent := flag.Bool("skip-socialsent", false, "skip the SocialSent download (large zip)")
	withSST2 := flag.Bool("sst2", false, "also download the SST-2 benchmark splits")
	flag.Parse()

	logging.InitLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := datasets.SetupOpinionLexicon(ctx, *dataDir); err != nil {
		slog.Error("[Setup] Opinion lexicon failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !*skipSocialSent {
		if err := datasets.SetupSocialSent(ctx, *dataDir); err != nil {
			slog.Error("[Setup] SocialSent failed",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *withSST2 {
		if err := datasets.SetupSST2(ctx, *dataDir); err != nil {
			slog.Error("[Setup] SST-2 failed",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slog.Info("[Setup] Done", slog.String("data_dir", *dataDir))
}
