package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/zmckinney22/CS410-Group-Project/config"
	"github.com/zmckinney22/CS410-Group-Project/internal/clients"
	"github.com/zmckinney22/CS410-Group-Project/internal/lexicon"
	"github.com/zmckinney22/CS410-Group-Project/internal/logging"
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
	"github.com/zmckinney22/CS410-Group-Project/internal/summary"
)

// analyze fetches a single Reddit thread, scores it, and prints the
// assembled summary as JSON. Useful for spot-checking without the server.
func main() {
	url := flag.String("url", "", "Reddit post URL or bare post id")
	community := flag.String("community", "", "override the community lexicon")
	timeout := flag.Duration("timeout", 60*time.Second, "fetch timeout")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if *url == "" {
		slog.Error("[Analyze] -url is required")
		os.Exit(1)
	}

	params, err := sentiment.ParamsFromEnv()
	if err != nil {
		slog.Error("[Analyze] Invalid engine configuration",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *community != "" {
		params.Community = *community
	}

	lex, err := lexicon.Load(lexicon.Config{
		Dir:         envOr("LEXICON_DIR", "data/opinion-lexicon-English"),
		UseWeighted: params.UseWeighted,
		WeightedDir: envOr("SOCIALSENT_DIR", "data/socialsent"),
		Community:   params.Community,
	})
	if err != nil {
		slog.Error("[Analyze] Failed to load lexicon",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	postID, err := clients.ParsePostID(*url)
	if err != nil {
		slog.Error("[Analyze] Could not parse post id",
			slog.String("url", *url),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	thread, err := clients.GetRedditClient().FetchThread(ctx, postID)
	if err != nil {
		slog.Error("[Analyze] Fetch failed",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	agg := sentiment.Summarize(thread, lex, params)
	result := summary.Assemble(thread.Post, agg)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("[Analyze] Encode failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
