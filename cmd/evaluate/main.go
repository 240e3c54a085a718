package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zmckinney22/CS410-Group-Project/config"
	"github.com/zmckinney22/CS410-Group-Project/internal/evaluation"
	"github.com/zmckinney22/CS410-Group-Project/internal/lexicon"
	"github.com/zmckinney22/CS410-Group-Project/internal/logging"
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
)

// evaluate runs the lexicon engine and the VADER baseline over a labeled
// dataset and prints side-by-side metrics. Results are also written as
// JSON for later comparison runs.
func main() {
	dataDir := flag.String("data-dir", "data", "root of the downloaded datasets")
	comments := flag.String("comments", "", "labeled comments CSV/TSV (comment_id,text,manual_label,post_id)")
	posts := flag.String("posts", "", "posts CSV/TSV mapping post_id to subreddit")
	sst2 := flag.String("sst2", "", "SST-2 TSV file to evaluate instead of labeled comments")
	useWeighted := flag.Bool("weighted", false, "blend SocialSent community weights into scoring")
	perCommunity := flag.Bool("per-community", false, "load a community lexicon per example subreddit")
	out := flag.String("out", "", "write results JSON to this path")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	examples, err := loadExamples(*comments, *posts, *sst2)
	if err != nil {
		slog.Error("[Evaluate] Failed to load dataset",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(examples) == 0 {
		slog.Error("[Evaluate] Dataset is empty")
		os.Exit(1)
	}
	slog.Info("[Evaluate] Loaded examples", slog.Int("count", len(examples)))

	params, err := sentiment.ParamsFromEnv()
	if err != nil {
		slog.Error("[Evaluate] Invalid engine configuration",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	params.UseWeighted = *useWeighted

	engine, err := evaluation.EngineClassifier(lexicon.Config{
		Dir:         filepath.Join(*dataDir, "opinion-lexicon-English"),
		UseWeighted: params.UseWeighted,
		WeightedDir: filepath.Join(*dataDir, "socialsent"),
		Community:   params.Community,
	}, params, *perCommunity)
	if err != nil {
		slog.Error("[Evaluate] Failed to build engine classifier",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	results := map[string]evaluation.Metrics{
		"engine": evaluation.Evaluate(examples, engine),
		"vader":  evaluation.Evaluate(examples, evaluation.VADERClassifier()),
	}

	for _, name := range []string{"engine", "vader"} {
		printMetrics(name, results[name])
	}

	if *out != "" {
		if err := writeResults(*out, results); err != nil {
			slog.Error("[Evaluate] Failed to write results",
				slog.String("path", *out),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("[Evaluate] Results written", slog.String("path", *out))
	}
}

func loadExamples(comments, posts, sst2 string) ([]evaluation.Example, error) {
	if sst2 != "" {
		return evaluation.LoadSST2(sst2)
	}
	if comments == "" {
		return nil, fmt.Errorf("either -comments or -sst2 is required")
	}
	return evaluation.LoadLabeledComments(comments, posts)
}

func printMetrics(name string, m evaluation.Metrics) {
	fmt.Printf("\n=== %s ===\n", name)
	fmt.Printf("examples:   %d\n", m.Total)
	fmt.Printf("accuracy:   %.4f\n", m.Accuracy)
	fmt.Printf("pos/neg F1: %.4f\n", m.PosNegF1)
	fmt.Printf("%-10s %10s %10s %10s\n", "class", "precision", "recall", "f1")
	for _, label := range sentiment.AllLabels() {
		c := m.Classes[label]
		fmt.Printf("%-10s %10.4f %10.4f %10.4f\n", label, c.Precision, c.Recall, c.F1)
	}
}

func writeResults(path string, results map[string]evaluation.Metrics) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
