package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zmckinney22/CS410-Group-Project/config"
	"github.com/zmckinney22/CS410-Group-Project/internal/clients"
	"github.com/zmckinney22/CS410-Group-Project/internal/lexicon"
	"github.com/zmckinney22/CS410-Group-Project/internal/logging"
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
	"github.com/zmckinney22/CS410-Group-Project/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	params, err := sentiment.ParamsFromEnv()
	if err != nil {
		slog.Error("[Main] Invalid engine configuration",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	lex, err := lexicon.Load(lexicon.Config{
		Dir:         envOr("LEXICON_DIR", "data/opinion-lexicon-English"),
		UseWeighted: params.UseWeighted,
		WeightedDir: envOr("SOCIALSENT_DIR", "data/socialsent"),
		Community:   params.Community,
	})
	if err != nil {
		slog.Error("[Main] Failed to load base lexicon",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cache server.SummaryCache
	if vc, err := clients.InitValkey(); err != nil {
		slog.Warn("[Main] Valkey unavailable, running without summary cache",
			slog.String("error", err.Error()))
	} else {
		cache = vc
		defer clients.CloseValkey()
	}

	srv := server.New(lex, params, clients.GetRedditClient(), cache)

	addr := envOr("HTTP_ADDR", ":8000")
	go func() {
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()
	slog.Info("[Main] Listening", slog.String("addr", addr))

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Main] Shutdown failed",
			slog.String("error", err.Error()))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
