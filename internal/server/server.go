// Package server is the HTTP boundary: it accepts a Reddit post URL,
// drives the fetch-analyze-assemble flow, and returns the summary. No
// scoring logic lives here.
package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zmckinney22/CS410-Group-Project/internal/lexicon"
	"github.com/zmckinney22/CS410-Group-Project/internal/models"
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
)

// ThreadFetcher produces a materialized Thread for a post id. Satisfied by
// the Reddit client; faked in tests.
type ThreadFetcher interface {
	FetchThread(ctx context.Context, postID string) (models.Thread, error)
}

// SummaryCache memoizes assembled summaries. A nil cache disables
// memoization.
type SummaryCache interface {
	GetSummary(ctx context.Context, postID string) (models.AnalysisSummary, bool)
	StoreSummary(ctx context.Context, postID string, summary models.AnalysisSummary)
}

type Server struct {
	echo      *echo.Echo
	lexicon   *lexicon.Lexicon
	params    sentiment.Params
	fetcher   ThreadFetcher
	cache     SummaryCache
	startTime time.Time
}

func New(lex *lexicon.Lexicon, params sentiment.Params, fetcher ThreadFetcher, cache SummaryCache) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:      e,
		lexicon:   lex,
		params:    params,
		fetcher:   fetcher,
		cache:     cache,
		startTime: time.Now(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.POST("/api/analyze", s.handleAnalyze)
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
