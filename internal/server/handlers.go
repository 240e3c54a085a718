package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zmckinney22/CS410-Group-Project/internal/clients"
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
	"github.com/zmckinney22/CS410-Group-Project/internal/summary"
)

type analyzeRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "body must be JSON with a url field",
		})
	}
	if strings.TrimSpace(req.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "url is required",
		})
	}

	postID, err := clients.ParsePostID(req.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "not a Reddit post URL",
		})
	}

	ctx := c.Request().Context()
	if s.cache != nil {
		if cached, ok := s.cache.GetSummary(ctx, postID); ok {
			slog.Info("[Server] Serving cached summary",
				slog.String("post_id", postID))
			return c.JSON(http.StatusOK, cached)
		}
	}

	thread, err := s.fetcher.FetchThread(ctx, postID)
	if err != nil {
		slog.Error("[Server] Reddit fetch failed",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "Reddit fetch failed",
		})
	}

	agg := sentiment.Summarize(thread, s.lexicon, s.params)
	result := summary.Assemble(thread.Post, agg)

	if s.cache != nil {
		s.cache.StoreSummary(ctx, postID, result)
	}

	slog.Info("[Server] Analyzed thread",
		slog.String("post_id", postID),
		slog.Int("comments", agg.Total),
		slog.String("overall", agg.Overall.String()))
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleHealth(c echo.Context) error {
	weighted := "disabled"
	if s.lexicon.HasWeighted() {
		weighted = "ok"
	} else if reason := s.lexicon.Degraded(); reason != "" {
		weighted = "degraded: " + reason
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":           "ok",
		"uptime":           time.Since(s.startTime).Seconds(),
		"weighted_lexicon": weighted,
	})
}
