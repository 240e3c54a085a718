package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/zmckinney22/CS410-Group-Project/internal/models"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
	valkeyInitErr  error
)

type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

const (
	summaryKeyPrefix  = "threads:summary:"
	summaryTTLSeconds = 1800
)

// InitValkey connects the shared Valkey client used to memoize analysis
// summaries. The cache is optional: callers should treat an error as
// "run without caching", not as fatal.
func InitValkey() (*ValkeyClient, error) {
	valkeyOnce.Do(func() {
		client, err := newValkeyClient()
		if err != nil {
			valkeyInitErr = err
			return
		}
		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance, valkeyInitErr
}

func newValkeyClient() (valkey.Client, error) {
	valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
	if valkeyAddr == "" {
		return nil, fmt.Errorf("[ValkeyClient] VALKEY_INIT_ADDRESS not set")
	}
	valkeyPassword := os.Getenv("VALKEY_PASSWORD")
	useTLS := os.Getenv("VALKEY_TLS") == "true"

	opts := valkey.ClientOption{
		InitAddress: []string{
			valkeyAddr,
		},
		Password:         valkeyPassword,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if c := client.Do(ctx, client.B().Ping().Build()); c.Error() != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", c.Error())
	}
	return client, nil
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	vc.Client.Close()

	client, err := newValkeyClient()
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed",
			slog.String("error", err.Error()))
		return
	}
	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
	vc.Client = client
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// GetSummary returns a memoized analysis summary for the post, if one is
// cached. Any cache error is treated as a miss.
func (vc *ValkeyClient) GetSummary(ctx context.Context, postID string) (models.AnalysisSummary, bool) {
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(summaryKeyPrefix+postID).Build(), 3)
	if err := res.Error(); err != nil {
		if isConnectionError(err) {
			vc.recreateClient()
		}
		return models.AnalysisSummary{}, false
	}

	raw, err := res.AsBytes()
	if err != nil {
		return models.AnalysisSummary{}, false
	}

	var cached models.AnalysisSummary
	if err := json.Unmarshal(raw, &cached); err != nil {
		slog.Warn("[ValkeyClient] Dropping malformed cached summary",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return models.AnalysisSummary{}, false
	}
	return cached, true
}

// StoreSummary memoizes an analysis summary with a short TTL. Failures are
// logged and ignored: caching is best-effort.
func (vc *ValkeyClient) StoreSummary(ctx context.Context, postID string, summary models.AnalysisSummary) {
	raw, err := json.Marshal(summary)
	if err != nil {
		slog.Warn("[ValkeyClient] Failed to encode summary for cache",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return
	}

	cmd := vc.Client.B().Set().Key(summaryKeyPrefix + postID).Value(string(raw)).
		ExSeconds(summaryTTLSeconds).Build()
	if res := vc.DoWithRetry(ctx, cmd, 3); res.Error() != nil {
		slog.Warn("[ValkeyClient] Failed to cache summary",
			slog.String("post_id", postID),
			slog.String("error", res.Error().Error()))
		if isConnectionError(res.Error()) {
			vc.recreateClient()
		}
	}
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
