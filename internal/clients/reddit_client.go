package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/zmckinney22/CS410-Group-Project/internal/models"
	"github.com/zmckinney22/CS410-Group-Project/internal/normalize"
)

const (
	REDDIT_AUTH_URL = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL  = "https://oauth.reddit.com"
)

var (
	redditClientInstance *RedditClient
	redditClientOnce     sync.Once
	redditRateLimitMutex sync.Mutex

	postIDPattern = regexp.MustCompile(`/comments/([a-z0-9]+)`)
	bareIDPattern = regexp.MustCompile(`^[a-z0-9]+$`)
)

type RedditClient struct {
	Config *clientcredentials.Config
	Client *http.Client
	mu     *sync.Mutex
}

func GetRedditClient() *RedditClient {
	redditClientOnce.Do(func() {
		oauthConf := &clientcredentials.Config{
			ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
			ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
			TokenURL:     REDDIT_AUTH_URL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}

		redditClientInstance = &RedditClient{
			Config: oauthConf,
			Client: oauthConf.Client(context.Background()),
			mu:     &sync.Mutex{},
		}
	})

	return redditClientInstance
}

func (rc *RedditClient) RefreshClient() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Client = rc.Config.Client(context.Background())
}

// ParsePostID extracts the submission id from a Reddit post URL. A bare id
// is accepted as-is.
func ParsePostID(raw string) (string, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if m := postIDPattern.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if bareIDPattern.MatchString(raw) {
		return raw, nil
	}
	return "", fmt.Errorf("[RedditClient] Not a Reddit post URL or id: %q", raw)
}

// FetchThread fetches one submission plus its comment listing and maps it
// into a Thread value with markdown flattened to plain text.
func (rc *RedditClient) FetchThread(ctx context.Context, postID string) (models.Thread, error) {
	body, err := rc.fetchCommentListing(ctx, postID)
	if err != nil {
		return models.Thread{}, err
	}

	var listings []models.RedditListing
	if err := json.Unmarshal(body, &listings); err != nil {
		return models.Thread{}, fmt.Errorf("[RedditClient] Failed to decode listing: %w", err)
	}
	if len(listings) < 2 || len(listings[0].Data.Children) == 0 {
		return models.Thread{}, fmt.Errorf("[RedditClient] Unexpected listing shape for post %s", postID)
	}

	return buildThread(listings), nil
}

func (rc *RedditClient) fetchCommentListing(ctx context.Context, postID string) ([]byte, error) {
	parsedUrl, err := url.Parse(fmt.Sprintf("%s/comments/%s", REDDIT_API_URL, postID))
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("limit", "500")
	queryParams.Add("raw_json", "1")
	parsedUrl.RawQuery = queryParams.Encode()

	redditRateLimitMutex.Lock()
	time.Sleep(INITIAL_BACKOFF)
	redditRateLimitMutex.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedUrl.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		slog.Warn("[RedditClient] Token expired - Refreshing and Retrying...")
		rc.RefreshClient()
		return rc.fetchCommentListing(ctx, postID)
	case http.StatusTooManyRequests:
		slog.Warn("[RedditClient] 429 Too Many Requests - Retrying with backoff")
		return rc.retryWithBackoff(ctx, postID)
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	}
	return nil, fmt.Errorf("[RedditClient] Unexpected status %d for post %s", resp.StatusCode, postID)
}

func (rc *RedditClient) retryWithBackoff(ctx context.Context, postID string) ([]byte, error) {
	backoff := INITIAL_BACKOFF
	for i := 1; i < MAX_RETRIES; i++ {
		slog.Warn("[RedditClient] Retrying request",
			slog.Int("attempt", i), slog.Duration("backoff", backoff))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}

		data, err := rc.fetchCommentListing(ctx, postID)
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("[RedditClient] Max retries reached request failed")
}

// buildThread maps the two-listing response (submission, comment tree)
// into a Thread. Deleted, removed, blank, and duplicate comments are
// dropped; replies are flattened in listing order up to MAX_COMMENTS.
func buildThread(listings []models.RedditListing) models.Thread {
	postData := listings[0].Data.Children[0].Data
	post := models.Post{
		PostID:      postData.ID,
		Subreddit:   postData.Subreddit,
		Title:       strings.TrimSpace(postData.Title),
		Selftext:    normalize.FlattenMarkdown(postData.Selftext),
		Score:       postData.Score,
		NumComments: postData.NumComments,
		CreatedAt:   time.Unix(int64(postData.CreatedUTC), 0).UTC(),
	}

	seen := make(map[string]struct{})
	comments := make([]models.Comment, 0, len(listings[1].Data.Children))
	collectComments(listings[1].Data.Children, &comments, seen)

	return models.Thread{Post: post, Comments: comments}
}

func collectComments(children []models.RedditAPIChild, comments *[]models.Comment, seen map[string]struct{}) {
	for _, child := range children {
		if len(*comments) >= MAX_COMMENTS {
			return
		}
		// "more" stubs and anything that is not a comment are skipped.
		if child.Kind != "t1" {
			continue
		}

		data := child.Data
		if _, dup := seen[data.ID]; dup {
			continue
		}
		seen[data.ID] = struct{}{}

		body := strings.TrimSpace(data.Body)
		if body != "" && body != "[deleted]" && body != "[removed]" {
			*comments = append(*comments, models.Comment{
				CommentID: data.ID,
				Body:      normalize.FlattenMarkdown(body),
				Score:     data.Score,
				CreatedAt: time.Unix(int64(data.CreatedUTC), 0).UTC(),
			})
		}

		if len(data.Replies) > 0 && data.Replies[0] == '{' {
			var replies models.RedditListing
			if err := json.Unmarshal(data.Replies, &replies); err != nil {
				slog.Warn("[RedditClient] Skipping malformed reply listing",
					slog.String("comment_id", data.ID),
					slog.String("error", err.Error()))
				continue
			}
			collectComments(replies.Data.Children, comments, seen)
		}
	}
}
