package clients

import "time"

const (
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second
	USER_AGENT      = "thread-sentiment-bot/0.1 (+https://github.com/zmckinney22/CS410-Group-Project)"
	MAX_COMMENTS    = 500
)
