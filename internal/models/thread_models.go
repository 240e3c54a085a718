package models

import "time"

// Post holds the metadata of a single Reddit submission.
type Post struct {
	PostID      string    `json:"post_id"`
	Subreddit   string    `json:"subreddit"`
	Title       string    `json:"title"`
	Selftext    string    `json:"selftext"`
	Score       int       `json:"score"`
	NumComments int       `json:"num_comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// Comment is a single comment body with its vote score.
// A missing score on the wire decodes to 0.
type Comment struct {
	CommentID string    `json:"comment_id"`
	Body      string    `json:"body"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Thread is one post plus its comments in collection order. The order is
// whatever the listing returned, not necessarily chronological.
type Thread struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}
