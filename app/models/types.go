package models

import "time"

// Post represents a blog post with comments.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment represents a comment on a blog post. It has no identity of its own
// and is addressed by its position in the parent post.
type Comment struct {
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PostInput carries the user-submitted fields of a post. Tags is the raw
// comma-delimited string as typed into the form.
type PostInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
	Tags     string `json:"tags"`
}

// CommentInput carries the user-submitted fields of a comment.
type CommentInput struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}
