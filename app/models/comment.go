package models

import "time"

// NewComment builds a comment from user input.
func NewComment(in CommentInput) *Comment {
	return &Comment{
		Name: in.Name,
		Text: in.Text,
	}
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}
