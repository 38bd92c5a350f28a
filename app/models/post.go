package models

import (
	"errors"
	"slices"
	"time"
)

// NewPost builds an unsaved post from user input. The ID is assigned by the
// repository.
func NewPost(in PostInput) *Post {
	post := &Post{Comments: []Comment{}}
	post.Apply(in)
	return post
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}

// Apply replaces the editable fields wholesale. Tags are re-derived from the
// raw input, never merged with the previous set.
func (p *Post) Apply(in PostInput) {
	p.Title = in.Title
	p.Content = in.Content
	p.Category = in.Category
	p.Tags = ParseTags(in.Tags)
}

// AddComment appends a comment to the tail of the post's comments.
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.BeforeCreate()
	p.Comments = append(p.Comments, *comment)
	return nil
}

// Clone returns a deep copy, so the store never shares slices with callers.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Tags = slices.Clone(p.Tags)
	clone.Comments = slices.Clone(p.Comments)
	if clone.Tags == nil {
		clone.Tags = []string{}
	}
	if clone.Comments == nil {
		clone.Comments = []Comment{}
	}
	return &clone
}

// TagList renders the tags for the edit form.
func (p *Post) TagList() string {
	return JoinTags(p.Tags)
}
