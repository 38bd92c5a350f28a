// Package seed fills an empty store with generated demo posts.
package seed

import (
	"fmt"
	"strings"

	"blogpress/app/models"
	"blogpress/app/services"

	"github.com/brianvoe/gofakeit/v6"
)

// Faker generates demo content. Seed it for reproducible output.
type Faker interface {
	Sentence(wordCount int) string
	Paragraph(paragraphCount, sentenceCount, wordCount int, separator string) string
	Word() string
	Name() string
	Number(min, max int) int
}

// NewFaker returns a generator; seed 0 picks a random seed.
func NewFaker(seed int64) Faker {
	return gofakeit.New(seed)
}

// PostInput generates the fields of one post.
func PostInput(f Faker) models.PostInput {
	tags := make([]string, f.Number(0, 3))
	for i := range tags {
		tags[i] = f.Word()
	}

	return models.PostInput{
		Title:    strings.TrimSuffix(f.Sentence(f.Number(3, 7)), "."),
		Content:  f.Paragraph(f.Number(1, 3), f.Number(2, 5), 10, "\n\n"),
		Category: f.Word(),
		Tags:     strings.Join(tags, ", "),
	}
}

// CommentInput generates the fields of one comment.
func CommentInput(f Faker) models.CommentInput {
	return models.CommentInput{
		Name: f.Name(),
		Text: f.Sentence(f.Number(4, 12)),
	}
}

// Posts creates n posts, each with up to three comments, through the
// service so they follow the normal workflow rules.
func Posts(postService *services.PostService, f Faker, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for range n {
		post, outcome, err := postService.CreatePost(PostInput(f))
		if err != nil {
			return posts, fmt.Errorf("failed to seed post: %w", err)
		}
		if !outcome.OK() {
			return posts, fmt.Errorf("failed to seed post: %s", outcome.Message)
		}

		for range f.Number(0, 3) {
			post, outcome, err = postService.AddComment(post.ID, CommentInput(f))
			if err != nil {
				return posts, fmt.Errorf("failed to seed comment: %w", err)
			}
			if !outcome.OK() {
				return posts, fmt.Errorf("failed to seed comment: %s", outcome.Message)
			}
		}

		posts = append(posts, post)
	}
	return posts, nil
}
