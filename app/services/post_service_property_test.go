//go:build property
// +build property

package services

import (
	"testing"

	"blogpress/app/models"
	"blogpress/app/repositories"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPostServiceProperties checks the store rules over random operation mixes.
func TestPostServiceProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: IDs strictly increase and are never reused, whatever gets deleted
	properties.Property("ids strictly increase", prop.ForAll(
		func(creates int, deletes []int) bool {
			s := NewPostService(repositories.NewMemoryPostRepository())

			last := 0
			for i := 0; i < creates; i++ {
				post, outcome, err := s.CreatePost(models.PostInput{Title: "t", Content: "c"})
				if err != nil || !outcome.OK() || post.ID <= last {
					return false
				}
				last = post.ID

				if i < len(deletes) {
					if _, err := s.DeletePost(deletes[i]); err != nil {
						return false
					}
				}
			}
			return last == creates
		},
		gen.IntRange(0, 30),
		gen.SliceOf(gen.IntRange(0, 30)),
	))

	// Property: a rejected create leaves the store untouched
	properties.Property("invalid create is a no-op", prop.ForAll(
		func(seeded int, title, content string) bool {
			if title != "" && content != "" {
				return true
			}
			s := NewPostService(repositories.NewMemoryPostRepository())
			for i := 0; i < seeded; i++ {
				s.CreatePost(models.PostInput{Title: "t", Content: "c"})
			}

			_, outcome, err := s.CreatePost(models.PostInput{Title: title, Content: content})
			if err != nil || outcome.OK() || outcome.Message != NoticePostFieldsRequired {
				return false
			}

			posts, err := s.ListPosts()
			if err != nil || len(posts) != seeded {
				return false
			}
			next, _, err := s.CreatePost(models.PostInput{Title: "t", Content: "c"})
			return err == nil && next.ID == seeded+1
		},
		gen.IntRange(0, 10),
		gen.OneConstOf("", "title"),
		gen.OneConstOf("", "content"),
	))

	// Property: list order follows creation order after any deletion
	properties.Property("list keeps insertion order", prop.ForAll(
		func(creates int, deleteID int) bool {
			s := NewPostService(repositories.NewMemoryPostRepository())
			for i := 0; i < creates; i++ {
				s.CreatePost(models.PostInput{Title: "t", Content: "c"})
			}
			s.DeletePost(deleteID)

			posts, err := s.ListPosts()
			if err != nil {
				return false
			}
			for i := 1; i < len(posts); i++ {
				if posts[i-1].ID >= posts[i].ID {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20),
		gen.IntRange(0, 20),
	))

	// Property: tags are always trimmed
	properties.Property("tags are trimmed", prop.ForAll(
		func(raw string) bool {
			for _, tag := range models.ParseTags(raw) {
				if len(tag) > 0 && (tag[0] == ' ' || tag[len(tag)-1] == ' ') {
					return false
				}
			}
			return true
		},
		gen.RegexMatch(`^[a-z ,]{0,30}$`),
	))

	properties.TestingRun(t)
}
