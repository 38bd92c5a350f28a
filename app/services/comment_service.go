package services

import (
	"errors"
	"fmt"
	"strconv"

	"blogpress/app/models"
)

// AddComment appends a comment to the tail of a post's comments. The post
// is looked up first, so a missing post wins over missing fields.
func (s *PostService) AddComment(postID int, in models.CommentInput) (*models.Post, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addComment(postID, strconv.Itoa(postID), in)
}

// AddCommentByRawID is AddComment for an unparsed route identifier.
func (s *PostService) AddCommentByRawID(raw string, in models.CommentInput) (*models.Post, Outcome, error) {
	id, ok := ParseID(raw)
	if !ok {
		return nil, Failure(&NotFoundError{ID: raw}), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addComment(id, raw, in)
}

func (s *PostService) addComment(postID int, raw string, in models.CommentInput) (*models.Post, Outcome, error) {
	post, err := s.getPost(postID, raw)
	if err != nil {
		var notFoundErr *NotFoundError
		if errors.As(err, &notFoundErr) {
			return nil, Failure(notFoundErr), nil
		}
		return nil, Outcome{}, err
	}

	if err := in.Validate(); err != nil {
		return post, Failure(&ValidationError{
			Fields: models.InvalidFields(err),
			Notice: NoticeCommentFieldsRequired,
		}), nil
	}

	if err := post.AddComment(models.NewComment(in)); err != nil {
		return nil, Outcome{}, fmt.Errorf("failed to add comment to post %d: %w", postID, err)
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, Outcome{}, fmt.Errorf("failed to save comment on post %d: %w", postID, err)
	}

	return post, Success(NoticeCommentAdded), nil
}
