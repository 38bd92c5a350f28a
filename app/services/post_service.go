package services

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"blogpress/app/models"
	"blogpress/app/repositories"
)

// PostService owns the post store and enforces the workflow rules for
// posts and their comments. One instance is built per process.
//
// Operations are serialised: each runs to completion before the next starts,
// so read-modify-write sequences such as AddComment never interleave.
type PostService struct {
	postRepo repositories.PostRepository
	mu       sync.Mutex
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// ParseID converts a route identifier into a post ID.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ListPosts returns every post in insertion order.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost retrieves a post with its comments. A missing post yields a
// *NotFoundError.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getPost(id, strconv.Itoa(id))
}

// GetPostByRawID is GetPost for an unparsed route identifier.
func (s *PostService) GetPostByRawID(raw string) (*models.Post, error) {
	id, ok := ParseID(raw)
	if !ok {
		return nil, &NotFoundError{ID: raw}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getPost(id, raw)
}

func (s *PostService) getPost(id int, raw string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{ID: raw}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return post, nil
}

// CreatePost validates the input and stores a new post. On a validation
// failure nothing is stored and no ID is consumed.
func (s *PostService) CreatePost(in models.PostInput) (*models.Post, Outcome, error) {
	if err := in.Validate(); err != nil {
		return nil, Failure(&ValidationError{
			Fields: models.InvalidFields(err),
			Notice: NoticePostFieldsRequired,
		}), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.NewPost(in)
	if err := s.postRepo.Create(post); err != nil {
		return nil, Outcome{}, fmt.Errorf("failed to create post: %w", err)
	}

	return post, Success(NoticePostCreated), nil
}

// UpdatePost replaces the title, content, category and tags of an existing
// post. Comments, ID and creation time are kept.
//
// Unlike CreatePost, title and content are not checked for emptiness here.
func (s *PostService) UpdatePost(id int, in models.PostInput) (*models.Post, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updatePost(id, strconv.Itoa(id), in)
}

// UpdatePostByRawID is UpdatePost for an unparsed route identifier.
func (s *PostService) UpdatePostByRawID(raw string, in models.PostInput) (*models.Post, Outcome, error) {
	id, ok := ParseID(raw)
	if !ok {
		return nil, Failure(&NotFoundError{ID: raw}), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updatePost(id, raw, in)
}

func (s *PostService) updatePost(id int, raw string, in models.PostInput) (*models.Post, Outcome, error) {
	post, err := s.getPost(id, raw)
	if err != nil {
		var notFoundErr *NotFoundError
		if errors.As(err, &notFoundErr) {
			return nil, Failure(notFoundErr), nil
		}
		return nil, Outcome{}, err
	}

	post.Apply(in)

	if err := s.postRepo.Update(post); err != nil {
		return nil, Outcome{}, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	return post, Success(NoticePostUpdated), nil
}

// DeletePost removes a post and its comments. A missing post is a soft
// failure: the outcome reports it but no error is returned.
func (s *PostService) DeletePost(id int) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deletePost(id, strconv.Itoa(id))
}

// DeletePostByRawID is DeletePost for an unparsed route identifier.
func (s *PostService) DeletePostByRawID(raw string) (Outcome, error) {
	id, ok := ParseID(raw)
	if !ok {
		return Failure(&NotFoundError{ID: raw}), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deletePost(id, raw)
}

func (s *PostService) deletePost(id int, raw string) (Outcome, error) {
	err := s.postRepo.Delete(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return Failure(&NotFoundError{ID: raw}), nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	return Success(NoticePostDeleted), nil
}
