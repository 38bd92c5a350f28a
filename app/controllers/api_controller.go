package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"blogpress/app/metrics"
	"blogpress/app/models"
	"blogpress/app/services"

	"github.com/gorilla/mux"
)

// APIController exposes the post store as JSON.
type APIController struct {
	postService *services.PostService
}

// NewAPIController creates a new APIController
func NewAPIController(postService *services.PostService) *APIController {
	return &APIController{postService: postService}
}

type postResponse struct {
	Post   *models.Post      `json:"post,omitempty"`
	Notice *services.Outcome `json:"notice,omitempty"`
}

type postsResponse struct {
	Posts []*models.Post `json:"posts"`
}

func isAPIRequest(r *http.Request) bool {
	return r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") ||
		r.Header.Get("Accept") == "application/json"
}

// statusFor maps an outcome onto an HTTP status. okStatus is used on success.
func statusFor(outcome services.Outcome, okStatus int) int {
	switch {
	case outcome.OK():
		return okStatus
	case outcome.IsNotFound():
		return http.StatusNotFound
	case outcome.IsValidation():
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func (ac *APIController) respond(w http.ResponseWriter, post *models.Post, outcome services.Outcome, okStatus int) {
	resp := postResponse{Notice: &outcome}
	if outcome.OK() {
		resp.Post = post
	}
	sendJSON(w, statusFor(outcome, okStatus), resp)
}

func (ac *APIController) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg, "error", err)
	sendError(w, "internal server error", http.StatusInternalServerError)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// List returns every post.
func (ac *APIController) List(w http.ResponseWriter, r *http.Request) {
	posts, err := ac.postService.ListPosts()
	if err != nil {
		ac.internalError(w, r, "failed to list posts", err)
		return
	}
	sendJSON(w, http.StatusOK, postsResponse{Posts: posts})
}

// Get returns one post with its comments.
func (ac *APIController) Get(w http.ResponseWriter, r *http.Request) {
	post, err := ac.postService.GetPostByRawID(mux.Vars(r)["id"])
	if err != nil {
		var notFoundErr *services.NotFoundError
		if errors.As(err, &notFoundErr) {
			ac.respond(w, nil, services.Failure(notFoundErr), http.StatusOK)
			return
		}
		ac.internalError(w, r, "failed to get post", err)
		return
	}
	sendJSON(w, http.StatusOK, postResponse{Post: post})
}

// Create stores a new post.
func (ac *APIController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if err := decodeJSON(r, &in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, outcome, err := ac.postService.CreatePost(in)
	if err != nil {
		ac.internalError(w, r, "failed to create post", err)
		return
	}
	metrics.RecordOutcome(metrics.OpCreatePost, outcome)

	ac.respond(w, post, outcome, http.StatusCreated)
}

// Update replaces a post's fields.
func (ac *APIController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if err := decodeJSON(r, &in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, outcome, err := ac.postService.UpdatePostByRawID(mux.Vars(r)["id"], in)
	if err != nil {
		ac.internalError(w, r, "failed to update post", err)
		return
	}
	metrics.RecordOutcome(metrics.OpUpdatePost, outcome)

	ac.respond(w, post, outcome, http.StatusOK)
}

// Delete removes a post.
func (ac *APIController) Delete(w http.ResponseWriter, r *http.Request) {
	outcome, err := ac.postService.DeletePostByRawID(mux.Vars(r)["id"])
	if err != nil {
		ac.internalError(w, r, "failed to delete post", err)
		return
	}
	metrics.RecordOutcome(metrics.OpDeletePost, outcome)

	ac.respond(w, nil, outcome, http.StatusOK)
}

// AddComment appends a comment to a post.
func (ac *APIController) AddComment(w http.ResponseWriter, r *http.Request) {
	var in models.CommentInput
	if err := decodeJSON(r, &in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, outcome, err := ac.postService.AddCommentByRawID(mux.Vars(r)["id"], in)
	if err != nil {
		ac.internalError(w, r, "failed to add comment", err)
		return
	}
	metrics.RecordOutcome(metrics.OpAddComment, outcome)

	ac.respond(w, post, outcome, http.StatusCreated)
}
