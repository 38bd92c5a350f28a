package controllers

import (
	"errors"
	"net/http"

	"blogpress/app/metrics"
	"blogpress/app/models"
	"blogpress/app/services"
	"blogpress/app/views"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	*Base
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(base *Base, postService *services.PostService) *PostController {
	return &PostController{Base: base, postService: postService}
}

func postInputFromForm(r *http.Request) models.PostInput {
	return models.PostInput{
		Title:    r.PostFormValue("title"),
		Content:  r.PostFormValue("content"),
		Category: r.PostFormValue("category"),
		Tags:     r.PostFormValue("tags"),
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		pc.serverError(w, r, "failed to list posts", err)
		return
	}

	pc.render(w, r, http.StatusOK, views.PageIndex, views.Page{Posts: posts})
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	pc.render(w, r, http.StatusOK, views.PageNew, views.Page{Title: "New Post"})
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		pc.serverError(w, r, "failed to parse form", err)
		return
	}

	_, outcome, err := pc.postService.CreatePost(postInputFromForm(r))
	if err != nil {
		pc.serverError(w, r, "failed to create post", err)
		return
	}
	metrics.RecordOutcome(metrics.OpCreatePost, outcome)

	if !outcome.OK() {
		pc.redirect(w, r, "/posts/new", outcome)
		return
	}
	pc.redirect(w, r, "/", outcome)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	pc.showPage(w, r, views.PageShow)
}

// Edit displays the form for editing a post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	pc.showPage(w, r, views.PageEdit)
}

func (pc *PostController) showPage(w http.ResponseWriter, r *http.Request, page string) {
	post, err := pc.postService.GetPostByRawID(mux.Vars(r)["id"])
	if err != nil {
		var notFoundErr *services.NotFoundError
		if errors.As(err, &notFoundErr) {
			pc.redirect(w, r, "/", services.Failure(notFoundErr))
			return
		}
		pc.serverError(w, r, "failed to get post", err)
		return
	}

	pc.render(w, r, http.StatusOK, page, views.Page{Title: post.Title, Post: post})
}

// Update handles updating an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		pc.serverError(w, r, "failed to parse form", err)
		return
	}

	_, outcome, err := pc.postService.UpdatePostByRawID(mux.Vars(r)["id"], postInputFromForm(r))
	if err != nil {
		pc.serverError(w, r, "failed to update post", err)
		return
	}
	metrics.RecordOutcome(metrics.OpUpdatePost, outcome)

	pc.redirect(w, r, "/", outcome)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	outcome, err := pc.postService.DeletePostByRawID(mux.Vars(r)["id"])
	if err != nil {
		pc.serverError(w, r, "failed to delete post", err)
		return
	}
	metrics.RecordOutcome(metrics.OpDeletePost, outcome)

	pc.redirect(w, r, "/", outcome)
}
