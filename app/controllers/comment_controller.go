package controllers

import (
	"net/http"

	"blogpress/app/metrics"
	"blogpress/app/models"
	"blogpress/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	*Base
	postService *services.PostService
}

// NewCommentController creates a new CommentController
func NewCommentController(base *Base, postService *services.PostService) *CommentController {
	return &CommentController{Base: base, postService: postService}
}

// Create adds a comment and sends the browser back to the post. When the
// post does not exist the browser goes to the list instead.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		cc.serverError(w, r, "failed to parse form", err)
		return
	}

	rawID := mux.Vars(r)["id"]
	_, outcome, err := cc.postService.AddCommentByRawID(rawID, models.CommentInput{
		Name: r.PostFormValue("name"),
		Text: r.PostFormValue("text"),
	})
	if err != nil {
		cc.serverError(w, r, "failed to add comment", err)
		return
	}
	metrics.RecordOutcome(metrics.OpAddComment, outcome)

	if outcome.IsNotFound() {
		cc.redirect(w, r, "/", outcome)
		return
	}
	cc.redirect(w, r, "/posts/"+rawID, outcome)
}
