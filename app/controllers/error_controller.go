package controllers

import (
	"log/slog"
	"net/http"

	"blogpress/app/flash"
	"blogpress/app/views"

	"github.com/gorilla/csrf"
)

// NoticeFormExpired is shown when a form is submitted without a valid token,
// usually because the page was loaded before a restart.
const NoticeFormExpired = "Your form has expired. Please try again."

// ErrorController renders the 404 and 500 pages.
type ErrorController struct {
	*Base
}

// NewErrorController creates a new ErrorController
func NewErrorController(base *Base) *ErrorController {
	return &ErrorController{Base: base}
}

// NotFound answers requests no route matched.
func (ec *ErrorController) NotFound(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		sendError(w, "not found", http.StatusNotFound)
		return
	}
	ec.render(w, r, http.StatusNotFound, views.PageNotFound, views.Page{Title: "Not Found"})
}

// InternalError answers requests whose handler panicked.
func (ec *ErrorController) InternalError(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	ec.render(w, r, http.StatusInternalServerError, views.PageError, views.Page{Title: "Error"})
}

// Forbidden answers submissions that failed the CSRF check. Browsers are sent
// back to the index with an error notice.
func (ec *ErrorController) Forbidden(w http.ResponseWriter, r *http.Request) {
	slog.WarnContext(r.Context(), "rejected request",
		"method", r.Method,
		"path", r.URL.Path,
		"reason", csrf.FailureReason(r),
	)

	if isAPIRequest(r) {
		sendError(w, "forbidden", http.StatusForbidden)
		return
	}
	if err := ec.flash.AddMessage(w, r, flash.KeyError, NoticeFormExpired); err != nil {
		slog.ErrorContext(r.Context(), "failed to store flash", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
