package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"blogpress/app/flash"
	"blogpress/app/services"
	"blogpress/app/views"

	"github.com/gorilla/csrf"
)

// Base carries what every HTML controller needs to answer a request.
type Base struct {
	views *views.Renderer
	flash *flash.Store
}

// NewBase creates the shared rendering helpers.
func NewBase(renderer *views.Renderer, flashes *flash.Store) *Base {
	return &Base{views: renderer, flash: flashes}
}

// render pops pending notices into the page and writes it with status.
func (b *Base) render(w http.ResponseWriter, r *http.Request, status int, name string, page views.Page) {
	notices, err := b.flash.Pop(w, r)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to read flash", "error", err)
	}
	page.Notices = notices
	page.CSRFField = csrf.TemplateField(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := b.views.Render(w, name, page); err != nil {
		slog.ErrorContext(r.Context(), "failed to render template", "name", name, "error", err)
	}
}

// redirect stores the outcome's notice and sends the browser to url.
func (b *Base) redirect(w http.ResponseWriter, r *http.Request, url string, outcome services.Outcome) {
	if err := b.flash.Add(w, r, outcome); err != nil {
		slog.ErrorContext(r.Context(), "failed to store flash", "error", err)
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// serverError logs err and renders the 500 page.
func (b *Base) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg, "error", err)
	b.render(w, r, http.StatusInternalServerError, views.PageError, views.Page{Title: "Error"})
}

func sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}
