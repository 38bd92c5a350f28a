package controllers

import (
	"io"
	"net/http"
)

// StubController serves fixed responses with no state behind them.
type StubController struct{}

// NewStubController creates a new StubController
func NewStubController() *StubController {
	return &StubController{}
}

// Home writes a static heading.
func (sc *StubController) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, "<h1>Home Page</h1>")
}

// Register answers 201 Created.
func (sc *StubController) Register(w http.ResponseWriter, r *http.Request) {
	sendStatus(w, http.StatusCreated)
}

// User answers PUT, PATCH and DELETE on a user with 200.
func (sc *StubController) User(w http.ResponseWriter, r *http.Request) {
	sendStatus(w, http.StatusOK)
}

// sendStatus writes status with its reason phrase as a plain text body.
func sendStatus(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, http.StatusText(status))
}
