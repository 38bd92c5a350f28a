// Package flash keeps one-shot success and error notices in a signed,
// encrypted session cookie. A notice added while handling one request is
// shown by the next page that renders and then discarded.
package flash

import (
	"fmt"
	"log/slog"
	"net/http"

	"blogpress/app/services"

	"github.com/gorilla/sessions"
)

const (
	KeySuccess = "success"
	KeyError   = "error"
)

// Notices are the messages waiting to be shown, oldest first.
type Notices struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (n Notices) Empty() bool {
	return len(n.Success) == 0 && len(n.Error) == 0
}

// Store reads and writes flash notices.
type Store struct {
	cookies *sessions.CookieStore
	name    string
}

// NewStore creates a cookie-backed store. hashKey signs the cookie and
// blockKey encrypts it.
func NewStore(name string, hashKey, blockKey []byte, secure bool) *Store {
	cookies := sessions.NewCookieStore(hashKey, blockKey)
	cookies.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{cookies: cookies, name: name}
}

func (s *Store) session(r *http.Request) *sessions.Session {
	session, err := s.cookies.Get(r, s.name)
	if err != nil {
		// Undecodable cookies (say, from an earlier secret) start over empty.
		slog.DebugContext(r.Context(), "discarding unreadable session cookie", "error", err)
	}
	return session
}

// Add queues the notice of an operation outcome under its kind.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, outcome services.Outcome) error {
	if outcome.Message == "" {
		return nil
	}

	key := KeySuccess
	if !outcome.OK() {
		key = KeyError
	}
	return s.AddMessage(w, r, key, outcome.Message)
}

// AddMessage queues a raw message under key.
func (s *Store) AddMessage(w http.ResponseWriter, r *http.Request, key, message string) error {
	session := s.session(r)
	session.AddFlash(message, key)

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save flash: %w", err)
	}
	return nil
}

// Pop returns the pending notices and clears them.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) (Notices, error) {
	session := s.session(r)

	notices := Notices{
		Success: messages(session.Flashes(KeySuccess)),
		Error:   messages(session.Flashes(KeyError)),
	}
	if notices.Empty() {
		return notices, nil
	}

	if err := session.Save(r, w); err != nil {
		return notices, fmt.Errorf("failed to clear flash: %w", err)
	}
	return notices, nil
}

func messages(flashes []any) []string {
	if len(flashes) == 0 {
		return nil
	}

	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
