package routes

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"blogpress/app/flash"
	"blogpress/app/keys"
	"blogpress/app/logging"
	"blogpress/app/models"
	"blogpress/app/repositories"
	"blogpress/app/services"
	"blogpress/app/views"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	handler http.Handler
	service *services.PostService
	logs    *bytes.Buffer
}

func setupTestApp(t *testing.T, configure func(*Options)) *testApp {
	t.Helper()

	renderer, err := views.New()
	require.NoError(t, err)
	set, err := keys.Derive("routes test secret")
	require.NoError(t, err)

	var logs bytes.Buffer
	opts := Options{
		Logger:  logging.New("info", "text", &logs),
		Metrics: true,
		Stubs:   true,
	}
	if configure != nil {
		configure(&opts)
	}

	service := services.NewPostService(repositories.NewMemoryPostRepository())
	store := flash.NewStore("test", set.SessionHash, set.SessionBlock, false)

	return &testApp{
		handler: Setup(service, renderer, store, opts),
		service: service,
		logs:    &logs,
	}
}

func (a *testApp) seedPost(t *testing.T) *models.Post {
	t.Helper()
	post, outcome, err := a.service.CreatePost(models.PostInput{
		Title:   gofakeit.Sentence(3),
		Content: gofakeit.Paragraph(1, 2, 6, "\n"),
		Tags:    gofakeit.Word(),
	})
	require.NoError(t, err)
	require.True(t, outcome.OK())
	return post
}

// browser replays cookies between requests the way a real client would.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, handler http.Handler) *browser {
	return &browser{t: t, handler: handler, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) sendJSON(method, path, payload string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != "" {
		body = strings.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return b.do(req)
}

var csrfFieldPattern = regexp.MustCompile(`name="gorilla.csrf.Token" value="([^"]+)"`)

func csrfToken(t *testing.T, body string) string {
	t.Helper()
	m := csrfFieldPattern.FindStringSubmatch(body)
	require.Len(t, m, 2, "no csrf field in page")
	return m[1]
}
