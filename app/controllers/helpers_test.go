package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogpress/app/flash"
	"blogpress/app/keys"
	"blogpress/app/models"
	"blogpress/app/repositories"
	"blogpress/app/services"
	"blogpress/app/views"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	base    *Base
	flash   *flash.Store
	service *services.PostService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	renderer, err := views.New()
	require.NoError(t, err)
	set, err := keys.Derive("test secret")
	require.NoError(t, err)
	store := flash.NewStore("test", set.SessionHash, set.SessionBlock, false)

	return &testEnv{
		base:    NewBase(renderer, store),
		flash:   store,
		service: services.NewPostService(repositories.NewMemoryPostRepository()),
	}
}

func (e *testEnv) createPost(t *testing.T, title string) *models.Post {
	t.Helper()
	post, outcome, err := e.service.CreatePost(models.PostInput{Title: title, Content: "Content of " + title, Tags: "go, web"})
	require.NoError(t, err)
	require.True(t, outcome.OK())
	return post
}

// notices reads the flash carried by the cookies of a recorded response.
func (e *testEnv) notices(t *testing.T, w *httptest.ResponseRecorder) flash.Notices {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	notices, err := e.flash.Pop(httptest.NewRecorder(), r)
	require.NoError(t, err)
	return notices
}

func formRequest(method, target string, form url.Values, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}
