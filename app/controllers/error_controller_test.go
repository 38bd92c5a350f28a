package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorController(t *testing.T) {
	env := setupTestEnv(t)
	controller := NewErrorController(env.base)

	t.Run("not found page", func(t *testing.T) {
		w := httptest.NewRecorder()
		controller.NotFound(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page not found.")
	})

	t.Run("not found json", func(t *testing.T) {
		w := httptest.NewRecorder()
		controller.NotFound(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
	})

	t.Run("internal error page", func(t *testing.T) {
		w := httptest.NewRecorder()
		controller.InternalError(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Something went wrong")
	})

	t.Run("forbidden redirects with a notice", func(t *testing.T) {
		w := httptest.NewRecorder()
		controller.Forbidden(w, httptest.NewRequest(http.MethodPost, "/posts", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Equal(t, []string{NoticeFormExpired}, env.notices(t, w).Error)
	})

	t.Run("forbidden json", func(t *testing.T) {
		w := httptest.NewRecorder()
		controller.Forbidden(w, httptest.NewRequest(http.MethodPost, "/api/posts", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String())
	})
}
