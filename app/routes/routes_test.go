package routes

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"blogpress/app/metrics"
	"blogpress/app/middleware"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func TestStubRoutes(t *testing.T) {
	app := setupTestApp(t, nil)
	b := newBrowser(t, app.handler)

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodPost, "/register", http.StatusCreated, "Created"},
		{http.MethodPut, "/user/Mahi", http.StatusOK, "OK"},
		{http.MethodPatch, "/user/Ms.%20Gupta", http.StatusOK, "OK"},
		{http.MethodDelete, "/user/Ms.%20Gupta", http.StatusOK, "OK"},
		{http.MethodGet, "/stub", http.StatusOK, "<h1>Home Page</h1>"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := b.do(newRequest(tt.method, tt.path))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestStubsDisabled(t *testing.T) {
	app := setupTestApp(t, func(opts *Options) { opts.Stubs = false })
	b := newBrowser(t, app.handler)

	assert.Equal(t, http.StatusNotFound, b.do(newRequest(http.MethodPost, "/register")).Code)
	assert.Equal(t, http.StatusNotFound, b.get("/stub").Code)
}

func TestOperationalRoutes(t *testing.T) {
	app := setupTestApp(t, nil)
	b := newBrowser(t, app.handler)

	t.Run("healthz", func(t *testing.T) {
		w := b.get("/healthz")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		b.get("/")
		w := b.get("/metrics")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "blogpress_http_requests_total")
	})

	t.Run("metrics disabled", func(t *testing.T) {
		off := setupTestApp(t, func(opts *Options) { opts.Metrics = false })
		assert.Equal(t, http.StatusNotFound, newBrowser(t, off.handler).get("/metrics").Code)
	})
}

func TestErrorPages(t *testing.T) {
	app := setupTestApp(t, nil)
	b := newBrowser(t, app.handler)

	t.Run("unknown route renders the 404 page", func(t *testing.T) {
		w := b.get("/does/not/exist")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page not found.")
	})

	t.Run("wrong method renders the 404 page", func(t *testing.T) {
		w := b.do(newRequest(http.MethodPatch, "/posts/1"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unmatched requests are counted", func(t *testing.T) {
		counter := metrics.HTTPRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")
		before := testutil.ToFloat64(counter)

		w := b.get("/no/such/page")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}

func TestMiddlewareRoutes(t *testing.T) {
	app := setupTestApp(t, nil)
	b := newBrowser(t, app.handler)

	t.Run("API middleware sets JSON content type", func(t *testing.T) {
		w := b.sendJSON(http.MethodGet, "/api/posts", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("Logger middleware is applied", func(t *testing.T) {
		w := b.get("/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, app.logs.String(), "path=/")
		assert.Contains(t, app.logs.String(), "request_id=")
	})
}
