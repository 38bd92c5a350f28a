// Package routes wires controllers and middleware into the HTTP handler
// served by the application.
package routes

import (
	"io"
	"log/slog"
	"net/http"

	"blogpress/app/controllers"
	"blogpress/app/flash"
	"blogpress/app/metrics"
	"blogpress/app/middleware"
	"blogpress/app/services"
	"blogpress/app/views"

	"github.com/gorilla/csrf"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Options switches optional parts of the handler on and off.
type Options struct {
	Logger *slog.Logger
	// CSRFKey enables form CSRF protection when non-empty.
	CSRFKey []byte
	// Secure marks the CSRF cookie as HTTPS only.
	Secure  bool
	Metrics bool
	Stubs   bool
}

// Setup builds the full handler: router, error pages and the middleware chain.
func Setup(postService *services.PostService, renderer *views.Renderer, flashes *flash.Store, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base := controllers.NewBase(renderer, flashes)
	postController := controllers.NewPostController(base, postService)
	commentController := controllers.NewCommentController(base, postService)
	apiController := controllers.NewAPIController(postService)
	errorController := controllers.NewErrorController(base)

	router := mux.NewRouter()
	// Router middleware only runs on matched routes, so the fallbacks are
	// wrapped for metrics on their own.
	notFound := middleware.Metrics(http.HandlerFunc(errorController.NotFound))
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound
	router.Use(middleware.Metrics)
	if len(opts.CSRFKey) > 0 {
		router.Use(
			middleware.CSRFExempt("/api/", "/register", "/user/"),
			csrf.Protect(opts.CSRFKey,
				csrf.Secure(opts.Secure),
				csrf.Path("/"),
				csrf.SameSite(csrf.SameSiteLaxMode),
				csrf.ErrorHandler(http.HandlerFunc(errorController.Forbidden)),
			),
		)
	}

	// Operational endpoints
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}).Methods("GET")
	if opts.Metrics {
		router.Handle("/metrics", metrics.Handler()).Methods("GET")
	}
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServerFS(views.Static())))

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)
	api.HandleFunc("/posts", apiController.List).Methods("GET")
	api.HandleFunc("/posts", apiController.Create).Methods("POST")
	api.HandleFunc("/posts/{id}", apiController.Get).Methods("GET")
	api.HandleFunc("/posts/{id}", apiController.Update).Methods("PUT")
	api.HandleFunc("/posts/{id}", apiController.Delete).Methods("DELETE")
	api.HandleFunc("/posts/{id}/comments", apiController.AddComment).Methods("POST")

	// Web routes
	router.HandleFunc("/", postController.Index).Methods("GET")
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("/new", postController.New).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}/edit", postController.Edit).Methods("GET")
	posts.HandleFunc("/{id}", postController.Update).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{id}/comments", commentController.Create).Methods("POST")

	if opts.Stubs {
		stubController := controllers.NewStubController()
		router.HandleFunc("/stub", stubController.Home).Methods("GET")
		router.HandleFunc("/register", stubController.Register).Methods("POST")
		router.HandleFunc("/user/{name}", stubController.User).Methods("PUT", "PATCH", "DELETE")
	}

	handler := handlers.HTTPMethodOverrideHandler(router)
	handler = middleware.Recoverer(http.HandlerFunc(errorController.InternalError))(handler)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
