package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"blogpress/app/config"
	"blogpress/app/flash"
	"blogpress/app/keys"
	"blogpress/app/logging"
	"blogpress/app/repositories"
	"blogpress/app/routes"
	"blogpress/app/seed"
	"blogpress/app/server"
	"blogpress/app/services"
	"blogpress/app/views"
)

// application is everything runServe needs, built from the configuration.
type application struct {
	handler http.Handler
	service *services.PostService
	repo    repositories.PostRepository
}

func (a *application) Close() error {
	return a.repo.Close()
}

func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	repo, err := repositories.Open(cfg.Storage.Driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open post store: %w", err)
	}
	service := services.NewPostService(repo)

	if cfg.Seed.Posts > 0 {
		if _, err := seed.Posts(service, seed.NewFaker(0), cfg.Seed.Posts); err != nil {
			repo.Close()
			return nil, err
		}
		logger.Info("seeded demo posts", "count", cfg.Seed.Posts)
	}

	renderer, err := views.New()
	if err != nil {
		repo.Close()
		return nil, err
	}

	keySet, err := keys.Derive(cfg.Session.Secret)
	if err != nil {
		repo.Close()
		return nil, err
	}
	if cfg.Session.Secret == "" {
		logger.Warn("session.secret is empty; using a random key, notices will not survive a restart")
	}

	opts := routes.Options{
		Logger:  logger,
		Secure:  cfg.Session.Secure,
		Metrics: cfg.Metrics.Enabled,
		Stubs:   cfg.Stubs.Enabled,
	}
	if cfg.CSRF.Enabled {
		opts.CSRFKey = keySet.CSRF
	}

	flashes := flash.NewStore(cfg.Session.Name, keySet.SessionHash, keySet.SessionBlock, cfg.Session.Secure)

	return &application{
		handler: routes.Setup(service, renderer, flashes, opts),
		service: service,
		repo:    repo,
	}, nil
}

func runServe(ctx context.Context, cfg *config.Config, logOut io.Writer) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	slog.SetDefault(logger)

	app, err := newApplication(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	logger.Info("starting blogpress",
		"version", version,
		"addr", cfg.Server.Addr(),
		"storage", cfg.Storage.Driver,
	)

	return server.New(cfg.Server.Addr(), app.handler, cfg.Server.ShutdownTimeout, logger).Run(ctx)
}
