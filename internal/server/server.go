package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bob3x/movieflix-be/internal/auth"
	"github.com/bob3x/movieflix-be/internal/config"
	"github.com/bob3x/movieflix-be/internal/http/handlers"
	"github.com/bob3x/movieflix-be/internal/middleware"
	"github.com/bob3x/movieflix-be/internal/storage"
)

// Store is the combined persistence surface the server needs.
type Store interface {
	storage.UserStore
	storage.MovieStore
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
//
// Registration, login, and health are public; everything else sits behind
// the bearer guard.
func New(cfg config.Config, store Store, logger *zap.Logger) *Server {
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	authenticator := auth.NewAuthenticator(store, hasher, logger)

	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RequestLogging(logger))

	handlers.NewHealthHandler(time.Now()).Register(r)
	handlers.NewAuthHandler(store, hasher, authenticator, tokens, logger).Register(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(tokens, store, logger))
		handlers.NewUserHandler(store, hasher, logger).Register(r)
		handlers.NewMovieHandler(store, logger).Register(r)
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
