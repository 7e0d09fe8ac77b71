package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/notekeep/authserver/config"
	"github.com/notekeep/authserver/internal/accounts"
	"github.com/notekeep/authserver/internal/auth"
	"github.com/notekeep/authserver/internal/db"
	"github.com/notekeep/authserver/internal/handlers"
	"github.com/notekeep/authserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwtSecret := strings.TrimSpace(cfg.Auth.JWTSecret)
	if jwtSecret == "" {
		_ = dbConn.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	policy := accounts.PasswordPolicy{
		MinLength:     cfg.Auth.PasswordMinLength,
		RequireUpper:  cfg.Auth.PasswordRequireUpper,
		RequireLower:  cfg.Auth.PasswordRequireLower,
		RequireDigit:  cfg.Auth.PasswordRequireDigit,
		RequireSymbol: cfg.Auth.PasswordRequireSymbol,
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	accountRepo := store.NewAccountRepository(dbConn)
	accountService, err := accounts.NewService(accountRepo, hasher, policy, logger)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, accountService, jwtSecret)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
