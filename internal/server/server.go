// Package server is the toeiz web front end.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/toeiz/internal/questiongen"
	"github.com/abhisek/toeiz/internal/session"
	"github.com/abhisek/toeiz/internal/store"
)

// TestGenerator produces grammar and reading tests for a session.
type TestGenerator interface {
	GenerateGrammar(ctx context.Context, state questiongen.SessionState) (questiongen.Result[questiongen.GrammarItem], questiongen.SessionState, error)
	GenerateReading(ctx context.Context, state questiongen.SessionState) (questiongen.Result[questiongen.ReadingItem], questiongen.SessionState, error)
}

// Options holds the dependencies of a Server.
type Options struct {
	Users     store.UserRepo
	Favorites store.FavoriteRepo
	Sessions  *session.Manager
	Generator TestGenerator
	Logger    *slog.Logger

	// CORSOrigins lists origins allowed to call the server from a browser.
	// Empty disables CORS handling.
	CORSOrigins []string

	// PruneInterval is how often Run deletes expired sessions. Zero
	// disables pruning.
	PruneInterval time.Duration
}

// Server serves the toeiz web application.
type Server struct {
	users     store.UserRepo
	favorites store.FavoriteRepo
	sessions  *session.Manager
	generator TestGenerator
	logger    *slog.Logger
	prune     time.Duration
	now       func() time.Time

	engine *gin.Engine
}

// New builds a Server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Users == nil || opts.Favorites == nil || opts.Sessions == nil || opts.Generator == nil {
		return nil, errors.New("server: users, favorites, sessions and generator are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		users:     opts.Users,
		favorites: opts.Favorites,
		sessions:  opts.Sessions,
		generator: opts.Generator,
		logger:    logger,
		prune:     opts.PruneInterval,
		now:       time.Now,
	}

	pages, err := loadPages()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.HTMLRender = pages
	r.Use(gin.Recovery(), requestLogger(logger))
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	app := r.Group("/", s.sessions.Middleware())
	app.GET("/", s.index)
	app.GET("/register", s.registerForm)
	app.POST("/register", s.register)
	app.GET("/login", s.loginForm)
	app.POST("/login", s.login)
	app.POST("/logout", s.logout)

	app.GET("/grammar_test", s.grammarTest)
	app.POST("/grammar_test", s.submitGrammar)
	app.GET("/reading_test", s.readingTest)
	app.POST("/reading_test", s.submitReading)
	app.POST("/retake", s.retake)

	authed := app.Group("/", requireLogin())
	authed.GET("/dashboard", s.dashboard)
	authed.GET("/change_password", s.changePasswordForm)
	authed.POST("/change_password", s.changePassword)
	authed.GET("/favorites", s.listFavorites)

	app.POST("/favorite", requireLoginJSON(), s.toggleFavorite)

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.prune > 0 {
		go s.pruneSessions(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) pruneSessions(ctx context.Context) {
	ticker := time.NewTicker(s.prune)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.sessions.Prune(ctx)
			if err != nil {
				s.logger.Warn("prune sessions", "error", err)
				continue
			}
			if n > 0 {
				s.logger.Debug("pruned expired sessions", "count", n)
			}
		}
	}
}
