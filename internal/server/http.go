package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/launchora/internal/shared"
	"github.com/go-chi/chi/v5/middleware"
)

// Options configures a [Server].
type Options struct {
	Addr            string
	Assets          fs.FS
	Index           string
	CacheMaxAge     time.Duration
	ShutdownTimeout time.Duration
	Logger          *log.Logger
}

// Server is the static site HTTP server.
type Server struct {
	addr            string
	router          *BasicRouter
	logger          *log.Logger
	shutdownTimeout time.Duration
}

// New builds the router with its middleware stack, the health check, and the asset handler.
func New(opts Options) (*Server, error) {
	if opts.Assets == nil {
		return nil, fmt.Errorf("%w: no asset filesystem", shared.ErrMissingAssetRoot)
	}
	if opts.Addr == "" {
		opts.Addr = ":3000"
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	router := NewBasicRouter()
	router.Use(
		RequestID,
		middleware.RealIP,
		RequestLogger(opts.Logger),
		middleware.Recoverer,
		middleware.Compress(5),
	)
	router.Handle(http.MethodGet, "/healthz", NewHealthHandler(opts.Logger))
	router.Handler(NewAssetHandler(AssetOptions{
		FS:          opts.Assets,
		Index:       opts.Index,
		CacheMaxAge: opts.CacheMaxAge,
		Logger:      opts.Logger,
	}))

	return &Server{
		addr:            opts.Addr,
		router:          router,
		logger:          opts.Logger,
		shutdownTimeout: opts.ShutdownTimeout,
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// ServeHTTP delegates to the router, satisfying [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe listens on the configured address and calls [Server.Serve].
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%w: %v", shared.ErrServerClosed, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
