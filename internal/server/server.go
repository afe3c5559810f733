package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/droverlabs/drover/internal/config"
	"github.com/droverlabs/drover/internal/handler"
	"github.com/droverlabs/drover/internal/logging"
	"github.com/droverlabs/drover/internal/middleware"
	"github.com/droverlabs/drover/internal/svc"
)

// ServerOptions holds optional dependencies for the server
type ServerOptions struct {
	SvcCtx *svc.ServiceContext // Pre-initialized service context
	Quiet  bool                // Suppress startup messages for clean CLI output
}

// Run starts the worker server with the given configuration.
// It blocks until the context is cancelled or an error occurs.
func Run(ctx context.Context, c config.Config, opts ...ServerOptions) error {
	var o ServerOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return run(ctx, c, o)
}

func run(ctx context.Context, c config.Config, opts ServerOptions) error {
	serverPort := c.Port

	// Check if port is available
	if err := checkPortAvailable(serverPort); err != nil {
		return fmt.Errorf("port %d is already in use", serverPort)
	}

	// A generated key is never printed, so every externally presented key
	// is invalid until an explicit secret is deployed.
	if _, generated := c.ResolveAPIKey(); generated {
		logging.Warn("API key not configured. Generated temporary key.")
	}

	if !opts.Quiet {
		fmt.Printf("Starting server on http://localhost:%d\n", serverPort)
	}

	// Use pre-initialized service context if provided, otherwise create one
	var svcCtx *svc.ServiceContext
	if opts.SvcCtx != nil {
		svcCtx = opts.SvcCtx
	} else {
		svcCtx = svc.NewServiceContext(c)
		defer svcCtx.Close()
	}

	// Create chi router
	r := chi.NewRouter()

	// Global middleware. Access logging stays off in production and in
	// quiet CLI mode.
	if !opts.Quiet && !c.IsProductionMode() {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(corsMiddleware())

	// Service identification stays reachable without a key
	r.Get("/", handler.IndexHandler(svcCtx))

	// Everything else requires the worker secret
	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(c.Auth.APIKey))

		r.Get("/health", handler.HealthHandler(svcCtx))
		r.Post("/screenshot", handler.ScreenshotHandler(svcCtx))
		r.Post("/content", handler.ContentHandler(svcCtx))
		r.Post("/actions", handler.ActionsHandler(svcCtx))
		r.Get("/tasks", handler.TasksHandler(svcCtx))

		if c.IsMetricsEnabled() {
			r.Handle("/metrics", promhttp.Handler())
		}
	})

	// ReadTimeout/WriteTimeout are intentionally omitted: one automation
	// task can legitimately hold the connection for the full navigation
	// plus readiness budget before the response starts.
	httpServer := &http.Server{
		Addr:        fmt.Sprintf("%s:%d", c.Host, serverPort),
		Handler:     r,
		IdleTimeout: 120 * time.Second,
	}

	if !opts.Quiet {
		fmt.Printf("Server ready at http://localhost:%d\n", serverPort)
	}

	// Start server in goroutine
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("HTTP server error: %v\n", err)
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	if !opts.Quiet {
		fmt.Println("\nShutting down server gracefully...")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	httpServer.Shutdown(shutdownCtx)
	return nil
}

// corsMiddleware handles CORS for browser-based callers. The worker sits
// behind an API key, so origins are not restricted; the key headers must
// be allowed through preflight.
func corsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// checkPortAvailable checks if a port is available for binding
func checkPortAvailable(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}
	ln.Close()
	return nil
}
