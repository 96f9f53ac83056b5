// Package server exposes the automation trigger endpoints over HTTP. It is
// the surface an external cron service calls to drive the pipeline.
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobupdate/jobwire/internal/store"
	"github.com/jobupdate/jobwire/internal/types"
)

// Runner executes automation cycles on behalf of the trigger endpoints.
type Runner interface {
	RunFull(ctx context.Context) (*types.RunSummary, error)
	RunPost(ctx context.Context) (*types.RunSummary, error)
	RunHousekeep(ctx context.Context, dedupeGroups bool) (*types.HousekeepSummary, error)
	RecentRuns(ctx context.Context, limit int) ([]store.Run, error)
}

// Config holds server configuration.
type Config struct {
	Port   int
	Secret string
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	runner     Runner
	secret     string
}

// New creates a new server instance.
func New(cfg Config, runner Runner) *Server {
	s := &Server{
		runner: runner,
		secret: cfg.Secret,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /cron/run", s.withSecret(s.handleRun))
	mux.HandleFunc("GET /cron/run", s.withSecret(s.handleRun))
	mux.HandleFunc("POST /cron/cleanup", s.withSecret(s.handleCleanup))
	mux.HandleFunc("GET /cron/cleanup", s.withSecret(s.handleCleanup))
	mux.HandleFunc("GET /runs", s.withSecret(s.handleRuns))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // a full cycle hits several upstreams
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening and blocks until an interrupt, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withSecret authenticates the trigger secret from the query string or the
// Authorization header. A missing configured secret locks the endpoints.
func (s *Server) withSecret(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.secret == "" {
			s.errorResponse(w, http.StatusUnauthorized, "trigger secret not configured")
			return
		}

		supplied := r.URL.Query().Get("secret")
		if supplied == "" {
			supplied = bearerToken(r)
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(s.secret)) != 1 {
			s.errorResponse(w, http.StatusUnauthorized, "invalid secret")
			return
		}
		next(w, r)
	}
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRun triggers an automation cycle and returns its summary.
// ?postOnly=true skips fetching and runs only the posting cycle, as does an
// unrecognized ?type value; the known type values all run the full cycle.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	postOnly := q.Get("postOnly") == "true" || !fetchesFor(q.Get("type"))

	var (
		summary *types.RunSummary
		err     error
	)
	if postOnly {
		summary, err = s.runner.RunPost(r.Context())
	} else {
		summary, err = s.runner.RunFull(r.Context())
	}
	if err != nil {
		log.Printf("[SERVER] run failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

// fetchesFor reports whether a trigger type includes the fetch stage. The
// cadence names exist for external cron services that fire one endpoint on
// several schedules; every cadence maps to a normal fetch cycle here since
// source rotation already happens per cycle.
func fetchesFor(kind string) bool {
	switch kind {
	case "", "all", "hourly", "2hours", "6hours":
		return true
	}
	return false
}

// handleCleanup triggers the housekeeping pass. ?dedupe=1 adds the weekly
// duplicate-group cleanup.
func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	dedupeGroups := r.URL.Query().Get("dedupe") == "1"
	summary, err := s.runner.RunHousekeep(r.Context(), dedupeGroups)
	if err != nil {
		log.Printf("[SERVER] housekeeping failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

// handleRuns returns the recent automation run log.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.runner.RecentRuns(r.Context(), 20)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
