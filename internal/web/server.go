// Package web serves the companion glossary page: an embedded static
// site plus the current glossary file. There is no other API.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/kamusis/devguide/internal/glossary"
)

//go:embed static
var staticFiles embed.FS

// Server serves the glossary page.
type Server struct {
	GlossaryPath string
	Log          zerolog.Logger

	httpServer *http.Server
}

// NewServer returns a server listening on addr once Run is called.
func NewServer(addr, glossaryPath string, log zerolog.Logger) *Server {
	s := &Server{GlossaryPath: glossaryPath, Log: log}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withLogging(s.Handler()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routing mux without middleware.
func (s *Server) Handler() http.Handler {
	site, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("embedded site missing: %v", err))
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /glossary.json", s.handleGlossary)
	mux.Handle("GET /", http.FileServerFS(site))
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.Log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.Log.Info().Msg("server stopped")
	return nil
}

// handleGlossary re-reads the glossary on every request so edits show up
// on reload. The file is validated before it is served.
func (s *Server) handleGlossary(w http.ResponseWriter, r *http.Request) {
	g, err := glossary.Load(s.GlossaryPath)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		s.Log.Warn().Err(err).Str("path", s.GlossaryPath).Msg("glossary unavailable")
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.Log.Debug().Str("method", r.Method).Str("path", r.URL.Path).
			Int("status", rec.status).Dur("took", time.Since(start)).Msg("request")
	})
}
