// Package server serves the live browser preview of the resume being edited.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IMPERIALX7/cosmic-resume/internal/export"
	"github.com/IMPERIALX7/cosmic-resume/internal/preview"
	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Event names sent on the /events stream
const (
	EventReady    = "ready"
	EventDocument = "document"
)

// Config holds server configuration
type Config struct {
	Addr string
	// ExportEvery is the minimum interval between PDF exports; zero disables throttling
	ExportEvery time.Duration
}

// Server represents the preview HTTP server
type Server struct {
	httpServer    *http.Server
	session       *session.Session
	exporter      *export.Exporter
	exportLimiter *rate.Limiter
	logger        *zap.Logger
}

// New creates a server over sess. exporter may be nil, which disables
// the export route.
func New(cfg Config, sess *session.Session, exporter *export.Exporter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		session:  sess,
		exporter: exporter,
		logger:   logger,
	}
	if cfg.ExportEvery > 0 {
		s.exportLimiter = rate.NewLimiter(rate.Every(cfg.ExportEvery), 1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /export.pdf", s.handleExport)
	mux.HandleFunc("GET /document.json", s.handleDocument)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.withLogging(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the root handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run listens until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	// Open event streams hold their handlers until the request context ends
	s.httpServer.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", zap.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("preview server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	<-errCh
	s.logger.Info("preview server stopped")
	return nil
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := preview.RenderHTML(preview.Project(s.session.Snapshot()), preview.HTMLOptions{
		Interactive: true,
		LiveReload:  true,
		EventsPath:  "/events",
	})
	if err != nil {
		s.logger.Error("preview render failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to render preview")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(page))
}

// handleEvents streams a document event carrying the new version after
// every commit. Bursts of commits collapse into a single event.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	stream, err := newEventStream(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	changed := make(chan struct{}, 1)
	unsubscribe := s.session.Subscribe(func(_ types.Document) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	if err := stream.send(EventReady, s.session.Version()); err != nil {
		return
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
			if err := stream.send(EventDocument, s.session.Version()); err != nil {
				s.logger.Debug("event stream closed", zap.Error(err))
				return
			}
		}
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		s.errorResponse(w, http.StatusNotFound, "export is not configured")
		return
	}
	if s.exportLimiter != nil && !s.exportLimiter.Allow() {
		w.Header().Set("Retry-After", "1")
		s.errorResponse(w, http.StatusTooManyRequests, "export requested too often")
		return
	}

	artifact, err := s.exporter.Render(r.Context(), s.session.Snapshot())
	if errors.Is(err, export.ErrBusy) {
		s.errorResponse(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		s.logger.Warn("export failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	_, _ = w.Write(artifact.Data)
}

func (s *Server) handleDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

func versionPayload(v uint64) map[string]uint64 {
	return map[string]uint64{"version": v}
}
