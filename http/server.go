package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/lukeylias/MeshMCP/tools"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the MCP tool surface over HTTP and owns the listener
// lifecycle.
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
	once       sync.Once
}

// InvokeRequest is the body of a tool invocation.
type InvokeRequest struct {
	Arguments map[string]any `json:"arguments"`
}

// InvokeResponse is the MCP content envelope returned by tool invocations.
type InvokeResponse struct {
	Content []ContentItem `json:"content"`
}

// ContentItem is one element of the MCP content envelope.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewServer creates a Server wiring the tool service, manifest, health, and
// metrics endpoints.
func NewServer(addr string, svc *tools.Service, registry *prom.Registry, logger *slog.Logger) *Server {
	s := &Server{logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("GET /tools", s.handleManifest)
	mux.HandleFunc("POST /tools/{tool}/invoke", s.handleInvoke(svc))
	if registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http listener starting", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server: listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Handler returns the underlying handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) shutdown(ctx context.Context) error {
	var shutdownErr error
	s.once.Do(func() {
		s.logger.Info("http listener shutting down")
		shutdownErr = s.httpServer.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Mesh Design System MCP Server",
		"status":  "running",
		"version": "1.0.0",
	})
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": tools.Manifest()})
}

// handleInvoke executes a tool. Tool-level failures (unknown component,
// extraction failure, bad arguments) travel inside the response body as
// structured errors; HTTP status codes are reserved for transport problems.
func (s *Server) handleInvoke(svc *tools.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tool := r.PathValue("tool")

		// An empty body means "no arguments".
		var req InvokeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "invalid request body"})
			return
		}

		resp := svc.Invoke(r.Context(), tool, req.Arguments)

		payload, err := json.Marshal(resp)
		if err != nil {
			s.logger.Error("failed to encode tool response", "tool", tool, "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": "encoding failure"})
			return
		}

		writeJSON(w, http.StatusOK, InvokeResponse{
			Content: []ContentItem{{Type: "text", Text: string(payload)}},
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
