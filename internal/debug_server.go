package internal

import (
	"chat-relay/contract"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"
)

//go:embed stats.html
var templatesFS embed.FS

var _ contract.Worker = (*DebugServer)(nil)

type StatsProvider func() map[string]any

type PageData struct {
	Title string
	At    string
	Stats map[string]any
}

// DebugServer exposes live pipeline counters over HTTP:
// /debug/stats as JSON and /debug/inspect as an HTML page.
type DebugServer struct {
	log      *slog.Logger
	port     int
	provider StatsProvider
	tmpl     *template.Template
}

func NewDebugServer(log *slog.Logger, port int, provider StatsProvider) *DebugServer {
	return &DebugServer{
		log:      log,
		port:     port,
		provider: provider,
		tmpl:     template.Must(template.ParseFS(templatesFS, "stats.html")),
	}
}

func (s *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /debug/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.stats()); err != nil {
			s.log.Debug("Unable to encode debug stats", "error", err)
		}
	})

	mux.HandleFunc("GET /debug/inspect", func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Title: "Chat relay",
			At:    time.Now().UTC().Format("15:04:05"),
			Stats: s.stats(),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tmpl.Execute(w, data); err != nil {
			s.log.Debug("Unable to render debug page", "error", err)
		}
	})

	return mux
}

// Run serves until ctx is done.
func (s *DebugServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.log.Info("Starting debug server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("debug server error: %w", err)
	}
	return nil
}

func (s *DebugServer) stats() map[string]any {
	if s.provider == nil {
		return map[string]any{}
	}
	return s.provider()
}
