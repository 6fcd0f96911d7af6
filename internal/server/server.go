package server

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/creativeintel/artconnect/config"
	"github.com/creativeintel/artconnect/internal/analytics"
	"github.com/creativeintel/artconnect/internal/decisionlog"
	"github.com/creativeintel/artconnect/internal/models"
	"github.com/creativeintel/artconnect/internal/pipeline"
	"github.com/creativeintel/artconnect/internal/reply"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the local operator dashboard: ranked opportunities, a
// review form per interaction, and the analytics page.
type Server struct {
	cfg     *config.Config
	pipe    *pipeline.Pipeline
	drafter *reply.Drafter
	log     *decisionlog.Log
	pages   map[string]*template.Template
	mux     *http.ServeMux
}

func New(cfg *config.Config, pipe *pipeline.Pipeline, drafter *reply.Drafter, log *decisionlog.Log) (*Server, error) {
	base, err := template.ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("[Server] parsing base template: %w", err)
	}

	pageNames := []string{"index.html", "review.html", "analytics.html"}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("[Server] cloning base for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("[Server] parsing template %s: %w", name, err)
		}
		pages[name] = clone
	}

	s := &Server{
		cfg:     cfg,
		pipe:    pipe,
		drafter: drafter,
		log:     log,
		pages:   pages,
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/review/", s.handleReview)
	s.mux.HandleFunc("/decide", s.handleDecide)
	s.mux.HandleFunc("/analytics", s.handleAnalytics)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	scored, err := s.pipe.ScoredBatch(r.Context())
	if err != nil {
		s.fail(w, "scoring batch", err)
		return
	}
	entries, err := s.log.ReadAll()
	if err != nil {
		s.fail(w, "reading decision log", err)
		return
	}

	platform := r.URL.Query().Get("platform")
	minScore := s.cfg.Scoring.HighValueThreshold
	if v := r.URL.Query().Get("min_score"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			minScore = parsed
		}
	}

	var filtered []models.ScoredInteraction
	for _, in := range scored {
		if platform != "" && platform != "All" && in.Platform != platform {
			continue
		}
		if in.OpportunityScore < minScore {
			continue
		}
		filtered = append(filtered, in)
	}
	if len(filtered) > 50 {
		filtered = filtered[:50]
	}

	s.render(w, "index.html", map[string]any{
		"Summary":  analytics.Summarize(scored, entries, s.cfg.Scoring.HighValueThreshold),
		"Filtered": filtered,
		"Platform": platform,
		"MinScore": minScore,
	})
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/review/")
	if id == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	in, ok := s.findInteraction(r, id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.render(w, "review.html", map[string]any{
		"Interaction": in,
		"Draft":       s.drafter.Draft(in.Interaction),
	})
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	id := r.FormValue("interaction_id")
	action := r.FormValue("action")
	finalReply := r.FormValue("final_reply")

	switch action {
	case models.ActionApprove, models.ActionEdit, models.ActionReject:
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	in, ok := s.findInteraction(r, id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	originalReply := s.drafter.Draft(in.Interaction)
	if action == models.ActionApprove && finalReply == "" {
		finalReply = originalReply
	}

	if err := s.log.Record(in.Interaction, action, originalReply, finalReply); err != nil {
		s.fail(w, "recording decision", err)
		return
	}

	http.Redirect(w, r, "/analytics", http.StatusFound)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	scored, err := s.pipe.ScoredBatch(r.Context())
	if err != nil {
		s.fail(w, "scoring batch", err)
		return
	}
	entries, err := s.log.ReadAll()
	if err != nil {
		s.fail(w, "reading decision log", err)
		return
	}

	recent := entries
	if len(recent) > 15 {
		recent = recent[len(recent)-15:]
	}

	summary := analytics.Summarize(scored, entries, s.cfg.Scoring.HighValueThreshold)
	s.render(w, "analytics.html", map[string]any{
		"Summary": summary,
		"Funnel":  summary.Funnel(),
		"Recent":  recent,
	})
}

func (s *Server) findInteraction(r *http.Request, id string) (models.ScoredInteraction, bool) {
	scored, err := s.pipe.ScoredBatch(r.Context())
	if err != nil {
		return models.ScoredInteraction{}, false
	}
	for _, in := range scored {
		if in.InteractionID == id {
			return in, true
		}
	}
	return models.ScoredInteraction{}, false
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.pages[name]
	if !ok {
		slog.Error("[Server] Template not found", slog.String("template", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		slog.Error("[Server] Error rendering template",
			slog.String("template", name),
			slog.String("error", err.Error()))
	}
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	slog.Error("[Server] Request failed",
		slog.String("op", op),
		slog.String("error", err.Error()))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// Serve starts the HTTP server on the configured port.
func Serve(cfg *config.Config, pipe *pipeline.Pipeline, drafter *reply.Drafter, log *decisionlog.Log) error {
	srv, err := New(cfg, pipe, drafter, log)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	slog.Info("[Server] Listening", slog.String("addr", "http://"+addr))
	return http.ListenAndServe(addr, srv.Handler())
}
