package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/clausebeacon/internal/analysis"
	"github.com/dgallion1/clausebeacon/internal/config"
	"github.com/dgallion1/clausebeacon/internal/gemini"
	"github.com/dgallion1/clausebeacon/internal/session"
)

// Server is the HTTP API server for clausebeacon.
type Server struct {
	router   chi.Router
	svc      *analysis.Service
	sessions *session.Store
	model    *gemini.Client
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(svc *analysis.Service, sessions *session.Store, model *gemini.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		svc:      svc,
		sessions: sessions,
		model:    model,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.ClauseBeaconAPIKey, s.log))

		r.Post("/api/documents", s.handleUpload)
		r.Get("/api/documents/{sessionID}", s.handleGetSession)
		r.Delete("/api/documents/{sessionID}", s.handleDeleteSession)

		r.Post("/api/documents/{sessionID}/analyze", s.handleAnalyze)
		r.Post("/api/documents/{sessionID}/translate", s.handleTranslate)
		r.Post("/api/documents/{sessionID}/chat", s.handleChat)
		r.Post("/api/documents/{sessionID}/explain", s.handleExplain)
		r.Post("/api/documents/{sessionID}/speak", s.handleSpeak)

		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.model == nil || s.model.Stats == nil {
		jsonError(w, "llm stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"model": s.model.Model(),
		"stats": s.model.Stats.Snapshot(),
	})
}

// session fetches the session named in the URL, writing a 404 on miss.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	id := chi.URLParam(r, "sessionID")
	sess := s.sessions.Get(id)
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
	}
	return sess
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
