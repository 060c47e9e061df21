// Package http exposes the cellgrid engine over a JSON HTTP API, letting
// a browser canvas or editor host drive sessions remotely.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/cellgrid"
	pres "github.com/aretw0/cellgrid/internal/presentation/graph"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mitchellh/mapstructure"
)

// Server routes HTTP requests to engine sessions, opening each notebook
// lazily on first use and reusing the session afterwards.
type Server struct {
	engine *cellgrid.Engine
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*cellgrid.Session
}

// NewHandler creates the HTTP handler for the engine. extra handlers are
// mounted on the router root (e.g. a /metrics endpoint). A nil logger
// falls back to slog.Default().
func NewHandler(engine *cellgrid.Engine, logger *slog.Logger, extra map[string]http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:   engine,
		logger:   logger,
		sessions: make(map[string]*cellgrid.Session),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.getHealth)
	r.Get("/sessions", s.getSessions)
	r.Get("/graph", s.getGraph)
	r.Get("/graph/mermaid", s.getMermaid)
	r.Post("/command", s.postCommand)
	r.Post("/ack", s.postAck)

	for pattern, h := range extra {
		r.Handle(pattern, h)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) session(r *http.Request, path string) (*cellgrid.Session, error) {
	if path == "" {
		return nil, errors.New("missing notebook parameter")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[path]; ok {
		return sess, nil
	}

	sess, err := s.engine.Open(r.Context(), path)
	if err != nil {
		return nil, err
	}
	s.sessions[path] = sess
	return sess, nil
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

func (s *Server) getSessions(w http.ResponseWriter, r *http.Request) {
	paths, err := s.engine.Sessions(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.logger.Error("List sessions failed", "error", err)
		return
	}
	if paths == nil {
		paths = []string{}
	}
	writeJSON(w, s.logger, paths)
}

// graphResponse bundles the structural graph with the session state a
// renderer needs to overlay it.
type graphResponse struct {
	Graph *domain.Graph `json:"graph"`
	State *domain.State `json:"state"`
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r, r.URL.Query().Get("notebook"))
	if err != nil {
		s.writeOpenError(w, err)
		return
	}
	writeJSON(w, s.logger, graphResponse{Graph: sess.Graph(), State: sess.State()})
}

func (s *Server) getMermaid(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r, r.URL.Query().Get("notebook"))
	if err != nil {
		s.writeOpenError(w, err)
		return
	}

	g := sess.Graph()
	overlay := pres.OverlayFromState(sess.State(), g)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, pres.GenerateMermaid(g, overlay))
}

type commandRequest struct {
	Notebook string `json:"notebook"`
	Text     string `json:"text"`
}

type commandResponse struct {
	Result domain.Result `json:"result"`
	State  *domain.State `json:"state"`
}

func (s *Server) postCommand(w http.ResponseWriter, r *http.Request) {
	var body commandRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Command: invalid request body", "error", err)
		return
	}

	sess, err := s.session(r, body.Notebook)
	if err != nil {
		s.writeOpenError(w, err)
		return
	}

	result, err := sess.Submit(r.Context(), body.Text)
	if err != nil {
		http.Error(w, fmt.Sprintf("Command error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Command failed", "error", err)
		return
	}
	writeJSON(w, s.logger, commandResponse{Result: result, State: sess.State()})
}

func (s *Server) postAck(w http.ResponseWriter, r *http.Request) {
	// Acks arrive from loosely typed executors, so decode into a generic
	// map first and let mapstructure enforce the field names.
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Ack: invalid request body", "error", err)
		return
	}

	var sig domain.AckSignal
	if err := mapstructure.WeakDecode(raw, &sig); err != nil {
		http.Error(w, fmt.Sprintf("Invalid ack: %v", err), http.StatusBadRequest)
		s.logger.Warn("Ack: decode failed", "error", err)
		return
	}

	sess, err := s.session(r, sig.FilePath)
	if err != nil {
		s.writeOpenError(w, err)
		return
	}

	if err := sess.Ack(r.Context(), sig); err != nil {
		http.Error(w, fmt.Sprintf("Ack error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Ack failed", "error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeOpenError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotebookNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
