// path: internal/httpx/server.go
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"taklite_poc/internal/game"
	"taklite_poc/internal/shared"
)

// Server wires the HTTP layer to one game engine. The engine itself is
// single-threaded; engineMu serializes every access.
type Server struct {
	engineMu sync.Mutex
	engine   *game.Engine
	srvMu    sync.Mutex
	srv      *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

// NewServer builds a Server around an engine.
func NewServer(engine *game.Engine) *Server {
	return &Server{engine: engine}
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.Printf("HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// routes configures the ServeMux with the JSON APIs.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/state", s.withJSON(s.handleState))
	mux.HandleFunc("/api/place", s.withJSON(s.handlePlace))
	mux.HandleFunc("/api/move", s.withJSON(s.handleMove))
	mux.HandleFunc("/api/reset", s.withJSON(s.handleReset))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// ---- API: state ----

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.engineMu.Lock()
	state := s.engine.State()
	s.engineMu.Unlock()
	writeJSON(w, map[string]any{"state": state})
}

// ---- API: place ----

type placeBody struct {
	Square string `json:"square"`
	Color  string `json:"color"`
	Kind   string `json:"kind"` // flat, wall or cap
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body placeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	x, y, ok := shared.ParseSquare(body.Square, s.engine.Size())
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid square")
		return
	}
	color, ok := shared.ParseColor(body.Color)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid color")
		return
	}
	kind, ok := shared.ParseStoneKind(body.Kind)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid stone kind")
		return
	}

	place, err := game.NewPlace(x, y, color, kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyAndRespond(w, place)
}

// ---- API: move ----

type moveBody struct {
	Square string `json:"square"`
	Dir    string `json:"dir"` // up, down, left or right
	Drops  []int  `json:"drops"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body moveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	x, y, ok := shared.ParseSquare(body.Square, s.engine.Size())
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid square")
		return
	}
	dir, ok := shared.ParseDirection(body.Dir)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid direction")
		return
	}

	move, err := game.NewMove(x, y, body.Drops, dir)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.applyAndRespond(w, move)
}

// ---- API: reset ----

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	s.engineMu.Lock()
	if err := s.engine.Reset(); err != nil {
		s.engineMu.Unlock()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	state := s.engine.State()
	s.engineMu.Unlock()

	writeJSON(w, map[string]any{"state": state})
}

func (s *Server) applyAndRespond(w http.ResponseWriter, action game.Action) {
	s.engineMu.Lock()
	err := s.engine.Play(action)
	state := s.engine.State()
	s.engineMu.Unlock()

	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]any{"state": state})
}
