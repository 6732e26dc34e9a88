// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Assistant endpoints: mounted under /assist.
//   - Game endpoints: POST /game/new, POST /game/guess.
//   - Results summary: GET /results/summary (when a results store is configured).
//
// Notes:
//   - Sessions and games live in memory stores; finished games are written to
//     the results store best effort.
//   - CORS is origin-aware and credentials-enabled.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/assist"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Words        *words.List
	Solver       solver.Config
	Results      *results.Store // optional
	DailySalt    string
	ClientOrigin string
	Timeout      time.Duration // per-request bound; 0 means 30s
}

// Server bundles router, in-memory stores, and collaborators.
type Server struct {
	r        *chi.Mux
	deps     Deps
	sessions store.Store[*assist.Session]
	games    store.Store[*game.Game]

	gameMu sync.Mutex // serializes guesses; *game.Game is not safe for concurrent use
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.Timeout <= 0 {
		d.Timeout = 30 * time.Second
	}
	s := &Server{
		r:        chi.NewRouter(),
		deps:     d,
		sessions: store.NewMemoryStore[*assist.Session](),
		games:    store.NewMemoryStore[*game.Game](),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)          // add X-Request-ID
	s.r.Use(chimw.RealIP)             // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)            // zerolog access log
	s.r.Use(chimw.Recoverer)          // recover from panics
	s.r.Use(chimw.Timeout(d.Timeout)) // bound handler time
	s.r.Use(jsonContentType)          // default JSON responses
	s.r.Use(cors(d.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-solver",
			"endpoints": []string{
				"/health", "/debug/words",
				"POST /assist/new", "POST /assist/{id}/feedback", "GET /assist/{id}/rank", "GET /assist/{id}/best",
				"POST /game/new", "POST /game/guess",
				"GET /results/summary",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{
			"words":    d.Words.Len(),
			"sessions": s.sessions.Len(),
			"games":    s.games.Len(),
		})
	})

	s.mountAssist(s.r)
	s.mountGame(s.r)

	s.r.Get("/results/summary", s.handleResultsSummary)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

func (s *Server) handleResultsSummary(w http.ResponseWriter, r *http.Request) {
	if s.deps.Results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled", nil)
		return
	}
	rows, err := s.deps.Results.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("results summary")
		writeError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	if rows == nil {
		rows = []results.SummaryRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code} plus the error text as "detail" when err is set.
func writeError(w http.ResponseWriter, status int, code string, err error) {
	body := map[string]string{"error": code}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}

// decode reads a JSON body. An empty body leaves v unchanged.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
