// internal/httpserver/routes_assist.go
//
// HTTP routes for the assistant: the user plays elsewhere and reports feedback.
//   - POST /assist/new            → start a session (strategy/stat optional)
//   - POST /assist/{id}/feedback  → apply one feedback line ("б 0 а 2 ...")
//   - GET  /assist/{id}/rank      → ranking table (?top=N limits rows)
//   - GET  /assist/{id}/best      → recommended next guess
//   - DELETE /assist/{id}         → drop the session

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/assist"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

func (s *Server) mountAssist(r chi.Router) {
	r.Route("/assist", func(r chi.Router) {
		r.Post("/new", s.handleAssistNew)
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/feedback", s.handleAssistFeedback)
			r.Get("/rank", s.handleAssistRank)
			r.Get("/best", s.handleAssistBest)
			r.Delete("/", s.handleAssistDelete)
		})
	})
}

type assistNewReq struct {
	Strategy string `json:"strategy"` // cut (default) | greedy | greedy-static
	Stat     string `json:"stat"`     // mean | max | mode | median; cut only
}

type assistStateRes struct {
	SessionID  string     `json:"sessionId"`
	Strategy   string     `json:"strategy,omitempty"`
	Facts      []factJSON `json:"facts"`
	Candidates int        `json:"candidates"`
}

type feedbackReq struct {
	Line string `json:"line"`
}

type rankRes struct {
	Columns    []string     `json:"columns"`
	SortedBy   string       `json:"sortedBy,omitempty"`
	Fallback   bool         `json:"fallback"`
	Candidates int          `json:"candidates"`
	Rows       []solver.Row `json:"rows"`
}

// factJSON is the wire form of a feedback fact.
type factJSON struct {
	Letter   string        `json:"letter"`
	Position int           `json:"position"`
	Kind     feedback.Kind `json:"kind"`
	Code     int           `json:"code"`
}

func factsJSON(facts []feedback.Fact) []factJSON {
	out := make([]factJSON, len(facts))
	for i, f := range facts {
		out[i] = factJSON{Letter: string(f.Letter), Position: f.Position, Kind: f.Kind, Code: f.Code()}
	}
	return out
}

func (s *Server) handleAssistNew(w http.ResponseWriter, r *http.Request) {
	var req assistNewReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	cfg := s.deps.Solver
	if req.Stat != "" {
		st, err := solver.ParseStat(req.Stat)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_stat", err)
			return
		}
		cfg.Stat = st
	}
	name := req.Strategy
	if name == "" {
		name = solver.StrategyCut
	}
	strategy, err := solver.NewStrategy(name, cfg, s.deps.Words.Universe())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_strategy", err)
		return
	}

	sess := assist.New(strategy, s.deps.Words.Universe())
	if err := s.sessions.Save(r.Context(), sess.ID, sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	log.Info().Str("session", sess.ID).Str("strategy", name).Msg("assist session started")
	writeJSON(w, http.StatusCreated, assistState(sess, name))
}

func assistState(sess *assist.Session, strategy string) assistStateRes {
	return assistStateRes{
		SessionID:  sess.ID,
		Strategy:   strategy,
		Facts:      factsJSON(sess.Facts()),
		Candidates: sess.Candidates().Len(),
	}
}

// session loads the {id} session or writes a 404.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*assist.Session, bool) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", nil)
		} else {
			writeError(w, http.StatusInternalServerError, "load_failed", nil)
		}
		return nil, false
	}
	return sess, true
}

func (s *Server) handleAssistFeedback(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req feedbackReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	if _, err := sess.ApplyLine(req.Line); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_feedback", err)
		return
	}
	writeJSON(w, http.StatusOK, assistState(sess, ""))
}

func (s *Server) handleAssistRank(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	top := 0
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_top", nil)
			return
		}
		top = n
	}
	t, err := sess.Rank(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "rank_failed", err)
		return
	}
	rows := t.Top(top)
	if rows == nil {
		rows = []solver.Row{}
	}
	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}
	writeJSON(w, http.StatusOK, rankRes{
		Columns:    columns,
		SortedBy:   t.SortedBy,
		Fallback:   t.Fallback,
		Candidates: t.Candidates.Len(),
		Rows:       rows,
	})
}

func (s *Server) handleAssistBest(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	guess, err := sess.Best(r.Context())
	switch {
	case errors.Is(err, solver.ErrNoCandidates):
		writeError(w, http.StatusConflict, "no_candidates", err)
		return
	case err != nil:
		writeError(w, http.StatusServiceUnavailable, "rank_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"guess": guess, "candidates": sess.Candidates().Len()})
}

func (s *Server) handleAssistDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
