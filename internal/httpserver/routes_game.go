// internal/httpserver/routes_game.go
//
// HTTP routes for games against a hidden word:
//   - POST /game/new   → start a game (fixed answer, daily word, or random)
//   - POST /game/guess → submit a guess; finished games are recorded

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
)

func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/guess", s.handleGuess)
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
	Daily  bool   `json:"daily"`  // use the word of the day
	Rows   *int   `json:"rows"`   // guess limit; default 6, 0 means unlimited
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Rows   int    `json:"rows"`
	Date   string `json:"date,omitempty"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	rows := game.DefaultRows
	if req.Rows != nil {
		rows = *req.Rows
	}

	res := newGameRes{Rows: rows}
	answer := req.Answer
	switch {
	case req.Daily:
		now := time.Now()
		word, ok := daily.Word(now, s.deps.DailySalt, s.deps.Words.Universe())
		if !ok {
			writeError(w, http.StatusServiceUnavailable, "no_words", nil)
			return
		}
		answer = word.String()
		res.Date = daily.DateKey(now)
	case answer == "":
		answer = s.deps.Words.Random()
	}

	g, err := game.New(answer, rows, s.deps.Words)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_answer", err)
		return
	}
	if err := s.games.Save(r.Context(), g.ID, g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	res.GameID = g.ID
	writeJSON(w, http.StatusCreated, res)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Facts    []factJSON `json:"facts"`
	State    game.State `json:"state"`
	Attempts int        `json:"attempts"`
	Answer   string     `json:"answer,omitempty"` // revealed once finished
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	g, err := s.games.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	s.gameMu.Lock()
	facts, state, err := g.ApplyGuess(req.Guess)
	attempts, finished := g.Attempts(), g.Finished
	s.gameMu.Unlock()
	switch {
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "finished", err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, "illegal_guess", err)
		return
	}

	res := guessRes{Facts: factsJSON(facts), State: state, Attempts: attempts}
	if finished {
		res.Answer = g.Answer.String()
		s.recordGame(r, g)
	}
	writeJSON(w, http.StatusOK, res)
}

// recordGame stores a finished game, best effort.
func (s *Server) recordGame(r *http.Request, g *game.Game) {
	if s.deps.Results == nil {
		return
	}
	err := s.deps.Results.Insert(r.Context(), results.Result{
		RunID:    g.ID,
		Strategy: "manual",
		Answer:   g.Answer.String(),
		Attempts: g.Attempts(),
		Won:      g.Won,
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record game")
	}
}
