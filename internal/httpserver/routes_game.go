// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game:
//   - POST /game/new        → start a random (or daily) game
//   - POST /game/key        → feed one key event (letter, "<"/backspace, ">"/enter)
//   - POST /game/guess      → replace the current row with a word and submit it
//   - GET  /game/{id}       → current snapshot
//   - GET  /game/{id}/share → result grid of a finished game (text/plain)
//
// Clients poll the snapshot after every mutation; there is no push channel.
// A game is visible only to its owner; anyone else gets 404.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessword/internal/daily"
	"github.com/robalobadob/guessword/internal/game"
	"github.com/robalobadob/guessword/internal/results"
	"github.com/robalobadob/guessword/internal/store"
	"github.com/robalobadob/guessword/internal/words"
)

func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/key", s.handleKey)
	r.Post("/game/guess", s.handleGuess)
	r.Get("/game/{id}", s.handleGetGame)
	r.Get("/game/{id}/share", s.handleShare)
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "random" (default) | "daily"
	Answer string `json:"answer"` // optional fixed answer, ignored in production
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	Mode        string `json:"mode"`
	WordLength  int    `json:"wordLength"`
	MaxAttempts int    `json:"maxAttempts"`
	Date        string `json:"date,omitempty"`
	Played      bool   `json:"played,omitempty"` // daily: already finished today
}

// handleNewGame creates an in-memory session and persists its owner row.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	owner := s.ownerID(w, r)

	if req.Mode == string(store.ModeDaily) {
		s.startDaily(w, r, owner)
		return
	}

	var (
		sess *game.Session
		err  error
	)
	if req.Answer != "" && !s.cfg.Production() {
		if !s.words.IsAcceptable(req.Answer) {
			writeError(w, http.StatusBadRequest, "answer_not_in_word_list")
			return
		}
		sess, err = game.NewWithTarget(s.words, s.gameConfig(), req.Answer)
	} else {
		sess, err = game.New(s.words, s.gameConfig())
	}
	if err != nil {
		if errors.Is(err, words.ErrEmptyCandidateList) {
			log.Error().Err(err).Msg("no candidate words loaded")
		}
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}

	e := &store.Entry{Session: sess, OwnerID: owner, Mode: store.ModeRandom, StartedAt: s.now()}
	if err := s.saveEntry(r.Context(), e); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{
		GameID:      sess.ID(),
		Mode:        string(e.Mode),
		WordLength:  sess.Config().WordLength,
		MaxAttempts: sess.Config().MaxAttempts,
	})
}

// saveEntry stores the running session and writes its owner row.
// The DB row is best effort: a failure is logged, the game still runs.
func (s *Server) saveEntry(ctx context.Context, e *store.Entry) error {
	if err := s.games.Save(ctx, e); err != nil {
		log.Error().Err(err).Msg("save game")
		return err
	}
	if err := s.results.StartGame(ctx, results.Game{
		ID:        e.Session.ID(),
		OwnerID:   e.OwnerID,
		Mode:      string(e.Mode),
		StartedAt: e.StartedAt,
	}); err != nil {
		log.Warn().Err(err).Str("gameId", e.Session.ID()).Msg("insert game row")
	}
	return nil
}

// keyReq is the payload for POST /game/key.
type keyReq struct {
	GameID string `json:"gameId"`
	Key    string `json:"key"`
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.apply(w, r, req.GameID, func(sess *game.Session) { sess.HandleKey(req.Key) })
}

// guessReq is the payload for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.apply(w, r, req.GameID, func(sess *game.Session) { sess.SubmitWord(req.Guess) })
}

// owned runs fn on the entry if it belongs to the caller. Other players'
// games are reported as store.ErrNotFound.
func (s *Server) owned(w http.ResponseWriter, r *http.Request, id string, fn func(e *store.Entry)) error {
	owner := s.ownerID(w, r)
	return s.games.Update(r.Context(), id, func(e *store.Entry) error {
		if e.OwnerID != owner {
			return store.ErrNotFound
		}
		fn(e)
		return nil
	})
}

// apply runs op on the session under its entry lock, records a newly
// finished game, and responds with the resulting snapshot.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, id string, op func(*game.Session)) {
	var snap game.Snapshot
	err := s.owned(w, r, id, func(e *store.Entry) {
		op(e.Session)
		if e.Session.Status().Terminal() && !e.Recorded {
			e.Recorded = true
			e.EndedAt = s.now()
			s.recordOutcome(r.Context(), e)
		}
		snap = e.Session.Snapshot()
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// recordOutcome persists a finished game (best effort, non-fatal if it fails).
func (s *Server) recordOutcome(ctx context.Context, e *store.Entry) {
	sess := e.Session
	status := string(sess.Status())
	attempts := sess.AttemptsUsed()
	now := s.now()

	if err := s.results.FinishGame(ctx, sess.ID(), status, attempts, now); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID()).Msg("finish game")
	}
	if e.Mode == store.ModeDaily {
		if err := s.daily.InsertResult(ctx, daily.Result{
			OwnerID:   e.OwnerID,
			Date:      e.Date,
			WordIndex: e.WordIndex,
			Attempts:  attempts,
			Won:       sess.Status() == game.StatusWon,
			ElapsedMs: int(now.Sub(e.StartedAt).Milliseconds()),
		}); err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID()).Msg("insert daily result")
		}
	}
	log.Info().
		Str("gameId", sess.ID()).
		Str("owner", e.OwnerID).
		Str("status", status).
		Int("attempts", attempts).
		Msg("game finished")
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.owned(w, r, chi.URLParam(r, "id"), func(e *store.Entry) {
		snap = e.Session.Snapshot()
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var (
		text string
		ok   bool
	)
	err := s.owned(w, r, chi.URLParam(r, "id"), func(e *store.Entry) {
		text, ok = e.Session.ShareText()
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if !ok {
		writeError(w, http.StatusConflict, "game_in_progress")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strings.TrimRight(text, "\n") + "\n"))
}
