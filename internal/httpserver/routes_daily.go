// internal/httpserver/routes_daily.go
//
// Daily Challenge mode.
//   - POST /game/new {"mode":"daily"} → start (or resume) today's game
//   - GET  /daily/leaderboard         → top 20 winners for today (or ?date=)
//
// Every player gets the same target on a given UTC date and can finish it
// once (enforced by daily_results). A running daily session is reused until
// it ends.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessword/internal/daily"
	"github.com/robalobadob/guessword/internal/game"
	"github.com/robalobadob/guessword/internal/store"
)

// mountDaily registers /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Get("/daily/leaderboard", s.handleLeaderboard)
}

// startDaily creates or reuses today's session for owner.
func (s *Server) startDaily(w http.ResponseWriter, r *http.Request, owner string) {
	now := s.now()
	date, idx, answer, err := daily.Pick(s.words, now, s.cfg.DailySalt)
	if err != nil {
		log.Error().Err(err).Msg("daily pick")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}
	res := newGameRes{
		Mode:        string(store.ModeDaily),
		WordLength:  s.cfg.WordLength,
		MaxAttempts: s.cfg.MaxAttempts,
		Date:        date,
	}

	if played, err := s.daily.AlreadyPlayed(r.Context(), owner, date); err == nil && played {
		res.Played = true
		writeJSON(w, http.StatusOK, res)
		return
	}

	key := dailyKey(owner, date)
	s.dailyMu.Lock()
	defer s.dailyMu.Unlock()

	if id, ok := s.dailySessions[key]; ok {
		if _, err := s.games.Get(r.Context(), id); err == nil {
			res.GameID = id
			writeJSON(w, http.StatusOK, res)
			return
		}
	}

	sess, err := game.NewWithTarget(s.words, s.gameConfig(), answer)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily session")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}
	e := &store.Entry{
		Session:   sess,
		OwnerID:   owner,
		Mode:      store.ModeDaily,
		Date:      date,
		WordIndex: idx,
		StartedAt: now,
	}
	if err := s.saveEntry(r.Context(), e); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.dailySessions[key] = sess.ID()

	res.GameID = sess.ID()
	writeJSON(w, http.StatusOK, res)
}

// dailyKey indexes Server.dailySessions.
func dailyKey(owner, date string) string { return owner + "|" + date }

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.now())
	}
	rows, err := s.daily.Leaderboard(r.Context(), date, 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
