// internal/httpserver/server.go
//
// HTTP server wiring for the guessing game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth): /game/new, /game/key, /game/guess, /game/{id}, /game/{id}/share.
//   - Daily leaderboard: /daily/leaderboard.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - Running sessions live in a store.Store; every operation on a session runs
//     under that entry's lock, since the engine itself does no locking.
//   - Outcomes are written to SQLite once, on the first terminal transition.
//   - A janitor drops finished sessions after an hour and abandoned ones after a day.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessword/internal/config"
	"github.com/robalobadob/guessword/internal/daily"
	"github.com/robalobadob/guessword/internal/game"
	"github.com/robalobadob/guessword/internal/results"
	"github.com/robalobadob/guessword/internal/store"
	"github.com/robalobadob/guessword/internal/users"
	"github.com/robalobadob/guessword/internal/words"
)

// Server bundles the router, word store, running sessions and persistence.
type Server struct {
	r       *chi.Mux
	cfg     config.Config
	words   *words.Store
	games   store.Store
	results *results.Store
	daily   *daily.Store
	users   *users.Store
	now     func() time.Time

	dailyMu       sync.Mutex
	dailySessions map[string]string // ownerID|date → game ID
}

// Option tweaks a Server at construction.
type Option func(*Server)

// WithClock replaces time.Now (daily-mode tests).
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithUsers replaces the user store (tests lower the bcrypt cost).
func WithUsers(u *users.Store) Option {
	return func(s *Server) { s.users = u }
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, ws *words.Store, st store.Store, db *sql.DB, opts ...Option) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		words:   ws,
		games:   st,
		results: results.NewStore(db),
		daily:   daily.NewStore(db),
		users:   users.NewStore(db),
		now:     time.Now,

		dailySessions: make(map[string]string),
	}
	for _, o := range opts {
		o(s)
	}

	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog access line
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "guessword",
			"endpoints": []string{
				"/health", "POST /game/new", "POST /game/key", "POST /game/guess",
				"GET /game/{id}", "GET /game/{id}/share", "/daily/leaderboard", "/auth/*",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		c, a := s.words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{
			"candidates": c, "acceptable": a, "games": s.games.Len(),
		})
	})

	// Game endpoints: optional auth, guests can play
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		s.mountGame(r)
		s.mountDaily(r)
	})

	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	stop := s.startJanitor(pruneEvery)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

const (
	pruneEvery  = 10 * time.Minute
	finishedTTL = time.Hour      // after the outcome is recorded
	idleTTL     = 24 * time.Hour // unfinished, since StartedAt
)

// startJanitor prunes sessions every interval until stop is called.
func (s *Server) startJanitor(every time.Duration) (stop func()) {
	t := time.NewTicker(every)
	done := make(chan struct{})
	go func() {
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.pruneSessions(s.now())
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

// pruneSessions removes expired sessions and the daily index entries
// pointing at them.
func (s *Server) pruneSessions(now time.Time) int {
	gone := s.games.Prune(context.Background(), func(e *store.Entry) bool {
		if e.Recorded {
			return now.Sub(e.EndedAt) > finishedTTL
		}
		return now.Sub(e.StartedAt) > idleTTL
	})
	if len(gone) == 0 {
		return 0
	}
	removed := make(map[string]bool, len(gone))
	for _, id := range gone {
		removed[id] = true
	}
	s.dailyMu.Lock()
	for k, id := range s.dailySessions {
		if removed[id] {
			delete(s.dailySessions, k)
		}
	}
	s.dailyMu.Unlock()

	log.Debug().Int("pruned", len(gone)).Int("remaining", s.games.Len()).Msg("sessions")
	return len(gone)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one zerolog line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// gameConfig is the board every new session uses.
func (s *Server) gameConfig() game.Config {
	return game.Config{WordLength: s.cfg.WordLength, MaxAttempts: s.cfg.MaxAttempts}
}
