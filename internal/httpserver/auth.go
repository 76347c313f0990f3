// internal/httpserver/auth.go
//
// Accounts, JWT cookies and the anonymous-player cookie.
//   - POST /auth/signup, /auth/login (rate limited per client), /auth/logout; GET /auth/me
//   - GET /stats/me   → statistics computed from the player's record
//   - GET /games/mine → recent games
//
// Guests play under an anonymous cookie ID; signing up or logging in
// claims that history for the account.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessword/internal/users"
)

// credentials is the payload for signup/login.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authUser is placed into request context by auth middleware.
type authUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ctxUserKey is the context key type for storing authUser.
type ctxUserKey struct{}

func currentUser(ctx context.Context) *authUser {
	u, _ := ctx.Value(ctxUserKey{}).(*authUser)
	return u
}

// mountAuthRoutes registers authentication + gated routes.
func (s *Server) mountAuthRoutes() {
	creds := newLimiterSet()
	s.r.With(creds.limit).Post("/auth/signup", s.handleSignup)
	s.r.With(creds.limit).Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	s.r.Group(func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, currentUser(r.Context()))
		})
		r.Get("/stats/me", s.handleStats)
		r.Get("/games/mine", s.handleMyGames)
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r.Context())
	st, err := s.results.Statistics(r.Context(), me.ID, s.cfg.MaxAttempts)
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Msg("stats")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleMyGames(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r.Context())
	rows, err := s.results.RecentGames(r.Context(), me.ID, 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleSignup creates a user, signs a JWT, sets the auth cookie and claims anon history.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.users.Create(r.Context(), body.Username, body.Password)
	var invalid users.ValidationError
	switch {
	case errors.Is(err, users.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "Username taken")
		return
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, invalid.Error())
		return
	case err != nil:
		log.Error().Err(err).Msg("signup")
		writeError(w, http.StatusInternalServerError, "signup_failed")
		return
	}
	if !s.issueToken(w, u) {
		return
	}
	s.claimAnon(r.Context(), s.ensureAnonID(w, r), u.ID)
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "username": u.Username, "createdAt": u.CreatedAt})
}

// handleLogin authenticates, sets the cookie and claims anon history.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.users.FindByUsername(r.Context(), body.Username)
	if err != nil || !users.CheckPassword(u.PasswordHash, body.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if !s.issueToken(w, u) {
		return
	}
	s.claimAnon(r.Context(), s.ensureAnonID(w, r), u.ID)
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "username": u.Username})
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.setCookie(w, s.cfg.CookieName, "", time.Time{}, -1)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) issueToken(w http.ResponseWriter, u *users.User) bool {
	tok, exp, err := s.signJWT(u.ID, u.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return false
	}
	w.Header().Set("X-Auth-Token", tok)
	s.setCookie(w, s.cfg.CookieName, tok, exp, 0)
	return true
}

// claimAnon transfers anonymous games, daily results and running sessions
// to a user account.
func (s *Server) claimAnon(ctx context.Context, anonID, userID string) {
	if n := s.games.Reassign(ctx, anonID, userID); n > 0 {
		log.Debug().Int("sessions", n).Str("user", userID).Msg("claimed running games")
	}
	s.dailyMu.Lock()
	for k, id := range s.dailySessions {
		date, ok := strings.CutPrefix(k, anonID+"|")
		if !ok {
			continue
		}
		delete(s.dailySessions, k)
		if _, taken := s.dailySessions[dailyKey(userID, date)]; !taken {
			s.dailySessions[dailyKey(userID, date)] = id
		}
	}
	s.dailyMu.Unlock()

	if err := s.results.ClaimAnon(ctx, anonID, userID); err != nil {
		log.Warn().Err(err).Msg("claim anon games")
	}
	if err := s.daily.ClaimAnon(ctx, anonID, userID); err != nil {
		log.Warn().Err(err).Msg("claim anon daily results")
	}
}

// --------------------------- identity middleware ---------------------------

// parseToken validates a JWT and returns the user it names, if that user still exists.
func (s *Server) parseToken(ctx context.Context, tok string) (*authUser, bool) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, false
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return nil, false
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, false
	}
	return &authUser{ID: u.ID, Username: u.Username}, true
}

// withOptionalAuth decorates requests with user context if a valid JWT is present.
// It never 401s; used for routes where guests are allowed.
func (s *Server) withOptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := s.bearerOrCookie(r); tok != "" {
				if u, ok := s.parseToken(r.Context(), tok); ok {
					r = r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, u))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth enforces a valid JWT and injects authUser into request context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := s.bearerOrCookie(r)
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			u, ok := s.parseToken(r.Context(), tok)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, u)))
		})
	}
}

const anonCookieName = "guessword_anon"

// ownerID is the logged-in user's ID, or the anonymous cookie ID for guests.
func (s *Server) ownerID(w http.ResponseWriter, r *http.Request) string {
	if me := currentUser(r.Context()); me != nil {
		return me.ID
	}
	return s.ensureAnonID(w, r)
}

// ensureAnonID returns an existing anon cookie or sets a new one.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := users.GenID()
	s.setCookie(w, anonCookieName, id, time.Now().Add(180*24*time.Hour), 0)
	return id
}

// ------------------------------ JWT & cookies ------------------------------

// signJWT creates an HS256 JWT with id/username and the configured expiry.
// Token lifetimes follow the wall clock, not the injected game clock.
func (s *Server) signJWT(id, username string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(time.Duration(s.cfg.JWTExpiresDays) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// setCookie writes an HttpOnly cookie; maxAge < 0 deletes it.
func (s *Server) setCookie(w http.ResponseWriter, name, value string, exp time.Time, maxAge int) {
	secure := s.cfg.Production()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
		MaxAge:   maxAge,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or auth cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}
