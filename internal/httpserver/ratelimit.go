// internal/httpserver/ratelimit.go
//
// Per-client token buckets for the credential endpoints (signup/login),
// keyed by the RealIP-adjusted remote address.

package httpserver

import (
	"net"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	authRate  = rate.Limit(1) // tokens per second
	authBurst = 5
)

type limiterSet struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
}

func newLimiterSet() *limiterSet {
	return &limiterSet{m: make(map[string]*rate.Limiter)}
}

func (l *limiterSet) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.m[key]
	if !ok {
		lim = rate.NewLimiter(authRate, authBurst)
		l.m[key] = lim
	}
	return lim
}

// limit answers 429 once a client has spent its burst.
func (l *limiterSet) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !l.get(host).Allow() {
			log.Warn().Str("client", host).Str("path", r.URL.Path).Msg("rate limited")
			writeError(w, http.StatusTooManyRequests, "too_many_requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
