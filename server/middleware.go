package server

import (
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// requestIDHeader carries the per-request correlation ID
const requestIDHeader = "X-Request-ID"

// withRequestID assigns a UUID to every request (honoring one supplied
// by the client) and echoes it on the response
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Debugw("Request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// withCORS answers preflight requests and sets CORS headers for
// configured origins
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// originAllowed checks an Origin header against the configured
// allowlist. Entries without a port match any port on that host.
func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.conf().Server.AllowedOrigins {
		if origin == allowed {
			return true
		}
		if len(origin) > len(allowed) && origin[:len(allowed)] == allowed && origin[len(allowed)] == ':' {
			return true
		}
	}
	return false
}

// clientLimiter pairs a token bucket with its last use, so idle
// entries can be evicted
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterFor returns the rate limiter for a client address
func (s *Server) limiterFor(remoteAddr string) *rate.Limiter {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	s.limitersMu.Lock()
	defer s.limitersMu.Unlock()

	entry, ok := s.limiters[host]
	if !ok {
		cfg := s.conf()
		entry = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(cfg.Server.RatePerSecond), cfg.Server.RateBurst),
		}
		s.limiters[host] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// withRateLimit enforces the per-client request budget
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.conf().Server.RatePerSecond > 0 {
			if !s.limiterFor(r.RemoteAddr).Allow() {
				writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// startLimiterJanitor evicts limiter entries idle for over an hour
func (s *Server) startLimiterJanitor() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-1 * time.Hour)
				s.limitersMu.Lock()
				for host, entry := range s.limiters {
					if entry.lastSeen.Before(cutoff) {
						delete(s.limiters, host)
					}
				}
				s.limitersMu.Unlock()
			}
		}
	}()
}
