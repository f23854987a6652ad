package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/MudShop_Go/internal/logger"
)

// AuthMiddleware validates the API key on every non-public path
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := apiKeyFromRequest(r)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// apiKeyFromRequest reads the key from X-API-Key, then a bearer token.
// Browsers cannot set headers on a websocket handshake, so upgrade requests
// may also pass it as a query parameter.
func apiKeyFromRequest(r *http.Request) string {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return key
	}
	if auth := r.Header.Get(HeaderAuthorization); strings.HasPrefix(auth, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(auth, BearerPrefix))
	}
	if websocket.IsWebSocketUpgrade(r) {
		return r.URL.Query().Get(QueryAPIKey)
	}
	return ""
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector counts failed logins and requests per IP over
// a fixed window
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
	now              func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		windowStart:      time.Now(),
		now:              time.Now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.failedAuthByIP[ip]++

	if n := s.failedAuthByIP[ip]; n >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// RecordRequest counts a request and reports whether ip is still under the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.requestCountByIP[ip]++

	n := s.requestCountByIP[ip]
	if n <= RequestRateLimit {
		return true
	}
	if n%RateAlertEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// rollWindow clears the counters once the window has passed. Caller holds mu.
func (s *SuspiciousActivityDetector) rollWindow() {
	if s.now().Sub(s.windowStart) > RateWindow {
		s.requestCountByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.windowStart = s.now()
	}
}

// SecurityLoggingMiddleware enforces the per-IP request rate
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only
// when the direct peer is a trusted proxy, and then its last hop wins.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
