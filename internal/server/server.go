package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/MudShop_Go/internal/database"
	"github.com/osse101/MudShop_Go/internal/eventlog"
	"github.com/osse101/MudShop_Go/internal/handler"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/metrics"
	"github.com/osse101/MudShop_Go/internal/sse"
)

// Services groups what the HTTP surface dispatches to
type Services struct {
	DBPool   database.Pool
	Executor handler.CommandExecutor
	Players  handler.PlayerRegistry
	Rooms    handler.RoomSource
	Ticker   handler.RoomTicker
	Ledger   eventlog.Service
	Hub      *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, svc),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(apiKey string, trustedProxies []string, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	session := handler.NewSessionHandler(svc.Hub, svc.Executor, svc.Players)
	r.Get("/ws/{name}", session.Handle)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/command", handler.HandleCommand(svc.Executor))

		r.Route("/players", func(r chi.Router) {
			r.Get("/", handler.HandleListPlayers(svc.Players))
			r.Post("/", handler.HandleJoin(svc.Players))
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", handler.HandleGetPlayer(svc.Players))
				r.Delete("/", handler.HandleLeave(svc.Players))
				r.Post("/move", handler.HandleMove(svc.Players))
				r.Get("/stream", sse.Handler(svc.Hub, func(r *http.Request) string {
					return chi.URLParam(r, handler.ParamName)
				}))
			})
		})

		r.Route("/rooms/{roomID}", func(r chi.Router) {
			r.Get("/", handler.HandleGetRoom(svc.Rooms))
			r.Post("/tick", handler.HandleTickRoom(svc.Rooms, svc.Ticker))
		})

		r.Get("/events", sse.Handler(svc.Hub, nil))
		r.Get("/ledger", handler.HandleGetLedger(svc.Ledger))
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush passes through for player streams
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack passes through for websocket sessions
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.written = true
	rw.statusCode = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
