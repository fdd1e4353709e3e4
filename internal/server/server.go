// Package server assembles the dev harness HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rethesda/soulsy/docs"
	"github.com/rethesda/soulsy/internal/equippable"
	"github.com/rethesda/soulsy/internal/handler"
	"github.com/rethesda/soulsy/internal/logger"
	"github.com/rethesda/soulsy/internal/metrics"
	"github.com/rethesda/soulsy/internal/sse"
)

// Options configures the listener and access control
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

// Dependencies are the components the routes serve
type Dependencies struct {
	Catalog    handler.Catalog
	Classifier *equippable.Classifier
	Actors     handler.ActorStore
	Controller handler.PowerController
	Cache      handler.CacheAdmin
	Events     handler.EventJournal
	Stream     *sse.Hub
	// Ready is consulted by /readyz
	Ready []handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	r := chi.NewRouter()

	// Outermost first
	detector := NewSuspiciousActivityDetector()
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Ready...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	items := handler.NewItemHandler(deps.Catalog, deps.Classifier, deps.Actors)
	actors := handler.NewActorHandler(deps.Catalog, deps.Actors)
	power := handler.NewPowerHandler(deps.Catalog, deps.Actors, deps.Controller)
	adminCache := handler.NewAdminCacheHandler(deps.Cache)
	adminEvents := handler.NewAdminEventsHandler(deps.Events)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", items.HandleListItems)
			r.Get("/{formSpec}", items.HandleGetItem)
		})

		r.Post("/classify", items.HandleClassify)
		r.Post("/classify/item", items.HandleClassifyItem)

		r.Route("/actors", func(r chi.Router) {
			r.Post("/", actors.HandleRegisterActor)
			r.Route("/{actorID}", func(r chi.Router) {
				r.Post("/shouts", actors.HandleLearnShout)
				r.Put("/inventory", actors.HandleSetInventory)

				r.Route("/power", func(r chi.Router) {
					r.Get("/", power.HandleGetPower)
					r.Delete("/", power.HandleUnequipPower)
					r.Post("/shout", power.HandleEquipShout)
					r.Post("/spell", power.HandleSelectSpellPower)
				})
			})
		})

		r.Route("/admin/cache", func(r chi.Router) {
			r.Get("/stats", adminCache.HandleGetCacheStats)
			r.Post("/clear", adminCache.HandleClearCache)
		})
		r.Get("/admin/events", adminEvents.HandleGetEvents)
		r.Get("/events/stream", sse.Handler(deps.Stream))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Reuse a caller's request ID only when it is a well-formed UUID.
		requestID := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
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
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
