package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/jpeder/gamevault/internal/archive"
	"github.com/jpeder/gamevault/internal/database"
	"github.com/jpeder/gamevault/internal/handler"
	"github.com/jpeder/gamevault/internal/logger"
	"github.com/jpeder/gamevault/internal/metrics"
	"github.com/jpeder/gamevault/internal/review"
	"github.com/jpeder/gamevault/internal/taxonomy"
	"github.com/jpeder/gamevault/internal/wip"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	reviewService   review.Service
	archiveService  archive.Service
	taxonomyService taxonomy.Service
	wipService      wip.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, reviewService review.Service, archiveService archive.Service, taxonomyService taxonomy.Service, wipService wip.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Review routes
		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", handler.HandleSubmitReview(reviewService))
			r.Get("/", handler.HandleListReviews(reviewService))
			r.Get("/{id}", handler.HandleGetReview(reviewService))
			r.Put("/{id}", handler.HandleUpdateReview(reviewService))
			r.Delete("/{id}", handler.HandleDeleteReview(reviewService))
		})

		// Archive routes
		r.Route("/archive", func(r chi.Router) {
			r.Get("/", handler.HandleListArchives(archiveService))
			r.Get("/{id}", handler.HandleGetArchive(archiveService))
			r.Patch("/{id}", handler.HandlePatchArchive(archiveService))
			r.Post("/{id}/materialize", handler.HandleMaterializeArchive(archiveService))
		})

		// Taxonomy routes
		r.Route("/genres", func(r chi.Router) {
			r.Get("/", handler.HandleListGenres(taxonomyService))
			r.Post("/normalize", handler.HandleNormalizeGenre(taxonomyService))
			r.Get("/{id}", handler.HandleGetGenre(taxonomyService))
		})
		r.Get("/categories", handler.HandleListCategories(taxonomyService))

		// Dashboard routes
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/by-rating", handler.HandleDashboardByRating(archiveService))
			r.Get("/by-category", handler.HandleDashboardByCategory(archiveService))
		})

		// Scratch-pad routes
		r.Route("/wip", func(r chi.Router) {
			r.Post("/", handler.HandleCreateWip(wipService))
			r.Get("/", handler.HandleListWips(wipService))
			r.Get("/{id}", handler.HandleGetWip(wipService))
			r.Put("/{id}", handler.HandleUpdateWip(wipService))
			r.Delete("/{id}", handler.HandleDeleteWip(wipService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		reviewService:   reviewService,
		archiveService:  archiveService,
		taxonomyService: taxonomyService,
		wipService:      wipService,
	}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Give every request a unique id carried through the context
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

		// Sanitize headers for logging
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
