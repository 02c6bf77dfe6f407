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

	"github.com/osse101/GreenMap_Go/internal/admission"
	"github.com/osse101/GreenMap_Go/internal/handler"
	"github.com/osse101/GreenMap_Go/internal/logger"
	"github.com/osse101/GreenMap_Go/internal/metrics"
	"github.com/osse101/GreenMap_Go/internal/placement"
	"github.com/osse101/GreenMap_Go/internal/sse"
	"github.com/osse101/GreenMap_Go/internal/tree"
)

// Deps are the services the HTTP layer routes to
type Deps struct {
	Store          handler.Pinger
	StoreDriver    string
	Classifier     handler.ModelStatus
	Trees          tree.Service
	Admitter       admission.Admitter
	Sessions       *placement.Manager
	Hub            *sse.Hub
	Canvas         handler.Canvas
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(port int, deps Deps) *Server {
	r := NewRouter(deps)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter builds the middleware stack and every route
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	proxies := ParseTrustedProxies(deps.TrustedProxies)
	uploadLimit := RateLimitMiddleware(proxies,
		NewRateLimiter(LimiterUpload, UploadRateLimitMaxRequests, UploadRateLimitWindow))

	// Outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(proxies, NewRateLimiter(LimiterGlobal, RateLimitMaxRequests, RateLimitWindow)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store, deps.Classifier))
	r.Get("/version", handler.HandleVersion(deps.StoreDriver, deps.Classifier != nil))
	r.Handle("/metrics", promhttp.Handler())

	treeHandler := handler.NewTreeHandler(deps.Trees, deps.Canvas)
	imageHandler := handler.NewImageHandler(deps.Admitter)
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Canvas)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/trees", func(r chi.Router) {
			r.Get("/", treeHandler.HandleList)
			r.With(uploadLimit).Post("/", treeHandler.HandleCreate)
			r.Get("/count", treeHandler.HandleCount)
			r.Get("/{id}", treeHandler.HandleGet)
			r.Delete("/{id}", treeHandler.HandleDelete)
		})
		r.Get("/boundary", treeHandler.HandleBoundary)
		r.Get("/map.png", treeHandler.HandleMapPNG)
		r.With(uploadLimit).Post("/images/admit", imageHandler.HandleAdmit)
		r.Get("/events", sse.Handler(deps.Hub))

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.HandleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(sessionLogging)
				r.Get("/", sessionHandler.HandleGet)
				r.Post("/gestures", sessionHandler.HandleGestures)
				r.Post("/hover", sessionHandler.HandleHover)
				r.Get("/map.png", sessionHandler.HandleMapPNG)
				r.Post("/drag", sessionHandler.HandleBeginDrag)
				r.Post("/drop", sessionHandler.HandleDrop)
				r.Put("/form", sessionHandler.HandleUpdateForm)
				r.With(uploadLimit).Post("/image", sessionHandler.HandleAttachImage)
				r.With(uploadLimit).Post("/submit", sessionHandler.HandleSubmit)
				r.Post("/cancel", sessionHandler.HandleCancel)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

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
		statusCode:     http.StatusOK,
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

// Flush keeps the event stream working behind the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

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
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
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

// sessionLogging tags the request logger with the placement session ID
func sessionLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, "id"); id != "" {
			r = r.WithContext(logger.WithSessionID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
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
