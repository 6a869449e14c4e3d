package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/interfaces"
	"github.com/visitnotes-lab/visitnotes/pkg/usecase"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/logging"
	"github.com/visitnotes-lab/visitnotes/pkg/utils/safe"
)

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	verifier interfaces.TokenVerifier
}

type Options func(*Server)

// WithVerifier sets the bearer credential verifier for the /api routes
func WithVerifier(verifier interfaces.TokenVerifier) Options {
	return func(s *Server) {
		s.verifier = verifier
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	// Liveness probe, no auth
	r.Get("/health", healthHandler)

	// API endpoints behind bearer authentication
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(s.verifier))
		r.Post("/consultation", s.handleConsultation)
		r.Post("/history", s.handleSaveHistory)
		r.Get("/history", s.handleListHistory)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(map[string]string{"status": "healthy"})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}
