package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gitea.jw6.us/james/taskdesk/internal/api"
	"gitea.jw6.us/james/taskdesk/internal/auth"
	"gitea.jw6.us/james/taskdesk/internal/config"
	"gitea.jw6.us/james/taskdesk/internal/http/ratelimit"
	"gitea.jw6.us/james/taskdesk/internal/logger"
	"gitea.jw6.us/james/taskdesk/internal/metrics"
	"gitea.jw6.us/james/taskdesk/internal/store"
)

// NewRouter wires middleware and all API routes.
func NewRouter(cfg *config.Config, s *store.Store, gate *auth.Gate) http.Handler {
	h := api.NewHandler(cfg, s, gate)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(metrics.Middleware())
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := s.HealthCheck(req.Context()); err != nil {
			logger.Error("readiness check failed", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.PrometheusEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	r.Post("/add-task", h.AddTask)
	r.Get("/tasks", h.ListTasks)
	r.Put("/tasks/{id}", h.UpdateTask)
	r.Delete("/tasks/{id}", h.DeleteTask)

	r.Post("/add-event", h.AddEvent)
	r.Get("/events", h.ListEvents)
	r.Put("/events/{id}", h.UpdateEvent)
	r.Delete("/events/{id}", h.DeleteEvent)

	r.Post("/add-note", h.AddNote)
	r.Get("/notes", h.ListNotes)
	r.Put("/notes/{id}", h.UpdateNote)
	r.Delete("/notes/{id}", h.DeleteNote)

	r.Post("/add-label", h.AddLabel)
	r.Get("/labels", h.ListLabels)
	r.Delete("/labels/{id}", h.DeleteLabel)

	r.Get("/priorities", h.ListPriorities)

	r.Post("/add-audit-log", h.AddAuditEntry)
	r.Get("/audit-log", h.ListAuditEntries)

	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.UpdateSettings)

	// PIN endpoints sit behind a per-IP limiter so the lockout cannot be
	// raced by hammering the verify route.
	r.Route("/security", func(r chi.Router) {
		limiter := ratelimit.New(rate.Limit(5), 10, 5*time.Minute, cfg.TrustedProxies)
		r.Use(limiter.Middleware())

		r.Get("/state", h.GetSecurityState)
		r.Post("/update", h.UpdateSecurityState)
		r.Post("/pin", h.SetPIN)
		r.Post("/verify", h.VerifyPIN)
	})

	return r
}

// requestLogger emits one structured line per completed request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
