package httpapi

import (
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/api/http/middleware"
	platformhealth "github.com/ppalavilli/ElavonConvergeProcessor/platform/health/http"
	platformobservability "github.com/ppalavilli/ElavonConvergeProcessor/platform/observability"
)

// healthCheckTimeout ограничивает каждую readiness проверку /health
const healthCheckTimeout = 2 * time.Second

// RouterConfig - параметры HTTP роутера
type RouterConfig struct {
	// RateLimit - запросов в секунду на /transactions и /requests, 0 - без ограничения
	RateLimit float64
	// Checks - readiness проверки для /health (например, Ping хранилища)
	Checks map[string]platformhealth.Check
}

// NewRouter создаёт HTTP роутер.
// logger используется для observability HTTP middleware (trace_id в логах).
func NewRouter(handler *Handler, cfg RouterConfig, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()

	if logger != nil {
		router.Use(platformobservability.HTTPMiddleware("converge", logger))
	}

	router.Group(func(r chi.Router) {
		r.Use(middleware.WithRequestID)
		r.Use(middleware.RateLimit(cfg.RateLimit))

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", handler.PostTransactions)
			r.Get("/{id}", handler.GetTransaction)
			r.Patch("/{id}", handler.PatchTransaction)
			r.Post("/{id}/capture", handler.CaptureTransaction)
			r.Post("/{id}/void", handler.VoidTransaction)
		})
		r.Post("/requests/{operation}", handler.PostRequest)
	})

	// Health без лимита и request id
	router.Get("/health", platformhealth.Handler(healthCheckTimeout, cfg.Checks))

	return router
}
