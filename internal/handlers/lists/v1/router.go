package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/KirkDiggler/opr-tts-api/internal/observability"
)

// RouterConfig holds what the router needs besides the handler
type RouterConfig struct {
	Handler *Handler
	Logger  *zap.Logger
	// Metrics and Gatherer are optional; without them /metrics is not served
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter creates the chi router with middleware and all routes.
// Health and metrics are served outside the request logging.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", observability.HandleHealth())
	if cfg.Metrics != nil && cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", observability.Handler(cfg.Gatherer))
	}

	r.Group(func(r chi.Router) {
		r.Use(observability.RequestLogger(cfg.Logger))
		if cfg.Metrics != nil {
			r.Use(cfg.Metrics.MetricsMiddleware)
		}

		r.Route("/v1", func(r chi.Router) {
			r.Post("/convert", cfg.Handler.Convert)
			r.Post("/lists", cfg.Handler.SaveList)
			r.Get("/lists", cfg.Handler.GetList)
			r.Get("/lists/{listID}", cfg.Handler.GetList)
		})
	})

	return r
}
