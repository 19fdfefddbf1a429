package wire

import (
	"context"
	"net/http"
	"time"

	"phi-inspection/internal/adaptor"
	"phi-inspection/internal/data/repository"
	"phi-inspection/internal/usecase"
	"phi-inspection/pkg/database"
	"phi-inspection/pkg/middleware"
	"phi-inspection/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the store.
func Wiring(db database.PgxIface, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		Router: setupRouter(handler, db, registry, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	db database.PgxIface,
	registry *prometheus.Registry,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))
	r.Use(middleware.NewHTTPMetrics(registry).Middleware)

	wireUser(r, handler.Auth, handler.User, config, logger)
	wireShop(r, handler.Shop, config, logger)
	wireInspection(r, handler.Inspection, handler.Analytics, config, logger)
	wireTask(r, handler.Task, config, logger)

	r.Get("/health", healthHandler(db, logger))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}

// healthHandler reports 503 when the store does not answer a ping.
func healthHandler(db database.PgxIface, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	}
}
