package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TVAexe/ar-fe-admin/pkg/health"
	pkgmiddleware "github.com/TVAexe/ar-fe-admin/pkg/middleware"

	"github.com/TVAexe/ar-fe-admin/internal/config"
	"github.com/TVAexe/ar-fe-admin/internal/service"
)

// Services bundles everything the router serves.
type Services struct {
	Products   *service.ProductService
	Categories *service.CategoryService
	Orders     *service.OrderService
	Users      *service.UserService
	Roles      *service.RoleService
	Stats      *service.StatsService
}

// NewRouter creates a chi router with global middleware, health endpoints,
// and the admin API routes. Every /api/v1/admin route requires a bearer
// token, which is forwarded verbatim to the catalog backend.
func NewRouter(cfg *config.Config, services Services, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware stack (applied in order).
	r.Use(pkgmiddleware.CORS(pkgmiddleware.CORSConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		ExposedHeaders: []string{"X-Correlation-ID"},
		Environment:    cfg.Environment,
	}))
	r.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	r.Use(pkgmiddleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(pkgmiddleware.RequestLogging(logger))
	r.Use(pkgmiddleware.PrometheusMetrics("admin"))
	r.Use(pkgmiddleware.Tracing("admin"))
	r.Use(pkgmiddleware.RequestLogger(logger))

	// Health check endpoints (no auth required).
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	pkgmiddleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)

	productHandler := NewProductHandler(services.Products, logger)
	categoryHandler := NewCategoryHandler(services.Categories, logger)
	orderHandler := NewOrderHandler(services.Orders, logger)
	userHandler := NewUserHandler(services.Users, logger)
	roleHandler := NewRoleHandler(services.Roles, logger)
	statsHandler := NewStatsHandler(services.Stats, logger)

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(pkgmiddleware.RequireToken)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.Get)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.List)
			r.Post("/", categoryHandler.Create)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.List)
			r.Put("/{id}/status", orderHandler.UpdateStatus)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", roleHandler.List)
			r.Post("/", roleHandler.Create)
			r.Put("/{id}", roleHandler.Update)
			r.Delete("/{id}", roleHandler.Delete)
		})

		// Stats are recomputed at most once per cache TTL; let clients
		// reuse them for the same window.
		statsMaxAge := int(cfg.CacheTTL.Seconds())
		r.With(pkgmiddleware.CacheControl(statsMaxAge)).Get("/stats/dashboard", statsHandler.Dashboard)
	})

	return r
}
