package routes

import (
	"net/http"

	"github.com/wellness-hospital/laboratory/backend/internal/api/handlers"
	"github.com/wellness-hospital/laboratory/backend/internal/api/middleware"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	catalogHandler   *handlers.CatalogHandler
	labOrderHandler  *handlers.LabOrderHandler
	analyticsHandler *handlers.AnalyticsHandler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	browserMaxAge   int
	metrics         *observability.Metrics
}

// Options carries the non-handler router settings
type Options struct {
	CacheMiddleware *middleware.CacheMiddleware
	AllowedOrigins  []string
	BrowserMaxAge   int
	Metrics         *observability.Metrics
}

// NewRouter creates a new router. The analytics handler may be nil when search
// analytics are disabled.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	labOrderHandler *handlers.LabOrderHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	opts Options,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		catalogHandler:   catalogHandler,
		labOrderHandler:  labOrderHandler,
		analyticsHandler: analyticsHandler,
		cacheMiddleware:  opts.CacheMiddleware,
		allowedOrigins:   opts.AllowedOrigins,
		browserMaxAge:    opts.BrowserMaxAge,
		metrics:          opts.Metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/lab-tests/search", r.catalogHandler.Search)
	r.mux.HandleFunc("GET /api/lab-tests/categories", r.catalogHandler.ListCategories)

	r.mux.HandleFunc("GET /api/lab-profiles", r.catalogHandler.ListProfiles)
	r.mux.HandleFunc("GET /api/lab-profiles/match", r.catalogHandler.MatchProfile)
	r.mux.HandleFunc("GET /api/lab-profiles/{name}", r.catalogHandler.GetProfile)
	r.mux.HandleFunc("GET /api/lab-profiles/{name}/parameters", r.catalogHandler.GetProfileParameters)

	// Lab order endpoints
	r.mux.HandleFunc("POST /api/lab-orders", r.labOrderHandler.CreateOrders)
	r.mux.HandleFunc("GET /api/lab-orders", r.labOrderHandler.ListOrders)
	r.mux.HandleFunc("GET /api/lab-orders/{id}", r.labOrderHandler.GetOrder)

	// Result entry endpoints
	r.mux.HandleFunc("GET /api/lab-orders/{id}/result-rows", r.labOrderHandler.GetResultRows)
	r.mux.HandleFunc("POST /api/lab-orders/{id}/result-rows/apply", r.labOrderHandler.ApplySelection)
	r.mux.HandleFunc("PUT /api/lab-orders/{id}/results", r.labOrderHandler.SaveResults)

	// Analytics endpoints
	if r.analyticsHandler != nil {
		r.mux.HandleFunc("GET /api/analytics/zero-result-queries", r.analyticsHandler.GetZeroResultQueries)
	}

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	handler = middleware.ETag(handler)
	handler = middleware.CatalogCacheControl(r.browserMaxAge)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
