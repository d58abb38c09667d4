package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// Lab API surfaces used to group spans and request metrics
const (
	SurfaceCatalog   = "catalog"
	SurfaceOrders    = "orders"
	SurfaceAnalytics = "analytics"
	SurfaceOther     = "other"
)

// RouteSurface classifies a request path into the lab API surface it belongs to
func RouteSurface(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/lab-tests/"), strings.HasPrefix(path, "/api/lab-profiles"):
		return SurfaceCatalog
	case strings.HasPrefix(path, "/api/lab-orders"):
		return SurfaceOrders
	case strings.HasPrefix(path, "/api/analytics/"):
		return SurfaceAnalytics
	default:
		return SurfaceOther
	}
}

// ObservabilityMiddleware traces each lab API request and records request metrics
// tagged with the surface (catalog, orders, analytics) it hit.
func ObservabilityMiddleware(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			surface := RouteSurface(r.URL.Path)

			// Pattern is only set once the mux has matched, so name the span by surface
			ctx, span := observability.StartSpan(r.Context(), "lab."+surface+" "+r.Method)
			defer span.End()

			observability.SetSpanAttributes(span,
				attribute.String("http.method", r.Method),
				attribute.String("lab.surface", surface),
				attribute.String("http.user_agent", r.UserAgent()),
			)
			if q := r.URL.Query().Get("q"); surface == SurfaceCatalog && q != "" {
				observability.SetSpanAttributes(span, attribute.Int("lab.query_length", len(q)))
			}

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			inner := r.WithContext(ctx)
			next.ServeHTTP(rw, inner)

			route := inner.Pattern
			if route == "" {
				route = surface
			}
			observability.SetSpanAttributes(span,
				attribute.String("http.route", route),
				attribute.Int("http.status_code", rw.statusCode),
			)
			observability.RecordRequestMetric(ctx, metrics, r.Method, route, surface, rw.statusCode, time.Since(start))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
