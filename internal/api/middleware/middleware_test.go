package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/providers"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]int
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, ttls: map[string]int{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.entries[key]
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = append([]byte(nil), value...)
	c.ttls[key] = expirationSeconds
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func countingHandler(calls *int, status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func TestCacheMiddleware_CatalogRoutes(t *testing.T) {
	cache := newMemoryCache()
	calls := 0
	handler := NewCacheMiddleware(cache, 60, nil).Middleware(countingHandler(&calls, http.StatusOK, `{"count":1}`))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest("GET", "/api/lab-tests/search?q=cbc&limit=5", nil))
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest("GET", "/api/lab-tests/search?limit=5&q=cbc", nil))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, `{"count":1}`, second.Body.String())

	assert.Equal(t, 1, calls)
	for _, ttl := range cache.ttls {
		assert.Equal(t, 60, ttl)
	}
}

func TestCacheMiddleware_SkipsUncachedRoutes(t *testing.T) {
	cache := newMemoryCache()
	calls := 0
	handler := NewCacheMiddleware(cache, 60, nil).Middleware(countingHandler(&calls, http.StatusOK, `{}`))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/lab-orders?uhid=UH-1", nil))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/lab-profiles", nil))
	}

	assert.Equal(t, 4, calls)
	assert.Empty(t, cache.entries)
}

func TestCacheMiddleware_DoesNotCacheErrors(t *testing.T) {
	cache := newMemoryCache()
	calls := 0
	handler := NewCacheMiddleware(cache, 60, nil).Middleware(countingHandler(&calls, http.StatusNotFound, `{"error":"lab profile not found"}`))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/lab-profiles/Nope", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/lab-profiles/Nope", nil))

	assert.Equal(t, 2, calls)
	assert.Empty(t, cache.entries)
}

func TestCacheMiddleware_BackendFailureFallsThrough(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	calls := 0
	handler := NewCacheMiddleware(cache, 60, nil).Middleware(countingHandler(&calls, http.StatusOK, `{}`))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/lab-profiles", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)
}

func TestCacheMiddleware_ZeroTTLDisables(t *testing.T) {
	cache := newMemoryCache()
	calls := 0
	handler := NewCacheMiddleware(cache, 0, nil).Middleware(countingHandler(&calls, http.StatusOK, `{}`))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/lab-profiles", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/lab-profiles", nil))

	assert.Equal(t, 2, calls)
}

func TestCORSMiddleware(t *testing.T) {
	calls := 0
	handler := CORSMiddleware([]string{"https://lab.example.org"})(countingHandler(&calls, http.StatusOK, `{}`))

	req := httptest.NewRequest("GET", "/api/lab-profiles", nil)
	req.Header.Set("Origin", "https://lab.example.org")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, "https://lab.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/api/lab-profiles", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("OPTIONS", "/api/lab-orders", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, calls)
}

func TestCORSMiddleware_DefaultsToWildcard(t *testing.T) {
	calls := 0
	handler := CORSMiddleware(nil)(countingHandler(&calls, http.StatusOK, `{}`))

	req := httptest.NewRequest("GET", "/api/lab-profiles", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestETag(t *testing.T) {
	calls := 0
	handler := ETag(countingHandler(&calls, http.StatusOK, `{"profiles":[]}`))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/lab-profiles", nil))
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, `{"profiles":[]}`, w.Body.String())

	req := httptest.NewRequest("GET", "/api/lab-profiles", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestETag_PassesErrorsThrough(t *testing.T) {
	calls := 0
	handler := ETag(countingHandler(&calls, http.StatusNotFound, `{"error":"x"}`))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/lab-profiles/x", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("ETag"))
	assert.Equal(t, `{"error":"x"}`, w.Body.String())
}

func TestCatalogCacheControl(t *testing.T) {
	calls := 0
	handler := CatalogCacheControl(300)(countingHandler(&calls, http.StatusOK, `{}`))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/lab-tests/search?q=cbc", nil))
	assert.Equal(t, "public, max-age=300, must-revalidate", w.Header().Get("Cache-Control"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/lab-orders/ord-1", nil))
	assert.Equal(t, "private, no-cache, must-revalidate", w.Header().Get("Cache-Control"))
}

func TestRouteSurface(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/lab-tests/search", SurfaceCatalog},
		{"/api/lab-profiles", SurfaceCatalog},
		{"/api/lab-profiles/Widal%20Test/parameters", SurfaceCatalog},
		{"/api/lab-orders", SurfaceOrders},
		{"/api/lab-orders/ord-1/results", SurfaceOrders},
		{"/api/analytics/zero-result-queries", SurfaceAnalytics},
		{"/health", SurfaceOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteSurface(tt.path))
		})
	}
}

func TestObservabilityMiddleware_PassesThroughWithMuxPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/lab-orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(r.PathValue("id")))
	})

	handler := ObservabilityMiddleware(nil)(mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lab-orders/ord-7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ord-7", rec.Body.String())
}
