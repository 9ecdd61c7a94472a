package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"

	"stash-indexer/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func getFrom(r http.Handler, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	assert.NoError(t, r.SetTrustedProxies([]string{"10.1.0.0/16"}))
	r.RemoteIPHeaders = []string{"X-Forwarded-For"}
	r.Use(RateLimiter(rate.Limit(1), 2))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	const proxy = "10.1.0.5:40000"
	alice := map[string]string{"X-Forwarded-For": "203.0.113.1"}
	bob := map[string]string{"X-Forwarded-For": "203.0.113.2"}

	assert.Equal(t, http.StatusOK, getFrom(r, proxy, alice).Code)
	assert.Equal(t, http.StatusOK, getFrom(r, proxy, alice).Code)
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, proxy, alice).Code)
	assert.Equal(t, http.StatusOK, getFrom(r, proxy, bob).Code, "limits are per client behind the proxy")
}

func TestRateLimiter_IgnoresForgedHeader(t *testing.T) {
	r := gin.New()
	assert.NoError(t, r.SetTrustedProxies([]string{"10.1.0.0/16"}))
	r.RemoteIPHeaders = []string{"X-Forwarded-For"}
	r.Use(RateLimiter(rate.Limit(1), 2))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// A direct client rotating the header still shares one bucket.
	const direct = "198.51.100.7:51000"
	assert.Equal(t, http.StatusOK, getFrom(r, direct, map[string]string{"X-Forwarded-For": "1.1.1.1"}).Code)
	assert.Equal(t, http.StatusOK, getFrom(r, direct, map[string]string{"X-Forwarded-For": "2.2.2.2"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, direct, map[string]string{"X-Forwarded-For": "3.3.3.3"}).Code)
}

func TestIPRateLimiter_ReusesLimiter(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(5), 1)
	assert.Same(t, l.GetLimiter("1.2.3.4"), l.GetLimiter("1.2.3.4"))
	assert.NotSame(t, l.GetLimiter("1.2.3.4"), l.GetLimiter("5.6.7.8"))
}

func TestCache(t *testing.T) {
	calls := 0
	r := gin.New()
	r.Use(RequestID(), Cache(cache.New(time.Minute, time.Minute), time.Minute))
	r.GET("/stats", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})
	r.GET("/missing", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	first := get(r, "/stats", nil)
	second := get(r, "/stats", map[string]string{RequestIDHeader: "abc"})
	assert.Equal(t, "MISS", first.Header().Get(CacheHeader))
	assert.Equal(t, "HIT", second.Header().Get(CacheHeader))
	assert.JSONEq(t, `{"calls":1}`, second.Body.String())
	assert.Equal(t, "abc", second.Header().Get(RequestIDHeader))
	assert.Equal(t, "application/json; charset=utf-8", second.Header().Get("Content-Type"))

	get(r, "/stats?page=2", nil)
	assert.Equal(t, 2, calls, "query string is part of the key")

	get(r, "/missing", nil)
	get(r, "/missing", nil)
	assert.Equal(t, 4, calls, "errors are not cached")
}

func TestRequestIDAndAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), AccessLog(zap.New(core)))
	r.GET("/items/:id", func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString(logger.RequestIDKey))
		c.Status(http.StatusNoContent)
	})

	w := get(r, "/items/42", map[string]string{RequestIDHeader: "req-1"})
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	w = get(r, "/items/43", nil)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	entries := logs.FilterMessage("http request").All()
	if assert.Len(t, entries, 2) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-1", fields[logger.RequestIDKey])
		assert.Equal(t, "/items/:id", fields["route"])
		assert.Equal(t, int64(http.StatusNoContent), fields["status"])
	}
}
