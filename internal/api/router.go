package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"stash-indexer/config"
	"stash-indexer/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, h *Handler) *gin.Engine {
	r := gin.New()
	// Validated by config; nil trusts no proxy at all.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		h.logger.Error("invalid trusted proxies, forwarding headers ignored", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	if cfg.RequestIPHeader != "" {
		r.RemoteIPHeaders = []string{cfg.RequestIPHeader}
	}
	r.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog(h.logger))

	// Rate limit: configured requests per second per client, burst of twice that
	burst := int(cfg.RateLimitPerSec * 2)
	if burst < 1 {
		burst = 1
	}
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), burst)

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	caching := mw.Cache(cache.New(ttl, 2*ttl), ttl)

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API group
	api := r.Group("/api/v1")
	api.Use(rateLimiter)
	{
		// GET /api/v1/stats
		api.GET("/stats", h.GetStats)

		// GET /api/v1/items/{id}
		api.GET("/items/:id", caching, h.GetItem)
	}

	return r
}
