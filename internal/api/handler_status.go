package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stash-indexer/internal/indexer"
	"stash-indexer/internal/logger"
)

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type statsResponse struct {
	LiveListings int64               `json:"live_listings"`
	Cursor       string              `json:"cursor"`
	LastCycle    *indexer.CycleStats `json:"last_cycle"`
}

// GetStats handles GET /api/v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	live, err := h.store.CountLive(c.Request.Context())
	if err != nil {
		logger.WithRequestID(h.logger, c).Error("failed to count live listings", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to count listings"})
		return
	}

	cursor, last := h.status.Status()
	c.JSON(http.StatusOK, statsResponse{
		LiveListings: live,
		Cursor:       cursor,
		LastCycle:    last,
	})
}
