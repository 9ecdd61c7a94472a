package api

import (
	"go.uber.org/zap"

	"stash-indexer/internal/indexer"
	"stash-indexer/internal/store"
)

// StatusProvider reports the indexer's progress. *indexer.Service implements it.
type StatusProvider interface {
	Status() (cursor string, last *indexer.CycleStats)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store  store.Store
	status StatusProvider
	logger *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, status StatusProvider, logger *zap.Logger) *Handler {
	return &Handler{
		store:  s,
		status: status,
		logger: logger.With(zap.String("component", "api")),
	}
}
