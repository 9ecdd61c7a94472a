package feed

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"stash-indexer/internal/metrics"
)

// Poller fetches feed batches, retrying transient failures forever with the
// same cursor. Consecutive request starts are at least minInterval apart,
// whether the previous request succeeded or not.
type Poller struct {
	client  Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewPoller creates a Poller. A non-positive minInterval disables spacing.
func NewPoller(client Client, minInterval time.Duration, logger *zap.Logger) *Poller {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Poller{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With(zap.String("component", "feed")),
	}
}

// FetchNext blocks until a structurally valid batch for cursor is obtained.
// The only error it returns is the context's.
func (p *Poller) FetchNext(ctx context.Context, cursor string) (*Batch, error) {
	for attempt := 1; ; attempt++ {
		if err := p.limiter.Wait(ctx); err != nil {
			// Wait also refuses when the next slot lies past the deadline.
			<-ctx.Done()
			return nil, ctx.Err()
		}

		start := time.Now()
		batch, err := p.client.Fetch(ctx, cursor)
		metrics.RecordFeedRequest(time.Since(start), err)
		if err == nil {
			p.logger.Debug("fetched feed batch",
				zap.String("cursor", cursor),
				zap.String("next_cursor", batch.NextCursor),
				zap.Int("stashes", len(batch.Stashes)),
				zap.Int("attempt", attempt))
			return batch, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		p.logger.Warn("feed request failed, retrying",
			zap.String("cursor", cursor),
			zap.Int("attempt", attempt),
			zap.Bool("timeout", Timeout(err)),
			zap.Error(err))
	}
}
