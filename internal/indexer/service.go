// Package indexer drives the feed cycle: fetch a batch, normalize priced rare
// items, diff every touched stash and commit, and only then advance the cursor.
package indexer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stash-indexer/config"
	"stash-indexer/internal/affix"
	"stash-indexer/internal/differ"
	"stash-indexer/internal/feed"
	"stash-indexer/internal/itemtype"
	"stash-indexer/internal/metrics"
	"stash-indexer/internal/parse"
	"stash-indexer/internal/store"
)

// Fetcher returns the batch that follows a cursor. *feed.Poller implements it.
type Fetcher interface {
	FetchNext(ctx context.Context, cursor string) (*feed.Batch, error)
}

// Service orchestrates the indexing cycle.
type Service struct {
	cfg     *config.IndexerConfig
	fetcher Fetcher
	store   store.Store
	cursors store.CursorStore
	pool    *WorkerPool
	logger  *zap.Logger
	leagues map[string]struct{}
	now     func() time.Time

	mu     sync.RWMutex
	cursor string
	last   *CycleStats
}

// NewService creates and initializes a new indexer service.
func NewService(cfg *config.IndexerConfig, fetcher Fetcher, st store.Store, cursors store.CursorStore, parser Parser, logger *zap.Logger) *Service {
	logger = logger.With(zap.String("component", "indexer"))
	leagues := make(map[string]struct{}, len(cfg.Leagues))
	for _, l := range cfg.Leagues {
		leagues[l] = struct{}{}
	}
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
		store:   st,
		cursors: cursors,
		pool:    NewWorkerPool(cfg.Workers, parser, logger),
		logger:  logger,
		leagues: leagues,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Status returns the cursor the next cycle starts from and the stats of the
// last committed cycle, if any.
func (s *Service) Status() (string, *CycleStats) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return s.cursor, nil
	}
	last := *s.last
	return s.cursor, &last
}

// Run processes cycles until ctx is done or the configured number of cycles
// has been committed. A non-empty startCursor overrides the stored one.
// A failed cycle is retried from the same cursor.
func (s *Service) Run(ctx context.Context, startCursor string) error {
	cursor := startCursor
	if cursor == "" {
		stored, err := s.cursors.LoadCursor(ctx)
		if err != nil {
			return fmt.Errorf("failed to load cursor: %w", err)
		}
		cursor = stored
	}
	s.setCursor(cursor)

	s.pool.Start()
	defer s.pool.Stop()

	s.logger.Info("starting indexer", zap.String("cursor", cursor), zap.Int("workers", s.pool.size))
	for cycles := 0; s.cfg.MaxUpdates <= 0 || cycles < s.cfg.MaxUpdates; {
		if ctx.Err() != nil {
			break
		}
		next, _, err := s.ProcessOnce(ctx, cursor)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			s.logger.Error("cycle failed, retrying from the same cursor", zap.String("cursor", cursor), zap.Error(err))
			continue
		}
		cursor = next
		cycles++
	}
	s.logger.Info("indexer stopped", zap.String("cursor", cursor))
	return nil
}

// ProcessOnce runs one cycle starting at cursor and returns the cursor to
// continue from. On error the returned cursor is the input cursor and nothing
// was persisted. Once a batch has been fetched the cycle runs to completion
// even if ctx is cancelled, so a shutdown never strands a fetched batch
// half-committed.
func (s *Service) ProcessOnce(ctx context.Context, cursor string) (string, CycleStats, error) {
	start := time.Now()
	stats := CycleStats{CycleID: uuid.NewString(), Cursor: cursor, StartedAt: s.now()}
	logger := s.logger.With(zap.String("cycle_id", stats.CycleID))

	batch, err := s.fetcher.FetchNext(ctx, cursor)
	if err != nil {
		return cursor, stats, err
	}
	stats.NextCursor = batch.NextCursor
	logger.Debug("received batch", zap.Int("stashes", len(batch.Stashes)), zap.String("next_cursor", batch.NextCursor))

	persistCtx := context.WithoutCancel(ctx)
	err = s.processBatch(persistCtx, logger, batch, &stats)
	if err == nil {
		if err = s.cursors.SaveCursor(persistCtx, batch.NextCursor); err != nil {
			err = fmt.Errorf("batch committed but cursor not saved: %w", err)
		}
	}
	metrics.RecordCycle(time.Since(start), err)
	stats.Duration = time.Since(start).String()
	if err != nil {
		return cursor, stats, err
	}

	s.mu.Lock()
	s.cursor = batch.NextCursor
	s.last = &stats
	s.mu.Unlock()

	logger.Info("cycle committed", zap.Object("stats", stats), zap.String("next_cursor", batch.NextCursor))
	return batch.NextCursor, stats, nil
}

// candidate is a priced rare item of a known category on its way through the cycle.
type candidate struct {
	job    *normalizeJob
	price  parse.Price
	league parse.League
}

type touchedStash struct {
	stash      *feed.Stash
	candidates []*candidate
}

func (s *Service) processBatch(ctx context.Context, logger *zap.Logger, batch *feed.Batch, stats *CycleStats) error {
	touched := s.selectStashes(batch.Stashes)
	stats.Stashes = len(touched)

	var jobs []*normalizeJob
	for _, t := range touched {
		stats.Items += len(t.stash.Items)
		t.candidates = s.filterItems(logger, t.stash)
		for _, c := range t.candidates {
			jobs = append(jobs, c.job)
		}
	}
	s.pool.Normalize(jobs)
	for _, job := range jobs {
		s.recordOutcome(logger, job, stats)
	}

	now := s.now()
	var commit store.Batch
	for _, t := range touched {
		update, err := s.diffStash(ctx, t)
		if err != nil {
			return err
		}
		stats.New += len(update.Upserts) - len(update.Modified)
		stats.Modified += len(update.Modified)
		stats.Sold += len(update.Sold)
		commit.Stashes = append(commit.Stashes, update)
	}

	if err := s.store.CommitBatch(ctx, now, commit); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	metrics.ListingChanges.WithLabelValues("new").Add(float64(stats.New))
	metrics.ListingChanges.WithLabelValues("modified").Add(float64(stats.Modified))
	metrics.ListingChanges.WithLabelValues("sold").Add(float64(stats.Sold))

	live, err := s.store.CountLive(ctx)
	if err != nil {
		logger.Warn("failed to count live listings", zap.Error(err))
	} else {
		metrics.LiveListings.Set(float64(live))
		logger.Info("live listings", zap.Int64("total", live))
	}
	return nil
}

// selectStashes collapses repeated stash ids, keeping the last occurrence at
// the position of the first, and drops stashes outside the configured leagues.
func (s *Service) selectStashes(stashes []feed.Stash) []*touchedStash {
	index := make(map[string]int, len(stashes))
	var out []*touchedStash
	for i := range stashes {
		st := &stashes[i]
		if pos, ok := index[st.ID]; ok {
			out[pos].stash = st
			continue
		}
		index[st.ID] = len(out)
		out = append(out, &touchedStash{stash: st})
	}

	if len(s.leagues) == 0 {
		return out
	}
	kept := out[:0]
	for _, t := range out {
		if _, ok := s.leagues[stashLeague(t.stash)]; ok {
			kept = append(kept, t)
		}
	}
	return kept
}

// filterItems keeps rare items of a known category that carry a price, either
// in their own note or inherited from the stash tab name.
func (s *Service) filterItems(logger *zap.Logger, st *feed.Stash) []*candidate {
	tabPrice, hasTabPrice := parse.ParsePrice(st.Name)
	stashLeagueName := stashLeague(st)

	var out []*candidate
	for i := range st.Items {
		item := &st.Items[i]
		if item.FrameType != feed.FrameRare {
			continue
		}
		cat, known := itemtype.FromBaseType(item.TypeLine)
		if cat == itemtype.Unknown {
			if !known {
				logger.Debug("unknown base type", zap.String("item_id", item.ID), zap.String("type_line", item.TypeLine))
			}
			continue
		}
		price, ok := parse.PriceOr(item.Note, tabPrice, hasTabPrice)
		if !ok {
			continue
		}
		leagueName := item.League
		if leagueName == "" {
			leagueName = stashLeagueName
		}
		out = append(out, &candidate{
			job:    &normalizeJob{stashID: st.ID, item: item, cat: cat},
			price:  price,
			league: parse.LeagueFromName(leagueName),
		})
	}
	return out
}

func (s *Service) recordOutcome(logger *zap.Logger, job *normalizeJob, stats *CycleStats) {
	outcome := affix.Classify(job.err)
	metrics.ItemsProcessed.WithLabelValues(outcome.String()).Inc()

	fields := []zap.Field{zap.String("stash_id", job.stashID), zap.String("item_id", job.item.ID)}
	switch outcome {
	case affix.OutcomeOK:
		stats.Normalized++
		if len(job.rec.Warnings) > 0 {
			logger.Warn("item normalized with data-integrity warnings",
				append(fields, zap.Strings("warnings", job.rec.Warnings), zap.String("item", job.item.Raw()))...)
		}
	case affix.OutcomeBanned:
		stats.Banned++
		logger.Debug("banned item dropped", append(fields, zap.Error(job.err))...)
	case affix.OutcomeUnrecognized:
		stats.Unrecognized++
		logger.Warn("unrecognized modifier", append(fields, zap.Error(job.err), zap.String("item", job.item.Raw()))...)
	case affix.OutcomeConflict:
		stats.Conflicts++
		logger.Warn("conflicting affixes", append(fields, zap.Error(job.err), zap.String("item", job.item.Raw()))...)
	default:
		stats.Failed++
		logger.Error("item normalization failed", append(fields, zap.Error(job.err), zap.String("item", job.item.Raw()))...)
	}
}

// diffStash compares a touched stash's normalized items with its stored
// snapshot. A stash with no surviving items still sells everything it had.
func (s *Service) diffStash(ctx context.Context, t *touchedStash) (store.StashUpdate, error) {
	previous, err := s.store.GetSnapshot(ctx, t.stash.ID)
	if err != nil {
		return store.StashUpdate{}, err
	}

	byID := make(map[string]*candidate, len(t.candidates))
	entries := make([]differ.Entry, 0, len(t.candidates))
	for _, c := range t.candidates {
		if c.job.err != nil {
			continue
		}
		fp := ListingFingerprint(c.job.rec.Fingerprint, c.price)
		entries = append(entries, differ.Entry{ItemID: c.job.item.ID, Fingerprint: fp})
		byID[c.job.item.ID] = c
	}

	res := differ.Diff(previous, entries)
	live := res.Live()
	update := store.StashUpdate{
		StashID:  t.stash.ID,
		Sold:     res.Sold,
		Modified: res.Modified,
		Live:     live,
	}
	for _, id := range res.Upserts() {
		c := byID[id]
		update.Upserts = append(update.Upserts, store.ListingUpsert{
			ItemID:      id,
			AccountName: t.stash.Account(),
			League:      c.league,
			Category:    c.job.cat,
			Price:       c.price,
			Fingerprint: live[id],
			Stats:       c.job.rec,
		})
	}
	return update, nil
}

func (s *Service) setCursor(cursor string) {
	s.mu.Lock()
	s.cursor = cursor
	s.mu.Unlock()
}

func stashLeague(st *feed.Stash) string {
	if st.League != nil {
		return *st.League
	}
	for _, it := range st.Items {
		if it.League != "" {
			return it.League
		}
	}
	return ""
}
