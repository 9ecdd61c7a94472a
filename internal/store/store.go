package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stash-indexer/internal/affix"
	"stash-indexer/internal/differ"
	"stash-indexer/internal/model"
)

// insertBatchSize keeps multi-row inserts under the postgres bind parameter limit.
const insertBatchSize = 500

// Store defines the interface for all listing database operations.
// CommitBatch already persists the stat records of its upserts; RecordStats is
// for re-indexing stats on their own.
type Store interface {
	GetSnapshot(ctx context.Context, stashID string) (differ.Snapshot, error)
	CommitBatch(ctx context.Context, now time.Time, batch Batch) error
	RecordStats(ctx context.Context, records []affix.StatRecord) error
	CountLive(ctx context.Context) (int64, error)
	GetListing(ctx context.Context, itemID string) (*model.Listing, error)
	GetItemStats(ctx context.Context, itemID string) (*model.ItemStats, error)
}

// CursorStore persists the feed cursor between runs.
type CursorStore interface {
	LoadCursor(ctx context.Context) (string, error)
	SaveCursor(ctx context.Context, cursor string) error
}

// GormStore implements Store and CursorStore using GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// GetSnapshot returns the live listings last recorded for a stash.
func (s *GormStore) GetSnapshot(ctx context.Context, stashID string) (differ.Snapshot, error) {
	var rows []model.Listing
	err := s.db.WithContext(ctx).
		Select("item_id", "fingerprint").
		Where("stash_id = ? AND sold_at IS NULL", stashID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for stash %s: %w", stashID, err)
	}

	snap := make(differ.Snapshot, len(rows))
	for _, r := range rows {
		snap[r.ItemID] = r.Fingerprint
	}
	return snap, nil
}

// CommitBatch writes all mutations of a batch in one transaction: sold markers,
// modified markers, listing upserts, then stat upserts.
func (s *GormStore) CommitBatch(ctx context.Context, now time.Time, batch Batch) error {
	upserts, sold, modified := batch.Counts()
	if upserts+sold+modified == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range batch.Stashes {
			if err := markSold(tx, u.StashID, u.Sold, now); err != nil {
				return err
			}
		}
		for _, u := range batch.Stashes {
			if err := markModified(tx, u.StashID, u.Modified, now); err != nil {
				return err
			}
		}

		listings, records := collapseUpserts(batch, now)
		if err := upsertListings(tx, listings); err != nil {
			return err
		}
		return upsertStats(tx, records, now)
	})
}

// collapseUpserts flattens the batch into one row per item id. An item listed
// by several stashes of the batch keeps the last stash's content at its first
// position, since postgres refuses to update the same row twice in one
// INSERT ... ON CONFLICT statement.
func collapseUpserts(batch Batch, now time.Time) ([]model.Listing, []affix.StatRecord) {
	listingPos := make(map[string]int)
	statsPos := make(map[string]int)
	var listings []model.Listing
	var records []affix.StatRecord
	for _, u := range batch.Stashes {
		for _, up := range u.Upserts {
			row := prepareListing(u.StashID, up, now)
			if pos, ok := listingPos[up.ItemID]; ok {
				listings[pos] = row
			} else {
				listingPos[up.ItemID] = len(listings)
				listings = append(listings, row)
			}

			if up.Stats == nil {
				continue
			}
			if pos, ok := statsPos[up.ItemID]; ok {
				records[pos] = *up.Stats
			} else {
				statsPos[up.ItemID] = len(records)
				records = append(records, *up.Stats)
			}
		}
	}
	return listings, records
}

// RecordStats upserts normalized stat records on their own.
func (s *GormStore) RecordStats(ctx context.Context, records []affix.StatRecord) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertStats(tx, records, now)
	})
}

// CountLive returns the number of listings not marked sold.
func (s *GormStore) CountLive(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Listing{}).Where("sold_at IS NULL").Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count live listings: %w", err)
	}
	return n, nil
}

// GetListing returns one listing by item id.
func (s *GormStore) GetListing(ctx context.Context, itemID string) (*model.Listing, error) {
	var l model.Listing
	if err := s.db.WithContext(ctx).Where("item_id = ?", itemID).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing %s: %w", itemID, err)
	}
	return &l, nil
}

// GetItemStats returns the stored stat record of an item.
func (s *GormStore) GetItemStats(ctx context.Context, itemID string) (*model.ItemStats, error) {
	var st model.ItemStats
	if err := s.db.WithContext(ctx).Where("item_id = ?", itemID).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stats for %s: %w", itemID, err)
	}
	return &st, nil
}

// LoadCursor returns the saved cursor, or "" when none was ever saved.
func (s *GormStore) LoadCursor(ctx context.Context) (string, error) {
	var c model.FeedCursor
	err := s.db.WithContext(ctx).Where("name = ?", model.DefaultCursorName).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load cursor: %w", err)
	}
	return c.Value, nil
}

// SaveCursor stores the cursor to resume from.
func (s *GormStore) SaveCursor(ctx context.Context, cursor string) error {
	row := model.FeedCursor{Name: model.DefaultCursorName, Value: cursor, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save cursor: %w", err)
	}
	return nil
}

// --- Helper functions ---

func markSold(tx *gorm.DB, stashID string, ids []string, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := tx.Model(&model.Listing{}).
		Where("stash_id = ? AND item_id IN ? AND sold_at IS NULL", stashID, ids).
		Updates(map[string]any{"sold_at": now, "updated_at": now}).Error
	if err != nil {
		return fmt.Errorf("failed to mark %d listings sold in stash %s: %w", len(ids), stashID, err)
	}
	return nil
}

// markModified restarts the offer clock of items that changed in place.
func markModified(tx *gorm.DB, stashID string, ids []string, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := tx.Model(&model.Listing{}).
		Where("stash_id = ? AND item_id IN ?", stashID, ids).
		Updates(map[string]any{"seen_at": now, "updated_at": now}).Error
	if err != nil {
		return fmt.Errorf("failed to mark %d listings modified in stash %s: %w", len(ids), stashID, err)
	}
	return nil
}

func prepareListing(stashID string, up ListingUpsert, now time.Time) model.Listing {
	return model.Listing{
		ItemID:      up.ItemID,
		StashID:     stashID,
		AccountName: up.AccountName,
		League:      int(up.League),
		Category:    int(up.Category),
		PriceAmount: up.Price.Amount,
		Currency:    int(up.Price.Currency),
		Fingerprint: up.Fingerprint,
		AddedAt:     now,
		SeenAt:      now,
		SoldAt:      nil,
		UpdatedAt:   now,
	}
}

// upsertListings never touches added_at of an existing row.
func upsertListings(tx *gorm.DB, listings []model.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"stash_id", "account_name", "league", "category", "price_amount",
			"currency", "fingerprint", "seen_at", "sold_at", "updated_at",
		}),
	}).CreateInBatches(&listings, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("batch upsert listings failed: %w", err)
	}
	return nil
}

func upsertStats(tx *gorm.DB, records []affix.StatRecord, now time.Time) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]model.ItemStats, 0, len(records))
	for i := range records {
		row, err := prepareItemStats(&records[i], now)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "fingerprint", "sockets", "stats", "updated_at"}),
	}).CreateInBatches(&rows, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("batch upsert item stats failed: %w", err)
	}
	return nil
}

func prepareItemStats(rec *affix.StatRecord, now time.Time) (model.ItemStats, error) {
	encoded, err := json.Marshal(rec.Values())
	if err != nil {
		return model.ItemStats{}, fmt.Errorf("failed to encode stats of %s: %w", rec.ItemID, err)
	}
	return model.ItemStats{
		ItemID:      rec.ItemID,
		Category:    int(rec.Category),
		Fingerprint: rec.Fingerprint,
		Sockets:     rec.Sockets,
		Stats:       string(encoded),
		UpdatedAt:   now,
	}, nil
}

// DecodeStats turns a stored stats column back into its stat map. Integers come
// back as float64.
func DecodeStats(row *model.ItemStats) (map[string]any, error) {
	out := make(map[string]any)
	if err := json.Unmarshal([]byte(row.Stats), &out); err != nil {
		return nil, fmt.Errorf("failed to decode stats of %s: %w", row.ItemID, err)
	}
	return out, nil
}
