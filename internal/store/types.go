package store

import (
	"errors"

	"stash-indexer/internal/affix"
	"stash-indexer/internal/differ"
	"stash-indexer/internal/itemtype"
	"stash-indexer/internal/parse"
)

// ErrNotFound is returned by lookups for an unknown item id.
var ErrNotFound = errors.New("not found")

// ListingUpsert is one new or modified listing together with its stat record.
type ListingUpsert struct {
	ItemID      string
	AccountName string
	League      parse.League
	Category    itemtype.Category
	Price       parse.Price
	Fingerprint string
	Stats       *affix.StatRecord
}

// StashUpdate holds every mutation produced by diffing one touched stash.
type StashUpdate struct {
	StashID  string
	Upserts  []ListingUpsert
	Sold     []string
	Modified []string
	// Live is the snapshot that replaces the stash's previous one.
	Live differ.Snapshot
}

// Batch is the unit of one atomic commit.
type Batch struct {
	Stashes []StashUpdate
}

// Counts sums the mutations in the batch.
func (b Batch) Counts() (upserts, sold, modified int) {
	for _, u := range b.Stashes {
		upserts += len(u.Upserts)
		sold += len(u.Sold)
		modified += len(u.Modified)
	}
	return upserts, sold, modified
}
