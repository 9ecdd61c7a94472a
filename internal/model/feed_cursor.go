package model

import "time"

// DefaultCursorName keys the single cursor row used by the indexer.
const DefaultCursorName = "default"

// FeedCursor persists the next page token of the stash feed.
type FeedCursor struct {
	Name      string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"size:256;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
