package model

import "time"

// ItemStats holds the normalized stat record of an item. Stats is the JSON
// encoding of the record's int and flag values.
type ItemStats struct {
	ItemID      string    `gorm:"primaryKey;size:128"`
	Category    int       `gorm:"not null"`
	Fingerprint string    `gorm:"size:64;not null"`
	Sockets     string    `gorm:"size:32"`
	Stats       string    `gorm:"type:text;not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
