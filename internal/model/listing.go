package model

import "time"

// Listing is one priced rare item as last seen in a public stash.
// A non-nil SoldAt means the item left its stash.
type Listing struct {
	ItemID      string     `gorm:"primaryKey;size:128"`
	StashID     string     `gorm:"index;size:128;not null"`
	AccountName string     `gorm:"size:128"`
	League      int        `gorm:"not null"`
	Category    int        `gorm:"index;not null"`
	PriceAmount float64    `gorm:"not null"`
	Currency    int        `gorm:"not null"`
	Fingerprint string     `gorm:"size:64;not null"`
	AddedAt     time.Time  `gorm:"not null"`
	SeenAt      time.Time  `gorm:"not null"`
	SoldAt      *time.Time `gorm:"index"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// Live reports whether the listing is still in its stash.
func (l *Listing) Live() bool {
	return l.SoldAt == nil
}
