package indexer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap/zapcore"

	"stash-indexer/internal/parse"
)

// CycleStats summarizes one fetch, normalize, diff and commit cycle.
type CycleStats struct {
	CycleID      string    `json:"cycle_id"`
	Cursor       string    `json:"cursor"`
	NextCursor   string    `json:"next_cursor"`
	StartedAt    time.Time `json:"started_at"`
	Duration     string    `json:"duration"`
	Stashes      int       `json:"stashes"`
	Items        int       `json:"items"`
	Normalized   int       `json:"normalized"`
	Banned       int       `json:"banned"`
	Unrecognized int       `json:"unrecognized"`
	Conflicts    int       `json:"conflicts"`
	Failed       int       `json:"failed"`
	New          int       `json:"new"`
	Modified     int       `json:"modified"`
	Sold         int       `json:"sold"`
}

// MarshalLogObject lets a CycleStats be logged as one structured field.
func (s CycleStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("cycle_id", s.CycleID)
	enc.AddInt("stashes", s.Stashes)
	enc.AddInt("items", s.Items)
	enc.AddInt("normalized", s.Normalized)
	enc.AddInt("banned", s.Banned)
	enc.AddInt("unrecognized", s.Unrecognized)
	enc.AddInt("conflicts", s.Conflicts)
	enc.AddInt("failed", s.Failed)
	enc.AddInt("new", s.New)
	enc.AddInt("modified", s.Modified)
	enc.AddInt("sold", s.Sold)
	return nil
}

// ListingFingerprint identifies a sale offer: the item's stat fingerprint plus
// its asking price. A re-price therefore counts as a modification.
func ListingFingerprint(statFingerprint string, price parse.Price) string {
	d := xxhash.New()
	_, _ = d.WriteString(statFingerprint)
	_, _ = d.WriteString("|")
	_, _ = d.WriteString(strconv.FormatFloat(price.Amount, 'f', -1, 64))
	_, _ = d.WriteString("|")
	_, _ = d.WriteString(strconv.Itoa(int(price.Currency)))
	return fmt.Sprintf("%016x", d.Sum64())
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic during normalization: %v", e.value)
}
