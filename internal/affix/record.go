package affix

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"stash-indexer/internal/itemtype"
)

// StatRecord is the normalized stat vector of one item. Stat keys are stored in
// lower case; every stat a category's rules can produce is present, defaulting
// to 0 or false.
type StatRecord struct {
	ItemID      string
	Category    itemtype.Category
	Sockets     string
	Ints        map[string]int64
	Flags       map[string]bool
	Fingerprint string
	Warnings    []string
}

func newRecord(itemID string, cat itemtype.Category) *StatRecord {
	return &StatRecord{
		ItemID:   itemID,
		Category: cat,
		Ints:     make(map[string]int64),
		Flags:    make(map[string]bool),
	}
}

func key(stat string) string { return strings.ToLower(stat) }

// Int returns an integer stat, looked up case-insensitively.
func (r *StatRecord) Int(stat string) int64 { return r.Ints[key(stat)] }

// Flag returns a boolean stat, looked up case-insensitively.
func (r *StatRecord) Flag(stat string) bool { return r.Flags[key(stat)] }

// Has reports whether the stat is part of the record at all.
func (r *StatRecord) Has(stat string) bool {
	k := key(stat)
	if _, ok := r.Ints[k]; ok {
		return true
	}
	_, ok := r.Flags[k]
	return ok
}

func (r *StatRecord) add(stat string, v int64) { r.Ints[key(stat)] += v }

func (r *StatRecord) set(stat string, v int64) { r.Ints[key(stat)] = v }

func (r *StatRecord) setFlag(stat string, v bool) { r.Flags[key(stat)] = v }

func (r *StatRecord) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Values merges the integer and boolean stats into one map, for persistence.
func (r *StatRecord) Values() map[string]any {
	out := make(map[string]any, len(r.Ints)+len(r.Flags))
	for k, v := range r.Ints {
		out[k] = v
	}
	for k, v := range r.Flags {
		out[k] = v
	}
	return out
}

// Fingerprint hashes the record's stat mapping and socket descriptor. The result
// does not depend on the order stats were added in.
func Fingerprint(r *StatRecord) string {
	lines := make([]string, 0, len(r.Ints)+len(r.Flags)+1)
	for k, v := range r.Ints {
		lines = append(lines, "i:"+k+"="+strconv.FormatInt(v, 10))
	}
	for k, v := range r.Flags {
		lines = append(lines, "f:"+k+"="+strconv.FormatBool(v))
	}
	lines = append(lines, "s:sockets="+r.Sockets)
	sort.Strings(lines)

	h := xxhash.New()
	for _, l := range lines {
		h.WriteString(l)
		h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// RecordFromValues rebuilds a record from the map produced by Values, as read
// back from storage. Numbers may arrive as float64 after a JSON round trip.
func RecordFromValues(itemID string, cat itemtype.Category, sockets string, values map[string]any) (*StatRecord, error) {
	r := newRecord(itemID, cat)
	r.Sockets = sockets
	for k, v := range values {
		switch x := v.(type) {
		case bool:
			r.setFlag(k, x)
		case int64:
			r.set(k, x)
		case int:
			r.set(k, int64(x))
		case float64:
			if x != math.Trunc(x) {
				return nil, fmt.Errorf("stat %s of %s is not an integer: %v", k, itemID, x)
			}
			r.set(k, int64(x))
		default:
			return nil, fmt.Errorf("stat %s of %s has unsupported type %T", k, itemID, v)
		}
	}
	r.Fingerprint = Fingerprint(r)
	return r, nil
}
