// Package differ classifies a stash's current items against its previous live set.
package differ

import "sort"

// Snapshot maps item id to fingerprint for the live items of one stash.
type Snapshot map[string]string

// Entry is one normalized item currently listed in a stash.
type Entry struct {
	ItemID      string
	Fingerprint string
}

// Result is the classification of a stash's current items. Every slice is sorted.
type Result struct {
	New       []string
	Modified  []string
	Sold      []string
	Unchanged []string

	live Snapshot
}

// Diff compares a stash's previous snapshot to its current items. Items are
// matched by id only; a changed fingerprint marks the item modified. When current
// repeats an id, the last entry wins.
func Diff(previous Snapshot, current []Entry) Result {
	live := make(Snapshot, len(current))
	for _, e := range current {
		live[e.ItemID] = e.Fingerprint
	}

	var res Result
	for id, fp := range live {
		prev, ok := previous[id]
		switch {
		case !ok:
			res.New = append(res.New, id)
		case prev != fp:
			res.Modified = append(res.Modified, id)
		default:
			res.Unchanged = append(res.Unchanged, id)
		}
	}
	for id := range previous {
		if _, ok := live[id]; !ok {
			res.Sold = append(res.Sold, id)
		}
	}

	sort.Strings(res.New)
	sort.Strings(res.Modified)
	sort.Strings(res.Sold)
	sort.Strings(res.Unchanged)
	res.live = live
	return res
}

// Live returns the snapshot that replaces the previous one.
func (r Result) Live() Snapshot {
	out := make(Snapshot, len(r.live))
	for k, v := range r.live {
		out[k] = v
	}
	return out
}

// Empty reports whether the stash needs no mutation.
func (r Result) Empty() bool {
	return len(r.New) == 0 && len(r.Modified) == 0 && len(r.Sold) == 0
}

// Upserts lists the ids that must be written: new and modified items.
func (r Result) Upserts() []string {
	out := make([]string, 0, len(r.New)+len(r.Modified))
	out = append(out, r.New...)
	out = append(out, r.Modified...)
	sort.Strings(out)
	return out
}
