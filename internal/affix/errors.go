package affix

import (
	"errors"
	"fmt"
)

// ErrBannedItem is wrapped by every BannedItemError.
var ErrBannedItem = errors.New("item carries a banned modifier")

// BannedItemError rejects an item whose modifier comes from an excluded generation source.
type BannedItemError struct {
	Text string
}

func (e *BannedItemError) Error() string {
	return fmt.Sprintf("banned modifier %q", e.Text)
}

func (e *BannedItemError) Unwrap() error { return ErrBannedItem }

// UnrecognizedModifierError carries a modifier line no rule accounts for.
type UnrecognizedModifierError struct {
	Text string
}

func (e *UnrecognizedModifierError) Error() string {
	return fmt.Sprintf("unrecognized modifier %q", e.Text)
}

// ConflictingAffixError reports two different values for a restrict-to-one stat.
type ConflictingAffixError struct {
	Stat     string
	Previous int64
	Current  int64
	Text     string
}

func (e *ConflictingAffixError) Error() string {
	return fmt.Sprintf("conflicting values for %s: %d then %d (%q)", e.Stat, e.Previous, e.Current, e.Text)
}

// Outcome classifies the result of normalizing one item.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeBanned
	OutcomeUnrecognized
	OutcomeConflict
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeBanned:
		return "banned"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeConflict:
		return "conflict"
	default:
		return "failed"
	}
}

// Classify maps an error returned by Engine.Parse to its Outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var unrecognized *UnrecognizedModifierError
	var conflict *ConflictingAffixError
	switch {
	case errors.Is(err, ErrBannedItem):
		return OutcomeBanned
	case errors.As(err, &unrecognized):
		return OutcomeUnrecognized
	case errors.As(err, &conflict):
		return OutcomeConflict
	default:
		return OutcomeFailed
	}
}
