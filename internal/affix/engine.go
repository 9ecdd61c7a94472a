package affix

import (
	"fmt"
	"regexp"
	"strings"

	"stash-indexer/internal/feed"
	"stash-indexer/internal/itemtype"
)

// Engine turns raw feed items into StatRecords using a rule registry.
type Engine struct {
	registry *Registry
}

// NewEngine creates an Engine over the given registry; nil selects DefaultRegistry.
func NewEngine(registry *Registry) *Engine {
	if registry == nil {
		registry = DefaultRegistry
	}
	return &Engine{registry: registry}
}

// Parse normalizes one item of the given category.
//
// Structured properties are read first, then implicit lines against the
// category's implicit matchers, then explicit and crafted lines against its
// explicit matchers. Expected item-scoped rejections come back as
// *BannedItemError, *UnrecognizedModifierError or *ConflictingAffixError.
// Enchantments are not part of the stat record.
func (e *Engine) Parse(item *feed.Item, cat itemtype.Category) (*StatRecord, error) {
	rules, ok := e.registry.Lookup(cat)
	if !ok {
		return nil, fmt.Errorf("no rules for category %s", cat)
	}

	rec := newRecord(item.ID, cat)
	rules.declare(rec)
	rules.Structural.parse(item, rec)

	st := &parseState{rec: rec, seen: make(map[string]int64)}
	for _, mod := range item.ImplicitMods {
		if err := rules.applyMod(mod, rules.Implicit, st); err != nil {
			return nil, err
		}
	}
	for _, mods := range [][]string{item.ExplicitMods, item.CraftedMods} {
		for _, mod := range mods {
			if err := rules.applyMod(mod, rules.Explicit, st); err != nil {
				return nil, err
			}
		}
	}

	rec.Fingerprint = Fingerprint(rec)
	return rec, nil
}

// applyMod handles one modifier entry. The feed packs some modifiers as
// several newline separated lines.
func (r *Rules) applyMod(mod string, matchers []Matcher, st *parseState) error {
	for _, text := range strings.Split(mod, "\n") {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if err := r.applyLine(text, matchers, st); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rules) applyLine(text string, matchers []Matcher, st *parseState) error {
	if matchAny(r.Banned, text) {
		return &BannedItemError{Text: text}
	}
	if matchAny(r.Ignored, text) {
		return nil
	}

	matched := false
	for i := range matchers {
		m := &matchers[i]
		sub := m.Pattern.FindStringSubmatch(text)
		if sub == nil {
			continue
		}
		matched = true
		if err := m.apply(text, sub, st); err != nil {
			return err
		}
	}
	if !matched {
		return &UnrecognizedModifierError{Text: text}
	}
	return nil
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
