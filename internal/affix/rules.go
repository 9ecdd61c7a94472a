package affix

import (
	"errors"
	"fmt"
	"regexp"

	"stash-indexer/internal/itemtype"
)

// Rules is the complete rule table of one item category.
type Rules struct {
	Implicit   []Matcher
	Explicit   []Matcher
	Banned     []*regexp.Regexp
	Ignored    []*regexp.Regexp
	Structural Structure

	ints  []string
	flags []string
}

// declare seeds rec with the default value of every stat these rules produce.
func (r *Rules) declare(rec *StatRecord) {
	for _, s := range r.ints {
		rec.set(s, 0)
	}
	for _, s := range r.flags {
		rec.setFlag(s, false)
	}
}

// Stats lists the lower-cased integer and boolean stats the rules can produce.
func (r *Rules) Stats() (ints, flags []string) {
	return append([]string(nil), r.ints...), append([]string(nil), r.flags...)
}

func (r *Rules) compile() error {
	intSet := make(map[string]struct{})
	flagSet := make(map[string]struct{})
	addInt := func(s string) {
		if _, ok := intSet[key(s)]; !ok {
			intSet[key(s)] = struct{}{}
			r.ints = append(r.ints, key(s))
		}
	}
	addFlag := func(s string) {
		if _, ok := flagSet[key(s)]; !ok {
			flagSet[key(s)] = struct{}{}
			r.flags = append(r.flags, key(s))
		}
	}

	for _, s := range r.Structural.intStats() {
		addInt(s)
	}
	for _, s := range r.Structural.flagStats() {
		addFlag(s)
	}
	for _, list := range [][]Matcher{r.Implicit, r.Explicit} {
		for i := range list {
			m := &list[i]
			if err := m.validate(); err != nil {
				return err
			}
			for _, t := range m.Targets {
				if t.Conv == Flag {
					addFlag(t.Stat)
				} else {
					addInt(t.Stat)
				}
			}
		}
	}

	for s := range intSet {
		if _, ok := flagSet[s]; ok {
			return fmt.Errorf("stat %s is both an integer and a flag", s)
		}
	}
	return nil
}

// Registry maps every category to its rules. The array is indexed by category.
type Registry [itemtype.Count]*Rules

// NewRegistry compiles and validates rule tables.
func NewRegistry(tables map[itemtype.Category]*Rules) (*Registry, error) {
	var reg Registry
	for cat, rules := range tables {
		if int(cat) >= itemtype.Count || cat == itemtype.Unknown {
			return nil, fmt.Errorf("rules registered for invalid category %d", cat)
		}
		if err := rules.compile(); err != nil {
			return nil, fmt.Errorf("%s rules: %w", cat, err)
		}
		reg[cat] = rules
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate fails when a known category has no rules.
func (reg *Registry) Validate() error {
	var errs []error
	for _, cat := range itemtype.All() {
		if reg[cat] == nil {
			errs = append(errs, fmt.Errorf("no rules registered for category %s", cat))
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the rules of a category.
func (reg *Registry) Lookup(cat itemtype.Category) (*Rules, bool) {
	if int(cat) >= itemtype.Count || reg[cat] == nil {
		return nil, false
	}
	return reg[cat], true
}

// DefaultRegistry holds the built-in rule tables.
var DefaultRegistry = mustRegistry(defaultTables())

func mustRegistry(tables map[itemtype.Category]*Rules) *Registry {
	reg, err := NewRegistry(tables)
	if err != nil {
		panic(err)
	}
	return reg
}
