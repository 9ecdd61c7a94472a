package affix

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Combinator decides how a new value merges with one already assigned to the
// same stat within an item.
type Combinator uint8

const (
	Sum Combinator = iota
	Or
	RestrictOne
	ScaledSum
)

func (c Combinator) String() string {
	switch c {
	case Sum:
		return "sum"
	case Or:
		return "or"
	case RestrictOne:
		return "restrict_one"
	case ScaledSum:
		return "scaled_sum"
	default:
		return "invalid"
	}
}

// Conversion turns regexp captures into a stat value.
type Conversion uint8

const (
	// Int parses capture Group as a signed integer.
	Int Conversion = iota
	// Fixed parses capture Group as a decimal and scales it by Matcher.Scale.
	Fixed
	// Range adds captures Group and Group+1.
	Range
	// Flag sets the stat when the line matches.
	Flag
	// Skill maps capture Group through the granted skill table.
	Skill
)

// Target is one stat fed by a matcher.
type Target struct {
	Stat  string
	Group int
	Conv  Conversion
}

// Matcher recognizes one modifier line and feeds its captures into Targets.
type Matcher struct {
	Pattern *regexp.Regexp
	Targets []Target
	Combine Combinator
	Scale   int64
}

var errUnknownSkill = errors.New("unknown granted skill")

// Granted skill ids. Zero means no skill.
var skillIDs = map[string]int64{
	"None":                0,
	"Purity of Fire":      1,
	"Purity of Ice":       2,
	"Purity of Lightning": 3,
	"Conductivity":        4,
	"Flammability":        5,
	"Frostbite":           6,
	"Vulnerability":       7,
	"Elemental Weakness":  8,
	"Temporal Chains":     9,
	"Enfeeble":            10,
	"Projectile Weakness": 11,
	"Punishment":          12,
	"Warlord's Mark":      13,
	"Assassin's Mark":     14,
	"Poacher's Mark":      15,
	"Clarity":             16,
	"Vitality":            17,
	"Haste":               18,
	"Herald of Ice":       19,
	"Herald of Ash":       20,
	"Herald of Thunder":   21,
	"Wrath":               22,
	"Hatred":              23,
	"Anger":               24,
	"Discipline":          25,
	"Grace":               26,
	"Determination":       27,
	"Purity of Elements":  28,
}

// SkillID returns the id of a granted skill name.
func SkillID(name string) (int64, bool) {
	id, ok := skillIDs[name]
	return id, ok
}

// parseState carries per-item merge state across lines.
type parseState struct {
	rec  *StatRecord
	seen map[string]int64
}

func (m *Matcher) value(t Target, sub []string) (int64, error) {
	switch t.Conv {
	case Int:
		return strconv.ParseInt(sub[t.Group], 10, 64)
	case Fixed:
		return parseFixed(sub[t.Group], m.Scale)
	case Range:
		lo, err := strconv.ParseInt(sub[t.Group], 10, 64)
		if err != nil {
			return 0, err
		}
		hi, err := strconv.ParseInt(sub[t.Group+1], 10, 64)
		if err != nil {
			return 0, err
		}
		return lo + hi, nil
	case Skill:
		id, ok := SkillID(sub[t.Group])
		if !ok {
			return 0, errUnknownSkill
		}
		return id, nil
	default:
		return 0, fmt.Errorf("conversion %d has no numeric value", t.Conv)
	}
}

// apply merges one matched line into the record.
func (m *Matcher) apply(text string, sub []string, st *parseState) error {
	for _, t := range m.Targets {
		if t.Conv == Flag {
			st.rec.setFlag(t.Stat, true)
			continue
		}

		v, err := m.value(t, sub)
		if err != nil {
			if errors.Is(err, errUnknownSkill) {
				return &UnrecognizedModifierError{Text: text}
			}
			return fmt.Errorf("stat %s from %q: %w", t.Stat, text, err)
		}

		switch m.Combine {
		case RestrictOne:
			// Zero counts as a real value once a line has set it.
			k := key(t.Stat)
			if prev, ok := st.seen[k]; ok {
				if prev != v {
					return &ConflictingAffixError{Stat: k, Previous: prev, Current: v, Text: text}
				}
				continue
			}
			st.seen[k] = v
			st.rec.set(t.Stat, v)
		default:
			st.rec.add(t.Stat, v)
		}
	}
	return nil
}

// parseFixed parses a non-negative decimal like "0.25" into an integer scaled by
// scale (a power of ten), rounding half up.
func parseFixed(s string, scale int64) (int64, error) {
	whole, frac, _ := strings.Cut(s, ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	if len(frac) > 9 {
		frac = frac[:9]
	}
	if frac == "" {
		return w * scale, nil
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, err
	}
	denom := int64(1)
	for range frac {
		denom *= 10
	}
	return w*scale + roundHalfUp(f*scale, denom), nil
}

func (m *Matcher) validate() error {
	if m.Pattern == nil {
		return errors.New("nil pattern")
	}
	if len(m.Targets) == 0 {
		return fmt.Errorf("%s: no targets", m.Pattern)
	}
	groups := m.Pattern.NumSubexp()
	for _, t := range m.Targets {
		if t.Stat == "" {
			return fmt.Errorf("%s: empty stat name", m.Pattern)
		}
		need := t.Group
		if t.Conv == Range {
			need++
		}
		if t.Conv != Flag && (t.Group < 1 || need > groups) {
			return fmt.Errorf("%s: target %s uses group %d of %d", m.Pattern, t.Stat, need, groups)
		}
		if (t.Conv == Flag) != (m.Combine == Or) {
			return fmt.Errorf("%s: target %s mixes flag conversion with %s", m.Pattern, t.Stat, m.Combine)
		}
		if t.Conv == Fixed && !powerOfTen(m.Scale) {
			return fmt.Errorf("%s: fixed target %s needs a power-of-ten scale, got %d", m.Pattern, t.Stat, m.Scale)
		}
	}
	return nil
}

func powerOfTen(n int64) bool {
	if n < 1 {
		return false
	}
	for n%10 == 0 {
		n /= 10
	}
	return n == 1
}

// Table constructors. Patterns are anchored to the whole line.

func line(expr string) *regexp.Regexp {
	return regexp.MustCompile("^" + expr + "$")
}

func sum(expr string, stats ...string) Matcher {
	targets := make([]Target, len(stats))
	for i, s := range stats {
		targets[i] = Target{Stat: s, Group: 1, Conv: Int}
	}
	return Matcher{Pattern: line(expr), Targets: targets, Combine: Sum}
}

func fixed(expr string, scale int64, stat string) Matcher {
	return Matcher{
		Pattern: line(expr),
		Targets: []Target{{Stat: stat, Group: 1, Conv: Fixed}},
		Combine: ScaledSum,
		Scale:   scale,
	}
}

func span(expr string, stat string) Matcher {
	return Matcher{Pattern: line(expr), Targets: []Target{{Stat: stat, Group: 1, Conv: Range}}, Combine: Sum}
}

func flag(expr string, stat string) Matcher {
	return Matcher{Pattern: line(expr), Targets: []Target{{Stat: stat, Conv: Flag}}, Combine: Or}
}

func grantedSkill() Matcher {
	return Matcher{
		Pattern: line(`Grants [Ll]evel (\d+) (.+?) Skill`),
		Targets: []Target{
			{Stat: "GrantedSkillLevel", Group: 1, Conv: Int},
			{Stat: "GrantedSkillId", Group: 2, Conv: Skill},
		},
		Combine: RestrictOne,
	}
}
