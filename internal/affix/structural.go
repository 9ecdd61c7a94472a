package affix

import (
	"strconv"
	"strings"

	"stash-indexer/internal/feed"
)

// Structure selects which structured properties a category reads besides the
// ones every item has (sockets, corruption, quality, requirements).
type Structure struct {
	Defences bool // armour, evasion and energy shield properties
	Weapon   bool // damage, attacks per second and critical chance properties
	Block    bool // shield block chance property
}

var baseStats = []string{"Quality", "ReqLevel", "ReqStr", "ReqDex", "ReqInt"}

var defenceStats = []string{"Armour", "Evasion", "EnergyShield"}

var weaponStats = []string{"PhysDamage", "EleDamage", "ChaosDamage", "AttacksPerSecond", "BaseCritChance"}

func (s Structure) intStats() []string {
	out := append([]string(nil), baseStats...)
	if s.Defences {
		out = append(out, defenceStats...)
	}
	if s.Weapon {
		out = append(out, weaponStats...)
	}
	if s.Block {
		out = append(out, "Block")
	}
	return out
}

func (s Structure) flagStats() []string {
	return []string{"Corrupted"}
}

func (s Structure) parse(item *feed.Item, rec *StatRecord) {
	rec.Sockets = socketDescriptor(item.Sockets)
	rec.setFlag("Corrupted", item.Corrupted)
	rec.set("Quality", percentProperty(item, "Quality", rec))

	if s.Defences {
		rec.set("Armour", intProperty(item, "Armour", rec))
		rec.set("Evasion", intProperty(item, "Evasion Rating", rec))
		rec.set("EnergyShield", intProperty(item, "Energy Shield", rec))
	}
	if s.Weapon {
		rec.set("PhysDamage", rangeProperty(item, "Physical Damage", rec))
		rec.set("EleDamage", rangeProperty(item, "Elemental Damage", rec))
		rec.set("ChaosDamage", rangeProperty(item, "Chaos Damage", rec))
		rec.set("AttacksPerSecond", fixedProperty(item, "Attacks per Second", 100, rec))
		rec.set("BaseCritChance", fixedProperty(item, "Critical Strike Chance", 100, rec))
	}
	if s.Block {
		rec.set("Block", percentProperty(item, "Chance to Block", rec))
	}

	parseRequirements(item, rec)
}

// socketDescriptor concatenates socket colours per link group and joins the
// groups with a space, e.g. "SDD D I" for a five socket, three link item.
func socketDescriptor(sockets []feed.Socket) string {
	var groups []int
	colours := make(map[int]*strings.Builder)
	for _, s := range sockets {
		b, ok := colours[s.Group]
		if !ok {
			b = &strings.Builder{}
			colours[s.Group] = b
			groups = append(groups, s.Group)
		}
		b.WriteString(s.Attr)
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = colours[g].String()
	}
	return strings.Join(parts, " ")
}

func parseRequirements(item *feed.Item, rec *StatRecord) {
	for _, req := range item.Requirements {
		var stat string
		switch prefix(req.Name, 3) {
		case "Lev":
			stat = "ReqLevel"
		case "Str":
			stat = "ReqStr"
		case "Dex":
			stat = "ReqDex"
		case "Int":
			stat = "ReqInt"
		default:
			rec.warnf("unknown requirement %q", req.Name)
			continue
		}
		if len(req.Values) == 0 {
			rec.warnf("requirement %q has no value", req.Name)
			continue
		}
		v, err := strconv.ParseInt(strings.TrimSpace(req.Values[0].Text), 10, 64)
		if err != nil {
			rec.warnf("requirement %q has non-numeric value %q", req.Name, req.Values[0].Text)
			continue
		}
		rec.set(stat, v)
	}
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func firstValue(item *feed.Item, name string) (string, bool) {
	p, ok := item.Property(name)
	if !ok || len(p.Values) == 0 {
		return "", false
	}
	return p.Values[0].Text, true
}

func intProperty(item *feed.Item, name string, rec *StatRecord) int64 {
	text, ok := firstValue(item, name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		rec.warnf("property %q has non-numeric value %q", name, text)
		return 0
	}
	return v
}

// percentProperty reads values like "+20%" or "24%".
func percentProperty(item *feed.Item, name string, rec *StatRecord) int64 {
	text, ok := firstValue(item, name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(text, "+"), "%"), 10, 64)
	if err != nil {
		rec.warnf("property %q has non-numeric value %q", name, text)
		return 0
	}
	return v
}

func fixedProperty(item *feed.Item, name string, scale int64, rec *StatRecord) int64 {
	text, ok := firstValue(item, name)
	if !ok {
		return 0
	}
	v, err := parseFixed(strings.TrimSuffix(text, "%"), scale)
	if err != nil {
		rec.warnf("property %q has non-numeric value %q", name, text)
		return 0
	}
	return v
}

// rangeProperty sums every "min-max" value of a property.
func rangeProperty(item *feed.Item, name string, rec *StatRecord) int64 {
	p, ok := item.Property(name)
	if !ok {
		return 0
	}
	var total int64
	for _, val := range p.Values {
		lo, hi, found := strings.Cut(val.Text, "-")
		if !found {
			rec.warnf("property %q has malformed range %q", name, val.Text)
			continue
		}
		l, err1 := strconv.ParseInt(lo, 10, 64)
		h, err2 := strconv.ParseInt(hi, 10, 64)
		if err1 != nil || err2 != nil {
			rec.warnf("property %q has malformed range %q", name, val.Text)
			continue
		}
		total += l + h
	}
	return total
}
