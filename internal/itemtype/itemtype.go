package itemtype

import "strings"

// Category is the equipment slot / base-type class of an item. It selects the
// rule table the affix engine applies.
type Category uint8

const (
	Unknown Category = iota
	Ring
	Amulet
	BodyArmour
	Helmet
	Gloves
	Boots
	Belt
	Shield
	Wand
	Staff
	Dagger
	OneHandSword
	TwoHandSword
	OneHandAxe
	TwoHandAxe
	OneHandMace
	TwoHandMace
	Bow
	Quiver
	Claw
	Sceptre

	numCategories
)

// Count is the size of a lookup array indexed by Category.
const Count = int(numCategories)

var names = [numCategories]string{
	Unknown:      "unknown",
	Ring:         "ring",
	Amulet:       "amulet",
	BodyArmour:   "body_armour",
	Helmet:       "helmet",
	Gloves:       "gloves",
	Boots:        "boots",
	Belt:         "belt",
	Shield:       "shield",
	Wand:         "wand",
	Staff:        "staff",
	Dagger:       "dagger",
	OneHandSword: "one_hand_sword",
	TwoHandSword: "two_hand_sword",
	OneHandAxe:   "one_hand_axe",
	TwoHandAxe:   "two_hand_axe",
	OneHandMace:  "one_hand_mace",
	TwoHandMace:  "two_hand_mace",
	Bow:          "bow",
	Quiver:       "quiver",
	Claw:         "claw",
	Sceptre:      "sceptre",
}

func (c Category) String() string {
	if c >= numCategories {
		return "invalid"
	}
	return names[c]
}

// All returns every known category, Unknown excluded, in declaration order.
func All() []Category {
	out := make([]Category, 0, Count-1)
	for c := Ring; c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// FromName is the inverse of String.
func FromName(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c := Unknown; c < numCategories; c++ {
		if names[c] == name {
			return c, true
		}
	}
	return Unknown, false
}

// IsWeapon reports whether the category carries weapon damage properties.
func (c Category) IsWeapon() bool {
	switch c {
	case Wand, Staff, Dagger, OneHandSword, TwoHandSword, OneHandAxe, TwoHandAxe,
		OneHandMace, TwoHandMace, Bow, Claw, Sceptre:
		return true
	}
	return false
}

// IsArmour reports whether the category carries armour / evasion / energy shield properties.
func (c Category) IsArmour() bool {
	switch c {
	case BodyArmour, Helmet, Gloves, Boots, Shield:
		return true
	}
	return false
}

// CanHaveSixSockets reports whether a base of this category can roll six sockets.
func (c Category) CanHaveSixSockets() bool {
	switch c {
	case BodyArmour, TwoHandAxe, TwoHandMace, TwoHandSword, Staff, Bow:
		return true
	}
	return false
}

const superiorPrefix = "Superior "

var legacyQuivers = map[string]struct{}{
	"Heavy Quiver":      {},
	"Light Quiver":      {},
	"Rugged Quiver":     {},
	"Conductive Quiver": {},
	"Cured Quiver":      {},
}

// FromBaseType resolves an item's base type line to its category.
//
// The "Superior " prefix is ignored. Talismans, maps, jewels, legacy quivers and
// fishing rods resolve to Unknown with known=true: they are deliberately excluded.
// A base type that appears in no table resolves to Unknown with known=false so the
// caller can report it.
func FromBaseType(typeLine string) (cat Category, known bool) {
	base := strings.TrimPrefix(strings.TrimSpace(typeLine), superiorPrefix)
	if c, ok := baseTypes[base]; ok {
		return c, true
	}
	if strings.Contains(base, "Talisman") || strings.Contains(base, " Map") || strings.Contains(base, "Jewel") {
		return Unknown, true
	}
	if _, ok := legacyQuivers[base]; ok {
		return Unknown, true
	}
	if base == "Fishing Rod" {
		return Unknown, true
	}
	return Unknown, false
}
