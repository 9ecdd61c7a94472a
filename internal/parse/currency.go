package parse

// Currency identifies a currency item used in price notes.
type Currency int

const (
	CurrencyUnknown Currency = iota
	CurrencyAlteration
	CurrencyFusing
	CurrencyAlchemy
	CurrencyChaos
	CurrencyGemcutter
	CurrencyExalted
	CurrencyChromatic
	CurrencyJeweller
	CurrencyChance
	CurrencyChisel
	CurrencyScouring
	CurrencyBlessed
	CurrencyRegret
	CurrencyRegal
	CurrencyDivine
	CurrencyVaal
)

var shortNames = map[string]Currency{
	"alt":     CurrencyAlteration,
	"fuse":    CurrencyFusing,
	"alch":    CurrencyAlchemy,
	"chaos":   CurrencyChaos,
	"gcp":     CurrencyGemcutter,
	"exa":     CurrencyExalted,
	"chrom":   CurrencyChromatic,
	"jew":     CurrencyJeweller,
	"chance":  CurrencyChance,
	"chisel":  CurrencyChisel,
	"scour":   CurrencyScouring,
	"blessed": CurrencyBlessed,
	"regret":  CurrencyRegret,
	"regal":   CurrencyRegal,
	"divine":  CurrencyDivine,
	"vaal":    CurrencyVaal,
}

// Spellings seen in notes that are not the canonical short name.
var shortNameAliases = map[string]Currency{
	"alteration": CurrencyAlteration,
	"fusing":     CurrencyFusing,
	"alchemy":    CurrencyAlchemy,
	"exalted":    CurrencyExalted,
	"ex":         CurrencyExalted,
	"chromatic":  CurrencyChromatic,
	"jewellers":  CurrencyJeweller,
	"scouring":   CurrencyScouring,
}

var fullNames = map[string]string{
	"Orb of Alteration":     "alt",
	"Orb of Fusing":         "fuse",
	"Orb of Alchemy":        "alch",
	"Chaos Orb":             "chaos",
	"Gemcutter's Prism":     "gcp",
	"Exalted Orb":           "exa",
	"Chromatic Orb":         "chrom",
	"Jeweller's Orb":        "jew",
	"Orb of Chance":         "chance",
	"Cartographer's Chisel": "chisel",
	"Orb of Scouring":       "scour",
	"Blessed Orb":           "blessed",
	"Orb of Regret":         "regret",
	"Regal Orb":             "regal",
	"Divine Orb":            "divine",
	"Vaal Orb":              "vaal",
}

// CurrencyFromShortName resolves a price-note short name ("chaos", "exa").
func CurrencyFromShortName(name string) Currency {
	if c, ok := shortNames[name]; ok {
		return c
	}
	return shortNameAliases[name]
}

// ShortName returns the canonical short name, or "" for CurrencyUnknown.
func (c Currency) ShortName() string {
	for name, id := range shortNames {
		if id == c {
			return name
		}
	}
	return ""
}

func (c Currency) String() string {
	if s := c.ShortName(); s != "" {
		return s
	}
	return "unknown"
}

// ShortNameFromFullName maps an in-game currency name to its short name.
func ShortNameFromFullName(fullName string) (string, bool) {
	s, ok := fullNames[fullName]
	return s, ok
}
