package affix

// CanonicalQuality is the quality every exported value is normalized to.
const CanonicalQuality = 20

// roundHalfUp returns n/d rounded to the nearest integer, halves rounding up.
func roundHalfUp(n, d int64) int64 {
	if d < 0 {
		n, d = -n, -d
	}
	return floorDiv(2*n+d, 2*d)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// NormalizeQuality rescales a displayed local value to canonical quality.
//
// The base value is recovered by removing the flat added part and dividing by
// (100 + quality + increased)%, then the canonical quality is applied on top of
// the same increased modifier and the flat part is added back.
func NormalizeQuality(displayed, added, increased, quality int64) int64 {
	den := 100 + quality + increased
	if den <= 0 {
		return displayed
	}
	return roundHalfUp((displayed-added)*(100+CanonicalQuality+increased), den) + added
}

// Defences holds quality-normalized armour values.
type Defences struct {
	Armour       int64 `json:"armour"`
	Evasion      int64 `json:"evasion"`
	EnergyShield int64 `json:"energy_shield"`
}

// NormalizedDefences returns the record's defences at canonical quality.
func NormalizedDefences(r *StatRecord) Defences {
	q := r.Int("Quality")
	return Defences{
		Armour:       NormalizeQuality(r.Int("Armour"), r.Int("AddedArmour"), r.Int("IncreasedArmour"), q),
		Evasion:      NormalizeQuality(r.Int("Evasion"), r.Int("AddedEvasion"), r.Int("IncreasedEvasion"), q),
		EnergyShield: NormalizeQuality(r.Int("EnergyShield"), r.Int("AddedEnergyShield"), r.Int("IncreasedEnergyShield"), q),
	}
}

// NormalizedPhysDamage returns the weapon's physical damage (min + max) at canonical quality.
func NormalizedPhysDamage(r *StatRecord) int64 {
	return NormalizeQuality(r.Int("PhysDamage"), r.Int("AddedPhysDamageLocal"), r.Int("IncreasedPhysDamage"), r.Int("Quality"))
}
