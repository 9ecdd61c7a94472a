package affix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stash-indexer/internal/feed"
	"stash-indexer/internal/itemtype"
)

func ringItem(implicit, explicit []string) *feed.Item {
	return &feed.Item{
		ID:           "ring-1",
		TypeLine:     "Two-Stone Ring",
		FrameType:    feed.FrameRare,
		Identified:   true,
		ImplicitMods: implicit,
		ExplicitMods: explicit,
	}
}

func parseRing(t *testing.T, implicit, explicit []string) *StatRecord {
	t.Helper()
	rec, err := NewEngine(nil).Parse(ringItem(implicit, explicit), itemtype.Ring)
	require.NoError(t, err)
	return rec
}

func TestParse_RingStats(t *testing.T) {
	testCases := []struct {
		name     string
		implicit []string
		explicit []string
		expected map[string]int64
	}{
		{
			name:     "Life",
			explicit: []string{"+30 to maximum Life"},
			expected: map[string]int64{"Life": 30, "Strength": 0},
		},
		{
			name:     "Implicit and explicit sum",
			implicit: []string{"+10 to maximum Life"},
			explicit: []string{"+13 to maximum Life"},
			expected: map[string]int64{"Life": 23},
		},
		{
			name:     "Mana",
			implicit: []string{"+20 to maximum Mana"},
			explicit: []string{"+22 to maximum Mana"},
			expected: map[string]int64{"Mana": 42},
		},
		{
			name:     "Added attack damage range",
			implicit: []string{"Adds 2 to 5 Physical Damage to Attacks"},
			explicit: []string{"Adds 4 to 9 Physical Damage to Attacks"},
			expected: map[string]int64{"AddedPhysAttackDamage": 2 + 5 + 4 + 9},
		},
		{
			name:     "Single resist",
			implicit: []string{"+5% to Fire Resistance"},
			explicit: []string{"+7% to Fire Resistance"},
			expected: map[string]int64{"FireResist": 12, "ColdResist": 0},
		},
		{
			name:     "Fire and Cold",
			implicit: []string{"+6% to Fire and Cold Resistances"},
			expected: map[string]int64{"FireResist": 6, "ColdResist": 6, "LightningResist": 0},
		},
		{
			name:     "Fire and Lightning",
			implicit: []string{"+7% to Fire and Lightning Resistances"},
			expected: map[string]int64{"FireResist": 7, "LightningResist": 7, "ColdResist": 0},
		},
		{
			name:     "Cold and Lightning",
			implicit: []string{"+7% to Cold and Lightning Resistances"},
			expected: map[string]int64{"ColdResist": 7, "LightningResist": 7, "FireResist": 0},
		},
		{
			name:     "All elemental plus single",
			implicit: []string{"+8% to all Elemental Resistances"},
			explicit: []string{"+10% to Cold Resistance"},
			expected: map[string]int64{"FireResist": 8, "ColdResist": 18, "LightningResist": 8, "ChaosResist": 0},
		},
		{
			name:     "Negative resist",
			explicit: []string{"-10% to Chaos Resistance"},
			expected: map[string]int64{"ChaosResist": -10},
		},
		{
			name:     "Item rarity",
			implicit: []string{"5% increased Rarity of Items found"},
			explicit: []string{"7% increased Rarity of Items found"},
			expected: map[string]int64{"ItemRarity": 12},
		},
		{
			name:     "Life leech fraction",
			explicit: []string{"0.25% of Physical Attack Damage Leeched as Life"},
			expected: map[string]int64{"LifeLeech": 25},
		},
		{
			name:     "Life leech whole",
			explicit: []string{"1% of Physical Attack Damage Leeched as Life"},
			expected: map[string]int64{"LifeLeech": 100},
		},
		{
			name:     "Mana leech",
			explicit: []string{"0.25% of Physical Attack Damage Leeched as Mana"},
			expected: map[string]int64{"ManaLeech": 25},
		},
		{
			name:     "Life regen fraction",
			explicit: []string{"3.2 Life Regenerated per second"},
			expected: map[string]int64{"LifeRegen": 32},
		},
		{
			name:     "Life regen whole",
			explicit: []string{"3 Life Regenerated per second"},
			expected: map[string]int64{"LifeRegen": 30},
		},
		{
			name:     "All attributes",
			explicit: []string{"+12 to all Attributes", "+20 to Strength"},
			expected: map[string]int64{"Strength": 32, "Dexterity": 12, "Intelligence": 12, "Life": 0},
		},
		{
			name:     "Granted skill",
			implicit: []string{"Grants level 14 Conductivity Skill"},
			expected: map[string]int64{"GrantedSkillLevel": 14, "GrantedSkillId": 4},
		},
		{
			name:     "Identical granted skills are taken once",
			implicit: []string{"Grants level 14 Conductivity Skill"},
			explicit: []string{"Grants level 14 Conductivity Skill"},
			expected: map[string]int64{"GrantedSkillLevel": 14, "GrantedSkillId": 4},
		},
		{
			name:     "Granted skill absent defaults to zero",
			explicit: []string{"+30 to maximum Life"},
			expected: map[string]int64{"GrantedSkillLevel": 0, "GrantedSkillId": 0},
		},
		{
			name:     "Multi-line modifier entry",
			explicit: []string{"+30 to maximum Life\n+10 to maximum Mana"},
			expected: map[string]int64{"Life": 30, "Mana": 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := parseRing(t, tc.implicit, tc.explicit)
			for stat, want := range tc.expected {
				assert.True(t, rec.Has(stat), "stat %s missing", stat)
				assert.Equal(t, want, rec.Int(stat), stat)
			}
		})
	}
}

func TestParse_DoubledInBreach(t *testing.T) {
	rec := parseRing(t, nil, nil)
	assert.True(t, rec.Has("DoubledInBreach"))
	assert.False(t, rec.Flag("DoubledInBreach"))

	rec = parseRing(t, []string{"Properties are doubled while in a Breach"}, nil)
	assert.True(t, rec.Flag("DoubledInBreach"))
	assert.True(t, rec.Flag("doubledinbreach"))
}

func TestParse_Conflicts(t *testing.T) {
	testCases := []struct {
		name     string
		implicit []string
		explicit []string
		stat     string
		previous int64
		current  int64
	}{
		{
			name:     "Different skills",
			implicit: []string{"Grants level 14 Conductivity Skill"},
			explicit: []string{"Grants level 14 Flammability Skill"},
			stat:     "grantedskillid",
			previous: 4,
			current:  5,
		},
		{
			name:     "Same skill different level",
			implicit: []string{"Grants level 10 Frostbite Skill"},
			explicit: []string{"Grants level 12 Frostbite Skill"},
			stat:     "grantedskilllevel",
			previous: 10,
			current:  12,
		},
		{
			name:     "Zero is a real value",
			implicit: []string{"Grants level 0 Conductivity Skill"},
			explicit: []string{"Grants level 5 Conductivity Skill"},
			stat:     "grantedskilllevel",
			previous: 0,
			current:  5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := NewEngine(nil).Parse(ringItem(tc.implicit, tc.explicit), itemtype.Ring)
			assert.Nil(t, rec)
			require.Error(t, err)

			var conflict *ConflictingAffixError
			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, tc.stat, conflict.Stat)
			assert.Equal(t, tc.previous, conflict.Previous)
			assert.Equal(t, tc.current, conflict.Current)
			assert.Equal(t, OutcomeConflict, Classify(err))
		})
	}
}

func TestParse_ZeroLevelSkillAlone(t *testing.T) {
	rec := parseRing(t, []string{"Grants level 0 Conductivity Skill"}, nil)
	assert.Equal(t, int64(0), rec.Int("GrantedSkillLevel"))
	assert.Equal(t, int64(4), rec.Int("GrantedSkillId"))
}

func TestParse_Rejections(t *testing.T) {
	testCases := []struct {
		name     string
		explicit []string
		outcome  Outcome
		text     string
	}{
		{name: "Unrecognized", explicit: []string{"+30 to maximum Life", "Summons a friendly duck"}, outcome: OutcomeUnrecognized, text: "Summons a friendly duck"},
		{name: "Unknown granted skill", explicit: []string{"Grants level 3 Dance Party Skill"}, outcome: OutcomeUnrecognized, text: "Grants level 3 Dance Party Skill"},
		{name: "Partial match is not a match", explicit: []string{"+30 to maximum Life while moving"}, outcome: OutcomeUnrecognized, text: "+30 to maximum Life while moving"},
		{name: "Banned abyssal socket", explicit: []string{"+30 to maximum Life", "Has 1 Abyssal Socket"}, outcome: OutcomeBanned, text: "Has 1 Abyssal Socket"},
		{name: "Banned veiled", explicit: []string{"Veiled Suffix"}, outcome: OutcomeBanned, text: "Veiled Suffix"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEngine(nil).Parse(ringItem(nil, tc.explicit), itemtype.Ring)
			require.Error(t, err)
			assert.Equal(t, tc.outcome, Classify(err))

			switch tc.outcome {
			case OutcomeUnrecognized:
				var unrec *UnrecognizedModifierError
				require.True(t, errors.As(err, &unrec))
				assert.Equal(t, tc.text, unrec.Text)
			case OutcomeBanned:
				assert.ErrorIs(t, err, ErrBannedItem)
				var banned *BannedItemError
				require.True(t, errors.As(err, &banned))
				assert.Equal(t, tc.text, banned.Text)
			}
		})
	}
}

func TestParse_IgnoredLinesAreSkipped(t *testing.T) {
	rec := parseRing(t, nil, []string{"Item sells for much more to vendors", "Left ring slot: 20% increased Cast Speed", "+5 to maximum Life"})
	assert.Equal(t, int64(5), rec.Int("Life"))
}

func TestParse_CraftedLinesUseExplicitTable(t *testing.T) {
	item := ringItem(nil, []string{"+20 to maximum Life"})
	item.CraftedMods = []string{"+15 to maximum Life"}
	item.EnchantMods = []string{"Anything at all"}

	rec, err := NewEngine(nil).Parse(item, itemtype.Ring)
	require.NoError(t, err)
	assert.Equal(t, int64(35), rec.Int("Life"))
}

func TestParse_Requirements(t *testing.T) {
	item := ringItem(nil, nil)
	item.Requirements = []feed.Property{
		{Name: "Level", Values: []feed.PropertyValue{{Text: "36"}}},
		{Name: "Strength", Values: []feed.PropertyValue{{Text: "60"}}},
		{Name: "Dex", Values: []feed.PropertyValue{{Text: "41"}}},
		{Name: "Class:", Values: []feed.PropertyValue{{Text: "Witch"}}},
	}

	rec, err := NewEngine(nil).Parse(item, itemtype.Ring)
	require.NoError(t, err)
	assert.Equal(t, int64(36), rec.Int("ReqLevel"))
	assert.Equal(t, int64(60), rec.Int("ReqStr"))
	assert.Equal(t, int64(41), rec.Int("ReqDex"))
	assert.Equal(t, int64(0), rec.Int("ReqInt"))
	require.Len(t, rec.Warnings, 1)
	assert.Contains(t, rec.Warnings[0], "Class:")
}

func TestParse_MalformedRequirementValueIsWarning(t *testing.T) {
	item := ringItem(nil, nil)
	item.Requirements = []feed.Property{{Name: "Int", Values: []feed.PropertyValue{{Text: "lots"}}}}

	rec, err := NewEngine(nil).Parse(item, itemtype.Ring)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.Int("ReqInt"))
	assert.Len(t, rec.Warnings, 1)
}

func TestParse_Sockets(t *testing.T) {
	item := ringItem(nil, nil)
	item.Sockets = []feed.Socket{
		{Group: 0, Attr: "S"}, {Group: 0, Attr: "D"}, {Group: 0, Attr: "D"},
		{Group: 1, Attr: "D"},
		{Group: 2, Attr: "I"},
	}
	item.Corrupted = true

	rec, err := NewEngine(nil).Parse(item, itemtype.Ring)
	require.NoError(t, err)
	assert.Equal(t, "SDD D I", rec.Sockets)
	assert.True(t, rec.Flag("Corrupted"))
}

func TestParse_BodyArmourStructure(t *testing.T) {
	item := &feed.Item{
		ID:       "body-1",
		TypeLine: "Astral Plate",
		Properties: []feed.Property{
			{Name: "Quality", Values: []feed.PropertyValue{{Text: "+20%", Kind: 1}}},
			{Name: "Armour", Values: []feed.PropertyValue{{Text: "1100", Kind: 1}}},
		},
		ImplicitMods: []string{"+10% to all Elemental Resistances", "Cannot be Knocked Back"},
		ExplicitMods: []string{
			"+90 to maximum Life",
			"+40 to Armour",
			"80% increased Armour",
			"Reflects 4 Physical Damage to Melee Attackers",
		},
	}

	rec, err := NewEngine(nil).Parse(item, itemtype.BodyArmour)
	require.NoError(t, err)
	assert.Equal(t, int64(20), rec.Int("Quality"))
	assert.Equal(t, int64(1100), rec.Int("Armour"))
	assert.Equal(t, int64(40), rec.Int("AddedArmour"))
	assert.Equal(t, int64(80), rec.Int("IncreasedArmour"))
	assert.Equal(t, int64(0), rec.Int("Evasion"))
	assert.Equal(t, int64(10), rec.Int("FireResist"))
	assert.Equal(t, int64(4), rec.Int("PhysReflect"))
	assert.True(t, rec.Flag("CannotBeKnockedBack"))
}

func TestParse_ExplicitOnlyLineInImplicitTable(t *testing.T) {
	item := &feed.Item{ID: "body-2", ImplicitMods: []string{"+40 to Armour"}}
	_, err := NewEngine(nil).Parse(item, itemtype.BodyArmour)
	assert.Equal(t, OutcomeUnrecognized, Classify(err))
}

func TestParse_WeaponStructure(t *testing.T) {
	item := &feed.Item{
		ID:       "sword-1",
		TypeLine: "Jewelled Foil",
		Properties: []feed.Property{
			{Name: "Physical Damage", Values: []feed.PropertyValue{{Text: "46-86", Kind: 1}}},
			{Name: "Elemental Damage", Values: []feed.PropertyValue{{Text: "5-10", Kind: 4}, {Text: "2-30", Kind: 6}}},
			{Name: "Critical Strike Chance", Values: []feed.PropertyValue{{Text: "5.50%", Kind: 0}}},
			{Name: "Attacks per Second", Values: []feed.PropertyValue{{Text: "1.60", Kind: 1}}},
			{Name: "Weapon Range", Values: []feed.PropertyValue{{Text: "14", Kind: 0}}},
		},
		ImplicitMods: []string{"+25% to Global Critical Strike Multiplier"},
		ExplicitMods: []string{
			"Adds 10 to 20 Physical Damage",
			"Adds 5 to 10 Fire Damage",
			"120% increased Physical Damage",
			"+2 to Weapon Range",
		},
	}

	rec, err := NewEngine(nil).Parse(item, itemtype.OneHandSword)
	require.NoError(t, err)
	assert.Equal(t, int64(132), rec.Int("PhysDamage"))
	assert.Equal(t, int64(47), rec.Int("EleDamage"))
	assert.Equal(t, int64(550), rec.Int("BaseCritChance"))
	assert.Equal(t, int64(160), rec.Int("AttacksPerSecond"))
	assert.Equal(t, int64(25), rec.Int("CritMultiplier"))
	assert.Equal(t, int64(30), rec.Int("AddedPhysDamageLocal"))
	assert.Equal(t, int64(15), rec.Int("AddedFireDamageLocal"))
	assert.Equal(t, int64(120), rec.Int("IncreasedPhysDamage"))
}

func TestParse_BeltIgnoresFlaskLines(t *testing.T) {
	item := &feed.Item{
		ID:           "belt-1",
		ImplicitMods: []string{"+25 to maximum Life"},
		ExplicitMods: []string{"20% increased Flask Charges gained", "12% reduced Flask Charges used", "+40 to Strength"},
	}
	rec, err := NewEngine(nil).Parse(item, itemtype.Belt)
	require.NoError(t, err)
	assert.Equal(t, int64(25), rec.Int("Life"))
	assert.Equal(t, int64(40), rec.Int("Strength"))
}

func TestParse_UnknownCategory(t *testing.T) {
	_, err := NewEngine(nil).Parse(ringItem(nil, nil), itemtype.Unknown)
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, Classify(err))
}

func TestParse_DefaultsCoverEveryDeclaredStat(t *testing.T) {
	for _, cat := range itemtype.All() {
		t.Run(cat.String(), func(t *testing.T) {
			rec, err := NewEngine(nil).Parse(&feed.Item{ID: "empty"}, cat)
			require.NoError(t, err)

			rules, ok := DefaultRegistry.Lookup(cat)
			require.True(t, ok)
			ints, flags := rules.Stats()
			assert.Len(t, rec.Ints, len(ints))
			assert.Len(t, rec.Flags, len(flags))
			for _, s := range ints {
				assert.Equal(t, int64(0), rec.Ints[s], s)
			}
			for _, s := range flags {
				assert.False(t, rec.Flags[s], s)
			}
			assert.NotEmpty(t, rec.Fingerprint)
		})
	}
}
