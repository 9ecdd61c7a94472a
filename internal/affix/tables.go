package affix

import "stash-indexer/internal/itemtype"

var quiverBowMods = []Matcher{
	span(`Adds (\d+) to (\d+) Physical Damage to Attacks with Bows`, "AddedPhysAttackDamage"),
	span(`Adds (\d+) to (\d+) Fire Damage to Attacks with Bows`, "AddedFireAttackDamage"),
	span(`Adds (\d+) to (\d+) Cold Damage to Attacks with Bows`, "AddedColdAttackDamage"),
	span(`Adds (\d+) to (\d+) Lightning Damage to Attacks with Bows`, "AddedLightningAttackDamage"),
	span(`Adds (\d+) to (\d+) Chaos Damage to Attacks with Bows`, "AddedChaosAttackDamage"),
	sum(`(\d+)% increased Critical Strike Chance with Bows`, "BowCritChance"),
	sum(`\+(\d+)% to Critical Strike Multiplier with Bows`, "BowCritMultiplier"),
}

var globalAccuracyMods = []Matcher{
	sum(`(\d+)% increased Global Accuracy Rating`, "IncreasedAccuracy"),
}

func defaultTables() map[itemtype.Category]*Rules {
	jewelleryImplicit := join(lifeManaMods, globalEnergyShieldMods, attributeMods, resistMods, regenMods,
		utilityMods, addedAttackDamageMods, attackSpeedMods, castSpeedMods, critMods, elementalDamageMods,
		avoidStatusMods, corruptionMods)
	jewelleryExplicit := join(lifeManaMods, globalEnergyShieldMods, globalDefenceMods, attributeMods,
		resistMods, accuracyMods, addedAttackDamageMods, elementalDamageMods, critMods, utilityMods,
		leechMods, attackSpeedMods, castSpeedMods, gainOnHitMods, regenMods, avoidStatusMods, corruptionMods)

	armourImplicit := join(lifeManaMods, attributeMods, resistMods, avoidStatusMods, socketedGemMods,
		maxResistMods, knockbackMods, corruptionMods)
	armourExplicit := join(localDefenceMods, lifeManaMods, attributeMods, resistMods, regenMods, recoveryMods)

	weaponExplicit := join(localWeaponMods, lifeManaMods, attributeMods, critMods, elementalDamageMods,
		leechMods, gainOnHitMods, stunMods, socketedGemMods, utilityMods)
	casterExplicit := join(weaponExplicit, spellMods, spellWeaponMods, castSpeedMods, regenMods)

	jewellery := func(implicit, explicit []Matcher) *Rules {
		return &Rules{Implicit: implicit, Explicit: explicit, Banned: bannedCommon, Ignored: ignoredCommon}
	}
	armour := func(implicit, explicit []Matcher, s Structure) *Rules {
		s.Defences = true
		return &Rules{Implicit: implicit, Explicit: explicit, Banned: bannedCommon, Ignored: ignoredCommon, Structural: s}
	}
	weapon := func(implicit, explicit []Matcher) *Rules {
		return &Rules{
			Implicit:   join(implicit, corruptionMods),
			Explicit:   explicit,
			Banned:     bannedCommon,
			Ignored:    joinPatterns(ignoredCommon, ignoredWeapon),
			Structural: Structure{Weapon: true},
		}
	}

	return map[itemtype.Category]*Rules{
		itemtype.Ring:   jewellery(join(jewelleryImplicit, globalDefenceMods, breachMods), jewelleryExplicit),
		itemtype.Amulet: jewellery(jewelleryImplicit, join(jewelleryExplicit, spellMods)),
		itemtype.Belt: {
			Implicit: join(lifeManaMods, globalEnergyShieldMods, globalDefenceMods, attributeMods, resistMods,
				stunMods, corruptionMods),
			Explicit: join(lifeManaMods, globalEnergyShieldMods, globalDefenceMods, attributeMods, resistMods,
				elementalDamageMods, recoveryMods, regenMods),
			Banned:  bannedCommon,
			Ignored: joinPatterns(ignoredCommon, ignoredFlask),
		},
		itemtype.Quiver: {
			Implicit: join(lifeManaMods, addedAttackDamageMods, quiverBowMods, critMods, projectileMods,
				elementalDamageMods, stunMods, corruptionMods),
			Explicit: join(lifeManaMods, attributeMods, resistMods, addedAttackDamageMods, quiverBowMods,
				critMods, attackSpeedMods, projectileMods, elementalDamageMods, leechMods, gainOnHitMods,
				accuracyMods, stunMods),
			Banned:  bannedCommon,
			Ignored: ignoredCommon,
		},

		itemtype.BodyArmour: armour(armourImplicit, armourExplicit, Structure{}),
		itemtype.Helmet:     armour(armourImplicit, join(armourExplicit, accuracyMods, utilityMods), Structure{}),
		itemtype.Gloves: armour(armourImplicit, join(armourExplicit, accuracyMods, attackSpeedMods,
			addedAttackDamageMods, leechMods, gainOnHitMods, utilityMods), Structure{}),
		itemtype.Boots: armour(join(armourImplicit, movementMods), join(armourExplicit, movementMods,
			utilityMods, avoidStatusMods), Structure{}),
		itemtype.Shield: armour(join(armourImplicit, blockMods), join(armourExplicit, blockMods, spellMods,
			elementalDamageMods, castSpeedMods), Structure{Block: true}),

		itemtype.Wand:    weapon(spellMods, join(casterExplicit, projectileMods)),
		itemtype.Staff:   weapon(staffBlockMods, casterExplicit),
		itemtype.Dagger:  weapon(critMods, casterExplicit),
		itemtype.Sceptre: weapon(elementalDamageMods, casterExplicit),
		itemtype.Claw:    weapon(join(gainOnHitMods, leechMods), weaponExplicit),
		itemtype.Bow:     weapon(join(critMods, projectileMods), join(weaponExplicit, projectileMods)),

		itemtype.OneHandSword: weapon(join(accuracyMods, globalAccuracyMods, critMods), weaponExplicit),
		itemtype.TwoHandSword: weapon(join(accuracyMods, globalAccuracyMods, critMods), weaponExplicit),
		itemtype.OneHandAxe:   weapon(nil, weaponExplicit),
		itemtype.TwoHandAxe:   weapon(nil, weaponExplicit),
		itemtype.OneHandMace:  weapon(stunMods, weaponExplicit),
		itemtype.TwoHandMace:  weapon(stunMods, weaponExplicit),
	}
}
