package affix

import "regexp"

// Modifier groups shared between category tables.

var attributeMods = []Matcher{
	sum(`([+-]\d+) to Strength`, "Strength"),
	sum(`([+-]\d+) to Dexterity`, "Dexterity"),
	sum(`([+-]\d+) to Intelligence`, "Intelligence"),
	sum(`([+-]\d+) to Strength and Dexterity`, "Strength", "Dexterity"),
	sum(`([+-]\d+) to Strength and Intelligence`, "Strength", "Intelligence"),
	sum(`([+-]\d+) to Dexterity and Intelligence`, "Dexterity", "Intelligence"),
	sum(`([+-]\d+) to all Attributes`, "Strength", "Dexterity", "Intelligence"),
}

var resistMods = []Matcher{
	sum(`([+-]\d+)% to Fire Resistance`, "FireResist"),
	sum(`([+-]\d+)% to Cold Resistance`, "ColdResist"),
	sum(`([+-]\d+)% to Lightning Resistance`, "LightningResist"),
	sum(`([+-]\d+)% to Chaos Resistance`, "ChaosResist"),
	sum(`([+-]\d+)% to Fire and Cold Resistances`, "FireResist", "ColdResist"),
	sum(`([+-]\d+)% to Fire and Lightning Resistances`, "FireResist", "LightningResist"),
	sum(`([+-]\d+)% to Cold and Lightning Resistances`, "ColdResist", "LightningResist"),
	sum(`([+-]\d+)% to all Elemental Resistances`, "FireResist", "ColdResist", "LightningResist"),
}

var lifeManaMods = []Matcher{
	sum(`([+-]\d+) to maximum Life`, "Life"),
	sum(`([+-]\d+) to maximum Mana`, "Mana"),
	sum(`(\d+)% increased maximum Life`, "IncreasedLife"),
	sum(`(\d+)% increased maximum Mana`, "IncreasedMana"),
}

// Energy shield on jewellery and belts is global.
var globalEnergyShieldMods = []Matcher{
	sum(`\+(\d+) to maximum Energy Shield`, "EnergyShield"),
	sum(`(\d+)% increased maximum Energy Shield`, "IncreasedMaxEnergyShield"),
}

var globalDefenceMods = []Matcher{
	sum(`\+(\d+) to Armour`, "Armour"),
	sum(`\+(\d+) to Evasion Rating`, "Evasion"),
	sum(`\+(\d+) to Energy Shield`, "EnergyShield"),
}

// Defence modifiers on armour pieces are local to the item.
var localDefenceMods = []Matcher{
	sum(`\+(\d+) to Armour`, "AddedArmour"),
	sum(`\+(\d+) to Evasion Rating`, "AddedEvasion"),
	sum(`\+(\d+) to maximum Energy Shield`, "AddedEnergyShield"),
	sum(`(\d+)% increased Armour`, "IncreasedArmour"),
	sum(`(\d+)% increased Evasion Rating`, "IncreasedEvasion"),
	sum(`(\d+)% increased Energy Shield`, "IncreasedEnergyShield"),
	sum(`(\d+)% increased Armour and Evasion`, "IncreasedArmour", "IncreasedEvasion"),
	sum(`(\d+)% increased Armour and Energy Shield`, "IncreasedArmour", "IncreasedEnergyShield"),
	sum(`(\d+)% increased Evasion and Energy Shield`, "IncreasedEvasion", "IncreasedEnergyShield"),
	sum(`(\d+)% increased Armour, Evasion and Energy Shield`, "IncreasedArmour", "IncreasedEvasion", "IncreasedEnergyShield"),
}

var regenMods = []Matcher{
	fixed(`(\d+(?:\.\d+)?) Life Regenerated per second`, 10, "LifeRegen"),
	fixed(`Regenerate (\d+(?:\.\d+)?) Life per second`, 10, "LifeRegen"),
	fixed(`(\d+(?:\.\d+)?)% of Life Regenerated per second`, 100, "LifeRegenPercent"),
	sum(`(\d+)% increased Mana Regeneration Rate`, "ManaRegen"),
}

var leechMods = []Matcher{
	fixed(`(\d+(?:\.\d+)?)% of Physical Attack Damage Leeched as Life`, 100, "LifeLeech"),
	fixed(`(\d+(?:\.\d+)?)% of Physical Attack Damage Leeched as Mana`, 100, "ManaLeech"),
}

var gainOnHitMods = []Matcher{
	sum(`\+(\d+) Life gained for each Enemy hit by your Attacks`, "LifeGainOnHit"),
	sum(`\+(\d+) Life gained for each Enemy hit by Attacks`, "LifeGainOnHit"),
	sum(`\+(\d+) Life gained on Kill`, "LifeGainOnKill"),
	sum(`\+(\d+) Mana gained for each Enemy hit by your Attacks`, "ManaGainOnHit"),
	sum(`\+(\d+) Mana gained on Kill`, "ManaGainOnKill"),
}

var avoidStatusMods = []Matcher{
	sum(`(\d+)% chance to Avoid being Ignited`, "AvoidIgnite"),
	sum(`(\d+)% chance to Avoid being Chilled`, "AvoidChill"),
	sum(`(\d+)% chance to Avoid being Frozen`, "AvoidFreeze"),
	sum(`(\d+)% chance to Avoid being Shocked`, "AvoidShock"),
	sum(`(\d+)% chance to Avoid Elemental Status Ailments`, "AvoidIgnite", "AvoidChill", "AvoidFreeze", "AvoidShock"),
}

var elementalDamageMods = []Matcher{
	sum(`(\d+)% increased Elemental Damage`, "IncreasedEleDamage"),
	sum(`(\d+)% increased Fire Damage`, "IncreasedFireDamage"),
	sum(`(\d+)% increased Cold Damage`, "IncreasedColdDamage"),
	sum(`(\d+)% increased Lightning Damage`, "IncreasedLightningDamage"),
	sum(`(\d+)% increased Elemental Damage with Weapons`, "IncreasedWeaponEleDamage"),
	sum(`(\d+)% increased Elemental Damage with Attack Skills`, "IncreasedWeaponEleDamage"),
}

var addedAttackDamageMods = []Matcher{
	span(`Adds (\d+) to (\d+) Physical Damage to Attacks`, "AddedPhysAttackDamage"),
	span(`Adds (\d+) to (\d+) Fire Damage to Attacks`, "AddedFireAttackDamage"),
	span(`Adds (\d+) to (\d+) Cold Damage to Attacks`, "AddedColdAttackDamage"),
	span(`Adds (\d+) to (\d+) Lightning Damage to Attacks`, "AddedLightningAttackDamage"),
	span(`Adds (\d+) to (\d+) Chaos Damage to Attacks`, "AddedChaosAttackDamage"),
}

var critMods = []Matcher{
	sum(`(\d+)% increased Global Critical Strike Chance`, "CritChance"),
	sum(`\+(\d+)% to Global Critical Strike Multiplier`, "CritMultiplier"),
}

var attackSpeedMods = []Matcher{
	sum(`(\d+)% increased Attack Speed`, "AttackSpeed"),
}

var castSpeedMods = []Matcher{
	sum(`(\d+)% increased Cast Speed`, "CastSpeed"),
}

var spellMods = []Matcher{
	sum(`(\d+)% increased Spell Damage`, "SpellDamage"),
	sum(`(\d+)% increased Critical Strike Chance for Spells`, "SpellCritChance"),
}

var utilityMods = []Matcher{
	sum(`(\d+)% increased Rarity of Items found`, "ItemRarity"),
	sum(`(\d+)% increased Quantity of Items found`, "ItemQuantity"),
	sum(`(\d+)% increased Light Radius`, "LightRadius"),
	sum(`(\d+)% of Damage taken gained as Mana when Hit`, "DamageToMana"),
}

var accuracyMods = []Matcher{
	sum(`\+(\d+) to Accuracy Rating`, "Accuracy"),
}

var recoveryMods = []Matcher{
	sum(`(\d+)% increased Stun and Block Recovery`, "StunRecovery"),
	sum(`Reflects (\d+) Physical Damage to Melee Attackers`, "PhysReflect"),
}

var movementMods = []Matcher{
	sum(`(\d+)% increased Movement Speed`, "MovementSpeed"),
}

var stunMods = []Matcher{
	sum(`(\d+)% reduced Enemy Stun Threshold`, "StunThreshold"),
	sum(`(\d+)% increased Stun Duration on Enemies`, "StunDuration"),
}

var socketedGemMods = []Matcher{
	sum(`\+(\d+) to Level of Socketed Gems`, "SocketedGemLevel"),
	sum(`\+(\d+) to Level of Socketed Vaal Gems`, "SocketedVaalGemLevel"),
	sum(`\+(\d+) to Level of Socketed (?:Fire|Cold|Lightning|Chaos) Gems`, "SocketedElementGemLevel"),
	sum(`\+(\d+) to Level of Socketed Melee Gems`, "SocketedMeleeGemLevel"),
	sum(`\+(\d+) to Level of Socketed Bow Gems`, "SocketedBowGemLevel"),
	sum(`Socketed Skill Gems get a (\d+)% Mana Multiplier`, "ManaMultiplier"),
}

var maxResistMods = []Matcher{
	sum(`\+(\d+)% to maximum Fire Resistance`, "MaxFireResist"),
	sum(`\+(\d+)% to maximum Cold Resistance`, "MaxColdResist"),
	sum(`\+(\d+)% to maximum Lightning Resistance`, "MaxLightningResist"),
	sum(`\+(\d+)% to maximum Chaos Resistance`, "MaxChaosResist"),
	sum(`\+(\d+)% to all maximum Resistances`, "MaxFireResist", "MaxColdResist", "MaxLightningResist", "MaxChaosResist"),
}

// Staves carry block as an implicit line; shields read it from properties.
var staffBlockMods = []Matcher{
	sum(`(\d+)% Chance to Block`, "Block"),
}

var blockMods = []Matcher{
	sum(`(\d+)% increased Chance to Block`, "IncreasedBlock"),
	sum(`(\d+)% Chance to Block Spell Damage`, "SpellBlock"),
	sum(`\+(\d+)% Chance to Block Spell Damage`, "SpellBlock"),
}

var projectileMods = []Matcher{
	sum(`(\d+)% increased Projectile Speed`, "ProjectileSpeed"),
	sum(`(\d+)% increased Projectile Damage`, "ProjectileDamage"),
}

// Weapon modifiers that only affect the weapon they sit on.
var localWeaponMods = []Matcher{
	span(`Adds (\d+) to (\d+) Physical Damage`, "AddedPhysDamageLocal"),
	span(`Adds (\d+) to (\d+) Fire Damage`, "AddedFireDamageLocal"),
	span(`Adds (\d+) to (\d+) Cold Damage`, "AddedColdDamageLocal"),
	span(`Adds (\d+) to (\d+) Lightning Damage`, "AddedLightningDamageLocal"),
	span(`Adds (\d+) to (\d+) Chaos Damage`, "AddedChaosDamageLocal"),
	sum(`(\d+)% increased Physical Damage`, "IncreasedPhysDamage"),
	sum(`(\d+)% increased Attack Speed`, "AttackSpeed"),
	sum(`(\d+)% increased Critical Strike Chance`, "LocalCritChance"),
	sum(`\+(\d+) to Accuracy Rating`, "Accuracy"),
	sum(`(\d+)% increased Global Accuracy Rating`, "IncreasedAccuracy"),
}

var spellWeaponMods = []Matcher{
	span(`Adds (\d+) to (\d+) Fire Damage to Spells`, "AddedFireSpellDamage"),
	span(`Adds (\d+) to (\d+) Cold Damage to Spells`, "AddedColdSpellDamage"),
	span(`Adds (\d+) to (\d+) Lightning Damage to Spells`, "AddedLightningSpellDamage"),
}

var breachMods = []Matcher{
	flag(`Properties are doubled while in a Breach`, "DoubledInBreach"),
}

var knockbackMods = []Matcher{
	flag(`Cannot be Knocked Back`, "CannotBeKnockedBack"),
}

// Corruption implicits any item can carry.
var corruptionMods = []Matcher{
	grantedSkill(),
}

// Modifiers from generation sources the index excludes.
var bannedCommon = []*regexp.Regexp{
	line(`Has \d+ Abyssal Sockets?`),
	line(`Veiled (?:Prefix|Suffix)`),
	line(`Socketed Gems are Supported by Level \d+ .+`),
}

var ignoredCommon = []*regexp.Regexp{
	line(`Item sells for much more to vendors`),
	line(`(?:Left|Right) ring slot: .+`),
}

var ignoredFlask = []*regexp.Regexp{
	line(`.*\bFlasks?\b.*`),
}

var ignoredWeapon = []*regexp.Regexp{
	line(`\+\d+ to Weapon [Rr]ange`),
}

func join(groups ...[]Matcher) []Matcher {
	var out []Matcher
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func joinPatterns(groups ...[]*regexp.Regexp) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
