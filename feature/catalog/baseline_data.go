package catalog

import "h3sed/core/registry"

// baselineArtifacts lists wearable and side slot artifacts, excluding spell scrolls.
var baselineArtifacts = []string{
	"Ambassador's Sash",
	"Amulet of the Undertaker",
	"Angel Feather Arrows",
	"Angel Wings",
	"Armor of Wonder",
	"Arms of Legion",
	"Badge of Courage",
	"Bird of Perception",
	"Blackshard of the Dead Knight",
	"Boots of Levitation",
	"Boots of Polarity",
	"Boots of Speed",
	"Bow of Elven Cherrywood",
	"Bowstring of the Unicorn's Mane",
	"Breastplate of Brimstone",
	"Breastplate of Petrified Wood",
	"Buckler of the Gnoll King",
	"Cape of Conjuring",
	"Cape of Velocity",
	"Cards of Prophecy",
	"Celestial Necklace of Bliss",
	"Centaur's Axe",
	"Charm of Mana",
	"Clover of Fortune",
	"Collar of Conjuring",
	"Crest of Valor",
	"Crown of Dragontooth",
	"Crown of the Supreme Magi",
	"Dead Man's Boots",
	"Diplomat's Ring",
	"Dragon Scale Armor",
	"Dragon Scale Shield",
	"Dragon Wing Tabard",
	"Dragonbone Greaves",
	"Emblem of Cognizance",
	"Endless Bag of Gold",
	"Endless Purse of Gold",
	"Endless Sack of Gold",
	"Equestrian's Gloves",
	"Everflowing Crystal Cloak",
	"Everpouring Vial of Mercury",
	"Eversmoking Ring of Sulfur",
	"Garniture of Interference",
	"Glyph of Gallantry",
	"Golden Bow",
	"Greater Gnoll's Flail",
	"Head of Legion",
	"Hellstorm Helmet",
	"Helm of Chaos",
	"Helm of Heavenly Enlightenment",
	"Helm of the Alabaster Unicorn",
	"Hourglass of the Evil Hour",
	"Inexhaustible Cart of Lumber",
	"Inexhaustible Cart of Ore",
	"Ladybird of Luck",
	"Legs of Legion",
	"Lion's Shield of Courage",
	"Loins of Legion",
	"Mystic Orb of Mana",
	"Necklace of Dragonteeth",
	"Necklace of Ocean Guidance",
	"Necklace of Swiftness",
	"Ogre's Club of Havoc",
	"Orb of Driving Rain",
	"Orb of the Firmament",
	"Orb of Inhibition",
	"Orb of Silt",
	"Orb of Tempestuous Fire",
	"Orb of Vulnerability",
	"Pendant of Courage",
	"Pendant of Death",
	"Pendant of Dispassion",
	"Pendant of Free Will",
	"Pendant of Holiness",
	"Pendant of Life",
	"Pendant of Negativity",
	"Pendant of Second Sight",
	"Pendant of Total Recall",
	"Quiet Eye of the Dragon",
	"Recanter's Cloak",
	"Red Dragon Flame Tongue",
	"Rib Cage",
	"Ring of Conjuring",
	"Ring of Infinite Gems",
	"Ring of Life",
	"Ring of the Wayfarer",
	"Ring of Vitality",
	"Sandals of the Saint",
	"Scales of the Greater Basilisk",
	"Sea Captain's Hat",
	"Sentinel's Shield",
	"Shackles of War",
	"Shield of the Damned",
	"Shield of the Dwarven Lords",
	"Shield of the Yawning Dead",
	"Skull Helmet",
	"Speculum",
	"Spellbinder's Hat",
	"Sphere of Permanence",
	"Spirit of Oppression",
	"Spyglass",
	"Statesman's Medal",
	"Still Eye of the Dragon",
	"Stoic Watchman",
	"Surcoat of Counterpoise",
	"Sword of Hellfire",
	"Sword of Judgement",
	"Talisman of Mana",
	"Targ of the Rampaging Ogre",
	"Thunder Helmet",
	"Titan's Cuirass",
	"Titan's Gladius",
	"Tome of Air",
	"Tome of Earth",
	"Tome of Fire",
	"Tome of Water",
	"Torso of Legion",
	"Tunic of the Cyclops King",
	"Vampire's Cowl",
	"Vial of Lifeblood",
}

// baselineSpecialArtifacts lists war machines and the spellbook.
var baselineSpecialArtifacts = []string{
	"Ammo Cart",
	"Ballista",
	"Catapult",
	"First Aid Tent",
	"Spellbook",
}

// baselineCreatures lists creatures available for hero army slots.
var baselineCreatures = []string{
	"Air Elemental",
	"Ancient Behemoth",
	"Angel",
	"Arch Devil",
	"Arch Mage",
	"Archangel",
	"Archer",
	"Basilisk",
	"Battle Dwarf",
	"Behemoth",
	"Beholder",
	"Black Dragon",
	"Black Knight",
	"Bone Dragon",
	"Cavalier",
	"Centaur",
	"Centaur Captain",
	"Cerberus",
	"Champion",
	"Chaos hydra",
	"Crusader",
	"Cyclops",
	"Cyclops King",
	"Daemon",
	"Dread Knight",
	"Dendroid Guard",
	"Dendroid Soldier",
	"Devil",
	"Diamond Golem",
	"Dragonfly",
	"Dwarf",
	"Earth Elemental",
	"Efreet",
	"Efreet Sultan",
	"Evil Eye",
	"Familiar",
	"Fire Elemental",
	"Genie",
	"Ghost Dragon",
	"Giant",
	"Gnoll",
	"Gnoll Marauder",
	"Goblin",
	"Gog",
	"Gold Dragon",
	"Golem",
	"Gorgon",
	"Grand Elf",
	"Greater Basilisk",
	"Green Dragon",
	"Gremlin",
	"Griffin",
	"Halberdier",
	"Harpy",
	"Harpy Hag",
	"Hell Hound",
	"Hobgoblin",
	"Horned Demon",
	"Hydra",
	"Imp",
	"Infernal Troglodyte",
	"Iron Golem",
	"Lich",
	"Lizard Warrior",
	"Lizardman",
	"Mage",
	"Magog",
	"Manticore",
	"Marksman",
	"Master Genie",
	"Master Gremlin",
	"Medusa",
	"Medusa Queen",
	"Mighty Gorgon",
	"Minotaur",
	"Minotaur King",
	"Monk",
	"Naga",
	"Naga Queen",
	"Obsidian Gargoyle",
	"Ogre",
	"Ogre Mage",
	"Orc",
	"Orc Chieftain",
	"Pegasus",
	"Pikeman",
	"Pit Fiend",
	"Pit Lord",
	"Power Lich",
	"Red Dragon",
	"Roc",
	"Royal Griffin",
	"Scorpicore",
	"Serpent Fly",
	"Silver Pegasus",
	"Skeleton",
	"Skeleton Warrior",
	"Stone Gargoyle",
	"Stone Golem",
	"Swordsman",
	"Zealot",
	"Zombie",
	"Thunderbird",
	"Titan",
	"Troglodyte",
	"Unicorn",
	"Walking Dead",
	"Vampire",
	"Vampire Lord",
	"War Unicorn",
	"Water Elemental",
	"Wight",
	"Wolf Raider",
	"Wolf Rider",
	"Wood Elf",
	"Wraith",
	"Wyvern",
	"Wyvern Monarch",
}

// baselineSpells lists spells a hero can learn.
var baselineSpells = []string{
	"Air Shield",
	"Animate Dead",
	"Anti-Magic",
	"Armageddon",
	"Berserk",
	"Bless",
	"Blind",
	"Bloodlust",
	"Chain Lightning",
	"Clone",
	"Counterstrike",
	"Cure",
	"Curse",
	"Death Ripple",
	"Destroy Undead",
	"Dimension Door",
	"Disguise",
	"Dispel",
	"Disrupting Ray",
	"Earthquake",
	"Fire Shield",
	"Fire Wall",
	"Fireball",
	"Fly",
	"Force Field",
	"Forgetfulness",
	"Fortune",
	"Frenzy",
	"Frost Ring",
	"Haste",
	"Hypnotize",
	"Ice Bolt",
	"Implosion",
	"Inferno",
	"Land Mine",
	"Lightning Bolt",
	"Magic Arrow",
	"Magic Mirror",
	"Meteor Shower",
	"Mirth",
	"Misfortune",
	"Prayer",
	"Precision",
	"Protection from Air",
	"Protection from Earth",
	"Protection from Fire",
	"Protection from Water",
	"Quicksand",
	"Remove Obstacle",
	"Resurrection",
	"Sacrifice",
	"Scuttle Boat",
	"Shield",
	"Slayer",
	"Slow",
	"Sorrow",
	"Stone Skin",
	"Summon Air Elemental",
	"Summon Boat",
	"Summon Earth Elemental",
	"Summon Fire Elemental",
	"Summon Water Elemental",
	"Teleport",
	"Town Portal",
	"Water Walk",
	"Weakness",
	"View Air",
	"View Earth",
	"Visions",
}

// baselineSkills lists secondary skills in savefile order.
var baselineSkills = []string{
	"Pathfinding",
	"Archery",
	"Logistics",
	"Scouting",
	"Diplomacy",
	"Navigation",
	"Leadership",
	"Wisdom",
	"Mysticism",
	"Luck",
	"Ballistics",
	"Eagle Eye",
	"Necromancy",
	"Estates",
	"Fire Magic",
	"Air Magic",
	"Water Magic",
	"Earth Magic",
	"Scholar",
	"Tactics",
	"Artillery",
	"Learning",
	"Offense",
	"Armorer",
	"Intelligence",
	"Sorcery",
	"Resistance",
	"First Aid",
}

// baselineSkillLevels lists secondary skill levels in ascending order.
var baselineSkillLevels = []string{
	"Basic",
	"Advanced",
	"Expert",
}

// baselineArtifactIDs maps artifacts to their savefile codes.
var baselineArtifactIDs = map[string]registry.EntityID{
	"Ambassador's Sash":               0x44,
	"Amulet of the Undertaker":        0x36,
	"Angel Feather Arrows":            0x3E,
	"Angel Wings":                     0x48,
	"Armor of Wonder":                 0x1F,
	"Arms of Legion":                  0x79,
	"Badge of Courage":                0x31,
	"Bird of Perception":              0x3F,
	"Blackshard of the Dead Knight":   0x08,
	"Boots of Levitation":             0x5A,
	"Boots of Polarity":               0x3B,
	"Boots of Speed":                  0x62,
	"Bow of Elven Cherrywood":         0x3C,
	"Bowstring of the Unicorn's Mane": 0x3D,
	"Breastplate of Brimstone":        0x1D,
	"Breastplate of Petrified Wood":   0x19,
	"Buckler of the Gnoll King":       0x0F,
	"Cape of Conjuring":               0x4E,
	"Cape of Velocity":                0x63,
	"Cards of Prophecy":               0x2F,
	"Celestial Necklace of Bliss":     0x21,
	"Centaur's Axe":                   0x07,
	"Charm of Mana":                   0x49,
	"Clover of Fortune":               0x2E,
	"Collar of Conjuring":             0x4C,
	"Crest of Valor":                  0x32,
	"Crown of Dragontooth":            0x2C,
	"Crown of the Supreme Magi":       0x16,
	"Dead Man's Boots":                0x38,
	"Diplomat's Ring":                 0x43,
	"Dragon Scale Armor":              0x28,
	"Dragon Scale Shield":             0x27,
	"Dragon Wing Tabard":              0x2A,
	"Dragonbone Greaves":              0x29,
	"Emblem of Cognizance":            0x41,
	"Endless Bag of Gold":             0x74,
	"Endless Purse of Gold":           0x75,
	"Endless Sack of Gold":            0x73,
	"Equestrian's Gloves":             0x46,
	"Everflowing Crystal Cloak":       0x6D,
	"Everpouring Vial of Mercury":     0x6F,
	"Eversmoking Ring of Sulfur":      0x71,
	"Garniture of Interference":       0x39,
	"Glyph of Gallantry":              0x33,
	"Golden Bow":                      0x5B,
	"Greater Gnoll's Flail":           0x09,
	"Head of Legion":                  0x7A,
	"Hellstorm Helmet":                0x17,
	"Helm of Chaos":                   0x15,
	"Helm of Heavenly Enlightenment":  0x24,
	"Helm of the Alabaster Unicorn":   0x13,
	"Hourglass of the Evil Hour":      0x55,
	"Inexhaustible Cart of Lumber":    0x72,
	"Inexhaustible Cart of Ore":       0x70,
	"Ladybird of Luck":                0x30,
	"Legs of Legion":                  0x76,
	"Lion's Shield of Courage":        0x22,
	"Loins of Legion":                 0x77,
	"Mystic Orb of Mana":              0x4B,
	"Necklace of Dragonteeth":         0x2B,
	"Necklace of Ocean Guidance":      0x47,
	"Necklace of Swiftness":           0x61,
	"Ogre's Club of Havoc":            0x0A,
	"Orb of Driving Rain":             0x52,
	"Orb of the Firmament":            0x4F,
	"Orb of Inhibition":               0x7E,
	"Orb of Silt":                     0x50,
	"Orb of Tempestuous Fire":         0x51,
	"Orb of Vulnerability":            0x5D,
	"Pendant of Courage":              0x6C,
	"Pendant of Death":                0x68,
	"Pendant of Dispassion":           0x64,
	"Pendant of Free Will":            0x69,
	"Pendant of Holiness":             0x66,
	"Pendant of Life":                 0x67,
	"Pendant of Negativity":           0x6A,
	"Pendant of Second Sight":         0x65,
	"Pendant of Total Recall":         0x6B,
	"Quiet Eye of the Dragon":         0x25,
	"Recanter's Cloak":                0x53,
	"Red Dragon Flame Tongue":         0x26,
	"Rib Cage":                        0x1A,
	"Ring of Conjuring":               0x4D,
	"Ring of Infinite Gems":           0x6E,
	"Ring of Life":                    0x5F,
	"Ring of the Wayfarer":            0x45,
	"Ring of Vitality":                0x5E,
	"Sandals of the Saint":            0x20,
	"Scales of the Greater Basilisk":  0x1B,
	"Sea Captain's Hat":               0x7B,
	"Sentinel's Shield":               0x12,
	"Shackles of War":                 0x7D,
	"Shield of the Damned":            0x11,
	"Shield of the Dwarven Lords":     0x0D,
	"Shield of the Yawning Dead":      0x0E,
	"Skull Helmet":                    0x14,
	"Speculum":                        0x34,
	"Spellbinder's Hat":               0x7C,
	"Sphere of Permanence":            0x5C,
	"Spirit of Oppression":            0x54,
	"Spyglass":                        0x35,
	"Statesman's Medal":               0x42,
	"Still Eye of the Dragon":         0x2D,
	"Stoic Watchman":                  0x40,
	"Surcoat of Counterpoise":         0x3A,
	"Sword of Hellfire":               0x0B,
	"Sword of Judgement":              0x23,
	"Talisman of Mana":                0x4A,
	"Targ of the Rampaging Ogre":      0x10,
	"Thunder Helmet":                  0x18,
	"Titan's Cuirass":                 0x1E,
	"Titan's Gladius":                 0x0C,
	"Tome of Air":                     0x57,
	"Tome of Earth":                   0x59,
	"Tome of Fire":                    0x56,
	"Tome of Water":                   0x58,
	"Torso of Legion":                 0x78,
	"Tunic of the Cyclops King":       0x1C,
	"Vampire's Cowl":                  0x37,
	"Vial of Lifeblood":               0x60,
	"Ammo Cart":                       0x05,
	"Ballista":                        0x04,
	"Catapult":                        0x03,
	"First Aid Tent":                  0x06,
	"Spellbook":                       0x00,
	"The Grail":                       0x02,
}

// baselineCreatureIDs maps creatures to their savefile codes.
var baselineCreatureIDs = map[string]registry.EntityID{
	"Air Elemental":       0x70,
	"Ancient Behemoth":    0x61,
	"Angel":               0x0C,
	"Arch Devil":          0x37,
	"Arch Mage":           0x23,
	"Archangel":           0x0D,
	"Archer":              0x02,
	"Basilisk":            0x68,
	"Battle Dwarf":        0x11,
	"Behemoth":            0x60,
	"Beholder":            0x4A,
	"Black Dragon":        0x53,
	"Black Knight":        0x42,
	"Bone Dragon":         0x44,
	"Cavalier":            0x0A,
	"Centaur":             0x0E,
	"Centaur Captain":     0x0F,
	"Cerberus":            0x2F,
	"Champion":            0x0B,
	"Chaos hydra":         0x6F,
	"Crusader":            0x07,
	"Cyclops":             0x5E,
	"Cyclops King":        0x5F,
	"Daemon":              0x30,
	"Dread Knight":        0x43,
	"Dendroid Guard":      0x16,
	"Dendroid Soldier":    0x17,
	"Devil":               0x36,
	"Diamond Golem":       0x75,
	"Dragonfly":           0x67,
	"Dwarf":               0x10,
	"Earth Elemental":     0x71,
	"Efreet":              0x34,
	"Efreet Sultan":       0x35,
	"Evil Eye":            0x4B,
	"Familiar":            0x2B,
	"Fire Elemental":      0x72,
	"Genie":               0x24,
	"Ghost Dragon":        0x45,
	"Giant":               0x28,
	"Gnoll":               0x62,
	"Gnoll Marauder":      0x63,
	"Goblin":              0x54,
	"Gog":                 0x2C,
	"Gold Dragon":         0x1B,
	"Golem":               0x74,
	"Gorgon":              0x6A,
	"Grand Elf":           0x13,
	"Greater Basilisk":    0x69,
	"Green Dragon":        0x1A,
	"Gremlin":             0x1C,
	"Griffin":             0x04,
	"Halberdier":          0x01,
	"Harpy":               0x48,
	"Harpy Hag":           0x49,
	"Hell Hound":          0x2E,
	"Hobgoblin":           0x55,
	"Horned Demon":        0x31,
	"Hydra":               0x6E,
	"Imp":                 0x2A,
	"Infernal Troglodyte": 0x47,
	"Iron Golem":          0x21,
	"Lich":                0x40,
	"Lizard Warrior":      0x65,
	"Lizardman":           0x64,
	"Mage":                0x22,
	"Magog":               0x2D,
	"Manticore":           0x50,
	"Marksman":            0x03,
	"Master Genie":        0x25,
	"Master Gremlin":      0x1D,
	"Medusa":              0x4C,
	"Medusa Queen":        0x4D,
	"Mighty Gorgon":       0x6B,
	"Minotaur":            0x4E,
	"Minotaur King":       0x4F,
	"Monk":                0x08,
	"Naga":                0x26,
	"Naga Queen":          0x27,
	"Obsidian Gargoyle":   0x1F,
	"Ogre":                0x5A,
	"Ogre Mage":           0x5B,
	"Orc":                 0x58,
	"Orc Chieftain":       0x59,
	"Pegasus":             0x14,
	"Pikeman":             0x00,
	"Pit Fiend":           0x32,
	"Pit Lord":            0x33,
	"Power Lich":          0x41,
	"Red Dragon":          0x52,
	"Roc":                 0x5C,
	"Royal Griffin":       0x05,
	"Scorpicore":          0x51,
	"Serpent Fly":         0x66,
	"Silver Pegasus":      0x15,
	"Skeleton":            0x38,
	"Skeleton Warrior":    0x39,
	"Stone Gargoyle":      0x1E,
	"Stone Golem":         0x20,
	"Swordsman":           0x06,
	"Zealot":              0x09,
	"Zombie":              0x3B,
	"Thunderbird":         0x5D,
	"Titan":               0x29,
	"Troglodyte":          0x46,
	"Unicorn":             0x18,
	"Walking Dead":        0x3A,
	"Vampire":             0x3E,
	"Vampire Lord":        0x3F,
	"War Unicorn":         0x19,
	"Water Elemental":     0x73,
	"Wight":               0x3C,
	"Wolf Raider":         0x57,
	"Wolf Rider":          0x56,
	"Wood Elf":            0x12,
	"Wraith":              0x3D,
	"Wyvern":              0x6C,
	"Wyvern Monarch":      0x6D,
}

// baselineSpellIDs maps spells to their savefile codes.
var baselineSpellIDs = map[string]registry.EntityID{
	"Air Shield":             0x1C,
	"Animate Dead":           0x27,
	"Anti-Magic":             0x22,
	"Armageddon":             0x1A,
	"Berserk":                0x3B,
	"Bless":                  0x29,
	"Blind":                  0x3E,
	"Bloodlust":              0x2B,
	"Chain Lightning":        0x13,
	"Clone":                  0x41,
	"Counterstrike":          0x3A,
	"Cure":                   0x25,
	"Curse":                  0x2A,
	"Death Ripple":           0x18,
	"Destroy Undead":         0x19,
	"Dimension Door":         0x08,
	"Disguise":               0x04,
	"Dispel":                 0x23,
	"Disrupting Ray":         0x2F,
	"Earthquake":             0x0E,
	"Fire Shield":            0x1D,
	"Fire Wall":              0x0D,
	"Fireball":               0x15,
	"Fly":                    0x06,
	"Force Field":            0x0C,
	"Forgetfulness":          0x3D,
	"Fortune":                0x33,
	"Frenzy":                 0x38,
	"Frost Ring":             0x14,
	"Haste":                  0x35,
	"Hypnotize":              0x3C,
	"Ice Bolt":               0x10,
	"Implosion":              0x12,
	"Inferno":                0x16,
	"Land Mine":              0x0B,
	"Lightning Bolt":         0x11,
	"Magic Arrow":            0x0F,
	"Magic Mirror":           0x24,
	"Meteor Shower":          0x17,
	"Mirth":                  0x31,
	"Misfortune":             0x34,
	"Prayer":                 0x30,
	"Precision":              0x2C,
	"Protection from Air":    0x1E,
	"Protection from Earth":  0x21,
	"Protection from Fire":   0x1F,
	"Protection from Water":  0x20,
	"Quicksand":              0x0A,
	"Remove Obstacle":        0x40,
	"Resurrection":           0x26,
	"Sacrifice":              0x28,
	"Scuttle Boat":           0x01,
	"Shield":                 0x1B,
	"Slayer":                 0x37,
	"Slow":                   0x36,
	"Sorrow":                 0x32,
	"Stone Skin":             0x2E,
	"Summon Air Elemental":   0x45,
	"Summon Boat":            0x00,
	"Summon Earth Elemental": 0x43,
	"Summon Fire Elemental":  0x42,
	"Summon Water Elemental": 0x44,
	"Teleport":               0x3F,
	"Town Portal":            0x09,
	"Water Walk":             0x07,
	"Weakness":               0x2D,
	"View Air":               0x05,
	"View Earth":             0x03,
	"Visions":                0x02,
}

// baselineSkillIDs maps secondary skills to their savefile codes.
var baselineSkillIDs = map[string]registry.EntityID{
	"Pathfinding":  0x00,
	"Archery":      0x01,
	"Logistics":    0x02,
	"Scouting":     0x03,
	"Diplomacy":    0x04,
	"Navigation":   0x05,
	"Leadership":   0x06,
	"Wisdom":       0x07,
	"Mysticism":    0x08,
	"Luck":         0x09,
	"Ballistics":   0x0A,
	"Eagle Eye":    0x0B,
	"Necromancy":   0x0C,
	"Estates":      0x0D,
	"Fire Magic":   0x0E,
	"Air Magic":    0x0F,
	"Water Magic":  0x10,
	"Earth Magic":  0x11,
	"Scholar":      0x12,
	"Tactics":      0x13,
	"Artillery":    0x14,
	"Learning":     0x15,
	"Offense":      0x16,
	"Armorer":      0x17,
	"Intelligence": 0x18,
	"Sorcery":      0x19,
	"Resistance":   0x1A,
	"First Aid":    0x1B,
}

// baselineSkillLevelIDs maps skill levels to their savefile codes.
var baselineSkillLevelIDs = map[string]registry.EntityID{
	"Basic":    0x01,
	"Advanced": 0x02,
	"Expert":   0x03,
}

// baselineSlots lists artifact slot layouts, the first slot being the primary one.
var baselineSlots = SlotLayouts{
	"Ambassador's Sash":               {"cloak"},
	"Amulet of the Undertaker":        {"neck"},
	"Angel Feather Arrows":            {"side"},
	"Angel Wings":                     {"cloak"},
	"Armor of Wonder":                 {"armor"},
	"Arms of Legion":                  {"side"},
	"Badge of Courage":                {"side"},
	"Bird of Perception":              {"side"},
	"Blackshard of the Dead Knight":   {"weapon"},
	"Boots of Levitation":             {"feet"},
	"Boots of Polarity":               {"feet"},
	"Boots of Speed":                  {"feet"},
	"Bow of Elven Cherrywood":         {"side"},
	"Bowstring of the Unicorn's Mane": {"side"},
	"Breastplate of Brimstone":        {"armor"},
	"Breastplate of Petrified Wood":   {"armor"},
	"Buckler of the Gnoll King":       {"shield"},
	"Cape of Conjuring":               {"cloak"},
	"Cape of Velocity":                {"cloak"},
	"Cards of Prophecy":               {"side"},
	"Celestial Necklace of Bliss":     {"neck"},
	"Centaur's Axe":                   {"weapon"},
	"Charm of Mana":                   {"side"},
	"Clover of Fortune":               {"side"},
	"Collar of Conjuring":             {"neck"},
	"Crest of Valor":                  {"side"},
	"Crown of Dragontooth":            {"helm"},
	"Crown of the Supreme Magi":       {"helm"},
	"Dead Man's Boots":                {"feet"},
	"Diplomat's Ring":                 {"hand"},
	"Dragon Scale Armor":              {"armor"},
	"Dragon Scale Shield":             {"shield"},
	"Dragon Wing Tabard":              {"cloak"},
	"Dragonbone Greaves":              {"feet"},
	"Emblem of Cognizance":            {"side"},
	"Endless Bag of Gold":             {"side"},
	"Endless Purse of Gold":           {"side"},
	"Endless Sack of Gold":            {"side"},
	"Equestrian's Gloves":             {"hand"},
	"Everflowing Crystal Cloak":       {"cloak"},
	"Everpouring Vial of Mercury":     {"side"},
	"Eversmoking Ring of Sulfur":      {"hand"},
	"Garniture of Interference":       {"neck"},
	"Glyph of Gallantry":              {"side"},
	"Golden Bow":                      {"side"},
	"Greater Gnoll's Flail":           {"weapon"},
	"Head of Legion":                  {"side"},
	"Hellstorm Helmet":                {"helm"},
	"Helm of Chaos":                   {"helm"},
	"Helm of Heavenly Enlightenment":  {"helm"},
	"Helm of the Alabaster Unicorn":   {"helm"},
	"Hourglass of the Evil Hour":      {"side"},
	"Inexhaustible Cart of Lumber":    {"side"},
	"Inexhaustible Cart of Ore":       {"side"},
	"Ladybird of Luck":                {"side"},
	"Legs of Legion":                  {"side"},
	"Lion's Shield of Courage":        {"shield"},
	"Loins of Legion":                 {"side"},
	"Mystic Orb of Mana":              {"side"},
	"Necklace of Dragonteeth":         {"neck"},
	"Necklace of Ocean Guidance":      {"neck"},
	"Necklace of Swiftness":           {"neck"},
	"Ogre's Club of Havoc":            {"weapon"},
	"Orb of Driving Rain":             {"side"},
	"Orb of the Firmament":            {"side"},
	"Orb of Inhibition":               {"side"},
	"Orb of Silt":                     {"side"},
	"Orb of Tempestuous Fire":         {"side"},
	"Orb of Vulnerability":            {"side"},
	"Pendant of Courage":              {"neck"},
	"Pendant of Death":                {"neck"},
	"Pendant of Dispassion":           {"neck"},
	"Pendant of Free Will":            {"neck"},
	"Pendant of Holiness":             {"neck"},
	"Pendant of Life":                 {"neck"},
	"Pendant of Negativity":           {"neck"},
	"Pendant of Second Sight":         {"neck"},
	"Pendant of Total Recall":         {"neck"},
	"Quiet Eye of the Dragon":         {"hand"},
	"Recanter's Cloak":                {"cloak"},
	"Red Dragon Flame Tongue":         {"weapon"},
	"Rib Cage":                        {"armor"},
	"Ring of Conjuring":               {"hand"},
	"Ring of Infinite Gems":           {"hand"},
	"Ring of Life":                    {"hand"},
	"Ring of the Wayfarer":            {"hand"},
	"Ring of Vitality":                {"hand"},
	"Sandals of the Saint":            {"feet"},
	"Scales of the Greater Basilisk":  {"armor"},
	"Sea Captain's Hat":               {"helm"},
	"Sentinel's Shield":               {"shield"},
	"Shackles of War":                 {"side"},
	"Shield of the Damned":            {"shield"},
	"Shield of the Dwarven Lords":     {"shield"},
	"Shield of the Yawning Dead":      {"shield"},
	"Skull Helmet":                    {"helm"},
	"Speculum":                        {"side"},
	"Spellbinder's Hat":               {"helm"},
	"Sphere of Permanence":            {"side"},
	"Spirit of Oppression":            {"side"},
	"Spyglass":                        {"side"},
	"Statesman's Medal":               {"neck"},
	"Still Eye of the Dragon":         {"hand"},
	"Stoic Watchman":                  {"side"},
	"Surcoat of Counterpoise":         {"cloak"},
	"Sword of Hellfire":               {"weapon"},
	"Sword of Judgement":              {"weapon"},
	"Talisman of Mana":                {"side"},
	"Targ of the Rampaging Ogre":      {"shield"},
	"The Grail":                       {"inventory"},
	"Thunder Helmet":                  {"helm"},
	"Titan's Cuirass":                 {"armor"},
	"Titan's Gladius":                 {"weapon"},
	"Tome of Air":                     {"side"},
	"Tome of Earth":                   {"side"},
	"Tome of Fire":                    {"side"},
	"Tome of Water":                   {"side"},
	"Torso of Legion":                 {"side"},
	"Tunic of the Cyclops King":       {"armor"},
	"Vampire's Cowl":                  {"cloak"},
	"Vial of Lifeblood":               {"side"},
}

// baselineArtifactSpells lists spells that artifacts make available to the hero.
var baselineArtifactSpells = SpellGrants{
	"Spellbinder's Hat": {
		"Dimension Door", "Fly", "Implosion", "Sacrifice", "Summon Air Elemental",
		"Summon Earth Elemental", "Summon Fire Elemental", "Summon Water Elemental",
	},
	"Tome of Air": {
		"Air Shield", "Chain Lightning", "Counterstrike", "Destroy Undead", "Dimension Door",
		"Disguise", "Disrupting Ray", "Fly", "Fortune", "Haste", "Hypnotize", "Lightning Bolt",
		"Magic Arrow", "Magic Mirror", "Precision", "Protection from Air", "Summon Air Elemental",
		"View Air", "Visions",
	},
	"Tome of Earth": {
		"Animate Dead", "Anti-Magic", "Death Ripple", "Earthquake", "Force Field", "Implosion",
		"Magic Arrow", "Meteor Shower", "Protection from Earth", "Quicksand", "Resurrection",
		"Shield", "Slow", "Sorrow", "Stone Skin", "Summon Earth Elemental", "Town Portal",
		"View Earth", "Visions",
	},
	"Tome of Fire": {
		"Armageddon", "Berserk", "Blind", "Bloodlust", "Curse", "Fire Shield", "Fire Wall",
		"Fireball", "Frenzy", "Inferno", "Land Mine", "Magic Arrow", "Misfortune",
		"Protection from Fire", "Sacrifice", "Slayer", "Summon Fire Elemental", "Visions",
	},
	"Tome of Water": {
		"Bless", "Clone", "Cure", "Dispel", "Forgetfulness", "Frost Ring", "Ice Bolt", "Magic Arrow",
		"Mirth", "Prayer", "Protection from Water", "Remove Obstacle", "Scuttle Boat", "Summon Boat",
		"Summon Water Elemental", "Teleport", "Visions", "Water Walk", "Weakness",
	},
}

// baselineStats lists primary attribute modifiers given by artifacts.
var baselineStats = StatModifiers{
	"Crown of Dragontooth":           {Power: 4, Knowledge: 4},
	"Crown of the Supreme Magi":      {Knowledge: 4},
	"Hellstorm Helmet":               {Knowledge: 5},
	"Helm of Chaos":                  {Knowledge: 3},
	"Helm of Heavenly Enlightenment": {Attack: 6, Defense: 6, Power: 6, Knowledge: 6},
	"Helm of the Alabaster Unicorn":  {Knowledge: 1},
	"Skull Helmet":                   {Knowledge: 2},
	"Thunder Helmet":                 {Power: -2, Knowledge: 10},
	"Celestial Necklace of Bliss":    {Attack: 3, Defense: 3, Power: 3, Knowledge: 3},
	"Necklace of Dragonteeth":        {Power: 3, Knowledge: 3},
	"Blackshard of the Dead Knight":  {Attack: 3},
	"Centaur's Axe":                  {Attack: 2},
	"Greater Gnoll's Flail":          {Attack: 4},
	"Ogre's Club of Havoc":           {Attack: 5},
	"Red Dragon Flame Tongue":        {Attack: 2, Defense: 2},
	"Sword of Hellfire":              {Attack: 6},
	"Sword of Judgement":             {Attack: 5, Defense: 5, Power: 5, Knowledge: 5},
	"Titan's Gladius":                {Attack: 12, Defense: -3},
	"Buckler of the Gnoll King":      {Defense: 4},
	"Dragon Scale Shield":            {Power: 3, Knowledge: 3},
	"Lion's Shield of Courage":       {Attack: 4, Defense: 4, Power: 4, Knowledge: 4},
	"Sentinel's Shield":              {Attack: -3, Defense: 12},
	"Shield of the Damned":           {Defense: 6},
	"Shield of the Dwarven Lords":    {Defense: 2},
	"Shield of the Yawning Dead":     {Defense: 3},
	"Targ of the Rampaging Ogre":     {Defense: 5},
	"Armor of Wonder":                {Attack: 1, Defense: 1, Power: 1, Knowledge: 1},
	"Rib Cage":                       {Power: 2},
	"Breastplate of Brimstone":       {Power: 5},
	"Breastplate of Petrified Wood":  {Power: 1},
	"Dragon Scale Armor":             {Attack: 4, Defense: 4},
	"Scales of the Greater Basilisk": {Power: 3},
	"Titan's Cuirass":                {Power: 10, Knowledge: -2},
	"Tunic of the Cyclops King":      {Power: 4},
	"Quiet Eye of the Dragon":        {Attack: 1, Defense: 1},
	"Dragonbone Greaves":             {Power: 1, Knowledge: 1},
	"Sandals of the Saint":           {Attack: 2, Defense: 2, Power: 2, Knowledge: 2},
}

// baselineValuables ranks artifacts by importance, higher is more valuable.
var baselineValuables = ValuableRanks{
	"Torso of Legion": 1,
	"Head of Legion":  1,
	"Legs of Legion":  1,
	"Loins of Legion": 1,
	"Arms of Legion":  1,

	"Endless Bag of Gold":          1,
	"Endless Purse of Gold":        1,
	"Endless Sack of Gold":         1,
	"Inexhaustible Cart of Lumber": 1,
	"Inexhaustible Cart of Ore":    1,
	"Everpouring Vial of Mercury":  1,
	"Everflowing Crystal Cloak":    1,
	"Eversmoking Ring of Sulfur":   1,
	"Ring of Infinite Gems":        1,
}

// baselineCapacity is the number of artifacts each slot kind can hold.
var baselineCapacity = SlotCapacity{
	"helm":   1,
	"armor":  1,
	"weapon": 1,
	"shield": 1,
	"neck":   1,
	"hand":   2,
	"feet":   1,
	"cloak":  1,
	"side":   5,
}
