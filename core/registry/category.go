package registry

import (
	"fmt"
	"strings"
)

// Category is one class of hero data with its own code namespace.
type Category int

const (
	CategoryArtifacts Category = iota
	CategoryCreatures
	CategorySpells
	CategorySkills
	CategoryArmy
	CategoryInventory
	CategoryDevices
)

var categoryNames = [...]string{
	CategoryArtifacts: "artifacts",
	CategoryCreatures: "creatures",
	CategorySpells:    "spells",
	CategorySkills:    "skills",
	CategoryArmy:      "army",
	CategoryInventory: "inventory",
	CategoryDevices:   "devices",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

// String returns the lowercase category name.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

// ParseCategory returns the category with the given name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Subcategory narrows a category table. Besides the structured table names below,
// slot kinds ("helm", "side", ...) and artifact names are used as subcategories.
type Subcategory string

const (
	// SubNone addresses the main table of a category.
	SubNone Subcategory = ""
	// SubIDs addresses the name to savefile code table of a category.
	SubIDs Subcategory = "ids"
	// SubSlots addresses artifact slot layouts.
	SubSlots Subcategory = "slots"
	// SubStats addresses artifact primary attribute modifiers.
	SubStats Subcategory = "stats"
	// SubSpells addresses spells granted by artifacts.
	SubSpells Subcategory = "spells"
	// SubCombos addresses combination artifacts and their components.
	SubCombos Subcategory = "combos"
	// SubValuables addresses artifact importance ranks.
	SubValuables Subcategory = "valuables"
	// SubCapacity addresses the number of artifacts each slot kind holds.
	SubCapacity Subcategory = "capacity"
	// SubLevels addresses secondary skill levels.
	SubLevels Subcategory = "levels"
	// SubLevelIDs addresses secondary skill level codes.
	SubLevelIDs Subcategory = "level_ids"
	// SubInventory addresses artifacts that can be kept in the hero backpack.
	SubInventory Subcategory = "inventory"
	// SubScroll addresses spell scroll artifacts.
	SubScroll Subcategory = "scroll"
	// SubBannable addresses spells that can be banned on a map.
	SubBannable Subcategory = "bannable"
)
