package catalog

import (
	"errors"
	"fmt"

	"h3sed/core/registry"
)

const (
	// ScrollPrefix starts the name of every spell scroll artifact.
	ScrollPrefix = "Spell Scroll: "

	grailArtifact = "The Grail"
	spellbook     = "Spellbook"
)

// ScrollArtifactID is the artifact code shared by all spell scrolls. It only ever
// appears in the lower 32 bits of a scroll code, so it is not an artifact name of
// its own: the scroll of spell 0x00 packs to this very code.
const ScrollArtifactID registry.EntityID = 0x01

// Catalog is the complete entity data of one game version.
type Catalog struct {
	// Artifacts lists wearable artifacts, spell scrolls included.
	Artifacts []string `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`

	// ScrollArtifacts lists spell scroll artifacts, one per learnable spell.
	ScrollArtifacts []string `json:"scroll_artifacts,omitempty" yaml:"scroll_artifacts,omitempty"`

	// SpecialArtifacts lists war machines and the spellbook.
	SpecialArtifacts []string `json:"special_artifacts,omitempty" yaml:"special_artifacts,omitempty"`

	// Creatures lists creatures available for army slots.
	Creatures []string `json:"creatures,omitempty" yaml:"creatures,omitempty"`

	// Spells lists learnable spells.
	Spells []string `json:"spells,omitempty" yaml:"spells,omitempty"`

	// BannableSpells lists spells that maps may ban.
	BannableSpells []string `json:"bannable_spells,omitempty" yaml:"bannable_spells,omitempty"`

	// Skills lists secondary skills in savefile order.
	Skills []string `json:"skills,omitempty" yaml:"skills,omitempty"`

	// SkillLevels lists secondary skill levels in ascending order.
	SkillLevels []string `json:"skill_levels,omitempty" yaml:"skill_levels,omitempty"`

	// IDs maps names to savefile codes, one namespace per category.
	IDs map[registry.Category]map[string]registry.EntityID `json:"-" yaml:"-"`

	// SkillLevelIDs maps skill levels to savefile codes.
	SkillLevelIDs map[string]registry.EntityID `json:"skill_level_ids,omitempty" yaml:"skill_level_ids,omitempty"`

	Slots          SlotLayouts   `json:"slots,omitempty" yaml:"slots,omitempty"`
	Stats          StatModifiers `json:"stats,omitempty" yaml:"stats,omitempty"`
	ArtifactSpells SpellGrants   `json:"artifact_spells,omitempty" yaml:"artifact_spells,omitempty"`
	Combos         ComboSets     `json:"combos,omitempty" yaml:"combos,omitempty"`
	Valuables      ValuableRanks `json:"valuables,omitempty" yaml:"valuables,omitempty"`
	Capacity       SlotCapacity  `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// Baseline returns a fresh copy of the base game data. Spell scroll artifacts are
// derived from the spell list: each sits in a side slot, grants its spell and
// carries the spell code in the upper 32 bits of its own code.
func Baseline() *Catalog {
	c := &Catalog{
		Artifacts:        cloneList(baselineArtifacts),
		SpecialArtifacts: cloneList(baselineSpecialArtifacts),
		Creatures:        cloneList(baselineCreatures),
		Spells:           cloneList(baselineSpells),
		BannableSpells:   []string{},
		Skills:           cloneList(baselineSkills),
		SkillLevels:      cloneList(baselineSkillLevels),
		IDs: map[registry.Category]map[string]registry.EntityID{
			registry.CategoryArtifacts: cloneMap(baselineArtifactIDs),
			registry.CategoryCreatures: cloneMap(baselineCreatureIDs),
			registry.CategorySpells:    cloneMap(baselineSpellIDs),
			registry.CategorySkills:    cloneMap(baselineSkillIDs),
		},
		SkillLevelIDs:  cloneMap(baselineSkillLevelIDs),
		Slots:          cloneListMap(baselineSlots),
		Stats:          cloneMap(baselineStats),
		ArtifactSpells: cloneListMap(baselineArtifactSpells),
		Combos:         ComboSets{},
		Valuables:      cloneMap(baselineValuables),
		Capacity:       cloneMap(baselineCapacity),
	}

	artifactIDs := c.IDs[registry.CategoryArtifacts]
	spellIDs := c.IDs[registry.CategorySpells]
	for _, spell := range c.Spells {
		name := ScrollPrefix + spell
		c.Artifacts = append(c.Artifacts, name)
		c.ScrollArtifacts = append(c.ScrollArtifacts, name)
		c.Slots[name] = []string{"side"}
		c.ArtifactSpells[name] = []string{spell}
		artifactIDs[name] = ScrollID(spellIDs[spell], ScrollArtifactID)
	}
	return c
}

// ScrollID packs a spell code into the code of its spell scroll artifact.
func ScrollID(spell, scroll registry.EntityID) registry.EntityID {
	return spell<<32 + scroll
}

// Extend returns a new catalog holding c overlaid with overlay. Lists keep the
// order of c and gain the overlay entries they lack; maps take overlay values per
// key. Neither input is modified.
func (c *Catalog) Extend(overlay *Catalog) *Catalog {
	out := c.clone()
	if overlay == nil {
		return out
	}
	out.Artifacts = unionList(out.Artifacts, overlay.Artifacts)
	out.ScrollArtifacts = unionList(out.ScrollArtifacts, overlay.ScrollArtifacts)
	out.SpecialArtifacts = unionList(out.SpecialArtifacts, overlay.SpecialArtifacts)
	out.Creatures = unionList(out.Creatures, overlay.Creatures)
	out.Spells = unionList(out.Spells, overlay.Spells)
	out.BannableSpells = unionList(out.BannableSpells, overlay.BannableSpells)
	out.Skills = unionList(out.Skills, overlay.Skills)
	out.SkillLevels = unionList(out.SkillLevels, overlay.SkillLevels)

	if out.IDs == nil {
		out.IDs = make(map[registry.Category]map[string]registry.EntityID)
	}
	for category, ids := range overlay.IDs {
		out.IDs[category] = overrideMap(out.IDs[category], ids)
	}
	out.SkillLevelIDs = overrideMap(out.SkillLevelIDs, overlay.SkillLevelIDs)
	out.Slots = overrideMap(out.Slots, cloneListMap(overlay.Slots))
	out.Stats = overrideMap(out.Stats, overlay.Stats)
	out.ArtifactSpells = overrideMap(out.ArtifactSpells, cloneListMap(overlay.ArtifactSpells))
	out.Combos = overrideMap(out.Combos, cloneListMap(overlay.Combos))
	out.Valuables = overrideMap(out.Valuables, overlay.Valuables)
	out.Capacity = overrideMap(out.Capacity, overlay.Capacity)
	return out
}

// Validate checks the catalog for internal consistency and returns every problem
// found, joined into one error.
func (c *Catalog) Validate() error {
	var errs []error
	known := c.knownArtifacts()

	for _, name := range sortedKeys(c.Slots) {
		if !known[name] {
			errs = append(errs, fmt.Errorf("slots: unknown artifact %q", name))
		}
		slots := c.Slots[name]
		if len(slots) == 0 {
			errs = append(errs, fmt.Errorf("slots: artifact %q has an empty layout", name))
		}
		for _, slot := range slots {
			if slot == "" {
				errs = append(errs, fmt.Errorf("slots: artifact %q has an empty slot kind", name))
			}
		}
	}
	for _, name := range c.Artifacts {
		if _, ok := c.Slots[name]; !ok {
			errs = append(errs, fmt.Errorf("slots: artifact %q has no layout", name))
		}
	}
	for _, name := range sortedKeys(c.Combos) {
		if !known[name] {
			errs = append(errs, fmt.Errorf("combos: unknown combination artifact %q", name))
		}
		if len(c.Combos[name]) == 0 {
			errs = append(errs, fmt.Errorf("combos: %q has no components", name))
		}
		for _, part := range c.Combos[name] {
			if !known[part] {
				errs = append(errs, fmt.Errorf("combos: %q lists unknown component %q", name, part))
			}
		}
	}
	for _, name := range sortedKeys(c.Stats) {
		if !known[name] {
			errs = append(errs, fmt.Errorf("stats: unknown artifact %q", name))
		}
	}
	for _, name := range sortedKeys(c.Valuables) {
		if !known[name] {
			errs = append(errs, fmt.Errorf("valuables: unknown artifact %q", name))
		}
	}

	spells := make(map[string]bool)
	for _, s := range c.Spells {
		spells[s] = true
	}
	for s := range c.IDs[registry.CategorySpells] {
		spells[s] = true
	}
	for _, name := range sortedKeys(c.ArtifactSpells) {
		if !known[name] {
			errs = append(errs, fmt.Errorf("artifact spells: unknown artifact %q", name))
		}
		for _, s := range c.ArtifactSpells[name] {
			if !spells[s] {
				errs = append(errs, fmt.Errorf("artifact spells: %q grants unknown spell %q", name, s))
			}
		}
	}
	for _, s := range c.BannableSpells {
		if !spells[s] {
			errs = append(errs, fmt.Errorf("bannable spells: unknown spell %q", s))
		}
	}

	for _, category := range registry.Categories() {
		ids, ok := c.IDs[category]
		if !ok {
			continue
		}
		if _, err := registry.NewIDTable(ids); err != nil {
			errs = append(errs, fmt.Errorf("%s ids: %w", category, err))
		}
	}
	if _, err := registry.NewIDTable(c.SkillLevelIDs); err != nil {
		errs = append(errs, fmt.Errorf("skill level ids: %w", err))
	}
	return errors.Join(errs...)
}

// Inventory returns the artifacts that can be kept in the hero backpack.
func (c *Catalog) Inventory() []string {
	out := cloneList(c.Artifacts)
	known := c.knownArtifacts()
	for _, extra := range []string{spellbook, grailArtifact} {
		if known[extra] {
			out = unionList(out, []string{extra})
		}
	}
	return out
}

// ArtifactsBySlot returns the artifacts whose primary slot is kind, in list order.
func (c *Catalog) ArtifactsBySlot(kind string) []string {
	var out []string
	for _, name := range c.Artifacts {
		if primary, ok := c.Slots.Primary(name); ok && primary == kind {
			out = append(out, name)
		}
	}
	return out
}

// Register stores every table derived from the catalog under version.
func (c *Catalog) Register(reg *registry.Registry, version registry.Version) error {
	type entry struct {
		category registry.Category
		sub      registry.Subcategory
		table    registry.Table
	}
	entries := []entry{
		{registry.CategoryArtifacts, registry.SubNone, registry.NameList(cloneList(c.Artifacts))},
		{registry.CategoryArtifacts, registry.SubInventory, registry.NameList(c.Inventory())},
		{registry.CategoryArtifacts, registry.SubScroll, registry.NameList(cloneList(c.ScrollArtifacts))},
		{registry.CategoryArtifacts, registry.SubSlots, cloneListMap(c.Slots)},
		{registry.CategoryArtifacts, registry.SubStats, cloneMap(c.Stats)},
		{registry.CategoryArtifacts, registry.SubSpells, cloneListMap(c.ArtifactSpells)},
		{registry.CategoryArtifacts, registry.SubCombos, cloneListMap(c.Combos)},
		{registry.CategoryArtifacts, registry.SubValuables, cloneMap(c.Valuables)},
		{registry.CategoryArtifacts, registry.SubCapacity, cloneMap(c.Capacity)},
		{registry.CategoryCreatures, registry.SubNone, registry.NameList(cloneList(c.Creatures))},
		{registry.CategoryArmy, registry.SubNone, registry.NameList(cloneList(c.Creatures))},
		{registry.CategorySpells, registry.SubNone, registry.NameList(cloneList(c.Spells))},
		{registry.CategorySpells, registry.SubBannable, registry.NameList(cloneList(c.BannableSpells))},
		{registry.CategorySkills, registry.SubNone, registry.NameList(cloneList(c.Skills))},
		{registry.CategorySkills, registry.SubLevels, registry.NameList(cloneList(c.SkillLevels))},
		{registry.CategoryDevices, registry.SubNone, registry.NameList(cloneList(c.SpecialArtifacts))},
		{registry.CategoryInventory, registry.SubNone, registry.NameList(c.Inventory())},
	}

	for _, kind := range c.Slots.Kinds() {
		if registry.Subcategory(kind) == registry.SubInventory {
			continue
		}
		entries = append(entries, entry{registry.CategoryArtifacts, registry.Subcategory(kind), registry.NameList(c.ArtifactsBySlot(kind))})
	}
	for _, artifact := range sortedKeys(c.ArtifactSpells) {
		entries = append(entries, entry{registry.CategorySpells, registry.Subcategory(artifact), registry.NameList(cloneList(c.ArtifactSpells[artifact]))})
	}
	for _, category := range registry.Categories() {
		ids, ok := c.IDs[category]
		if !ok {
			continue
		}
		table, err := registry.NewIDTable(ids)
		if err != nil {
			return fmt.Errorf("%s ids for %s: %w", category, version.Name, err)
		}
		entries = append(entries, entry{category, registry.SubIDs, table})
	}
	if len(c.SkillLevelIDs) > 0 {
		table, err := registry.NewIDTable(c.SkillLevelIDs)
		if err != nil {
			return fmt.Errorf("skill level ids for %s: %w", version.Name, err)
		}
		entries = append(entries, entry{registry.CategorySkills, registry.SubLevelIDs, table})
	}

	for _, e := range entries {
		if err := reg.Register(e.category, version, e.table, e.sub); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) knownArtifacts() map[string]bool {
	known := make(map[string]bool)
	for _, list := range [][]string{c.Artifacts, c.ScrollArtifacts, c.SpecialArtifacts} {
		for _, name := range list {
			known[name] = true
		}
	}
	for name := range c.IDs[registry.CategoryArtifacts] {
		known[name] = true
	}
	return known
}

func (c *Catalog) clone() *Catalog {
	out := &Catalog{
		Artifacts:        cloneList(c.Artifacts),
		ScrollArtifacts:  cloneList(c.ScrollArtifacts),
		SpecialArtifacts: cloneList(c.SpecialArtifacts),
		Creatures:        cloneList(c.Creatures),
		Spells:           cloneList(c.Spells),
		BannableSpells:   cloneList(c.BannableSpells),
		Skills:           cloneList(c.Skills),
		SkillLevels:      cloneList(c.SkillLevels),
		SkillLevelIDs:    cloneMap(c.SkillLevelIDs),
		Slots:            cloneListMap(c.Slots),
		Stats:            cloneMap(c.Stats),
		ArtifactSpells:   cloneListMap(c.ArtifactSpells),
		Combos:           cloneListMap(c.Combos),
		Valuables:        cloneMap(c.Valuables),
		Capacity:         cloneMap(c.Capacity),
	}
	if c.IDs != nil {
		out.IDs = make(map[registry.Category]map[string]registry.EntityID, len(c.IDs))
		for category, ids := range c.IDs {
			out.IDs[category] = cloneMap(ids)
		}
	}
	return out
}

func cloneList(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

func cloneMap[M ~map[string]V, V any](in M) M {
	if in == nil {
		return nil
	}
	out := make(M, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneListMap[M ~map[string][]string](in M) M {
	if in == nil {
		return nil
	}
	out := make(M, len(in))
	for k, v := range in {
		out[k] = cloneList(v)
	}
	return out
}

func unionList(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, name := range base {
		seen[name] = true
	}
	for _, name := range extra {
		if !seen[name] {
			seen[name] = true
			base = append(base, name)
		}
	}
	return base
}

// overrideMap writes extra over base, allocating base when needed.
func overrideMap[M ~map[string]V, V any](base, extra M) M {
	if len(extra) == 0 {
		return base
	}
	if base == nil {
		base = make(M, len(extra))
	}
	for k, v := range extra {
		base[k] = v
	}
	return base
}
