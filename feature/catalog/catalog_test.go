package catalog_test

import (
	"testing"

	"h3sed/core/registry"
	"h3sed/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testVersion = registry.Version{Name: "test", Label: "Test", Priority: 1}

func TestBaseline(t *testing.T) {
	t.Run("IsValid", func(t *testing.T) {
		assert.NoError(t, catalog.Baseline().Validate())
	})

	t.Run("DerivesSpellScrolls", func(t *testing.T) {
		c := catalog.Baseline()

		assert.Len(t, c.ScrollArtifacts, len(c.Spells))
		assert.Contains(t, c.Artifacts, "Spell Scroll: Town Portal")
		assert.Equal(t, []string{"side"}, c.Slots["Spell Scroll: Town Portal"])
		assert.Equal(t, []string{"Town Portal"}, c.ArtifactSpells["Spell Scroll: Town Portal"])
		assert.Equal(t, registry.EntityID(0x900000001), c.IDs[registry.CategoryArtifacts]["Spell Scroll: Town Portal"])
	})

	t.Run("ScrollCodesStayUnique", func(t *testing.T) {
		c := catalog.Baseline()
		ids := c.IDs[registry.CategoryArtifacts]

		assert.Equal(t, catalog.ScrollArtifactID, ids["Spell Scroll: Summon Boat"])
		assert.NotContains(t, ids, "Spell Scroll")
		_, err := registry.NewIDTable(ids)
		assert.NoError(t, err)
	})

	t.Run("ReturnsFreshCopies", func(t *testing.T) {
		a := catalog.Baseline()
		a.Creatures[0] = "Changed"
		a.Slots["Helm of Chaos"][0] = "feet"
		a.IDs[registry.CategorySpells]["Town Portal"] = 0xFF

		b := catalog.Baseline()
		assert.Equal(t, "Air Elemental", b.Creatures[0])
		assert.Equal(t, []string{"helm"}, b.Slots["Helm of Chaos"])
		assert.Equal(t, registry.EntityID(0x09), b.IDs[registry.CategorySpells]["Town Portal"])
	})
}

func TestExtend(t *testing.T) {
	base := &catalog.Catalog{
		Artifacts: []string{"Helm of Chaos", "Skull Helmet"},
		Spells:    []string{"Bless"},
		IDs: map[registry.Category]map[string]registry.EntityID{
			registry.CategoryArtifacts: {"Helm of Chaos": 0x15, "Skull Helmet": 0x14},
		},
		Slots:     catalog.SlotLayouts{"Helm of Chaos": {"helm"}, "Skull Helmet": {"helm"}},
		Stats:     catalog.StatModifiers{"Helm of Chaos": {Knowledge: 3}},
		Valuables: catalog.ValuableRanks{"Skull Helmet": 1},
	}
	overlay := &catalog.Catalog{
		Artifacts: []string{"Skull Helmet", "Admiral's Hat"},
		Spells:    []string{"Titan's Lightning Bolt"},
		IDs: map[registry.Category]map[string]registry.EntityID{
			registry.CategoryArtifacts: {"Admiral's Hat": 0x88},
			registry.CategorySpells:    {"Titan's Lightning Bolt": 0x39},
		},
		Slots:     catalog.SlotLayouts{"Admiral's Hat": {"helm", "neck"}},
		Stats:     catalog.StatModifiers{"Helm of Chaos": {Knowledge: 4}},
		Valuables: catalog.ValuableRanks{"Admiral's Hat": 2},
	}

	out := base.Extend(overlay)

	assert.Equal(t, []string{"Helm of Chaos", "Skull Helmet", "Admiral's Hat"}, out.Artifacts)
	assert.Equal(t, []string{"Bless", "Titan's Lightning Bolt"}, out.Spells)
	assert.Equal(t, registry.EntityID(0x88), out.IDs[registry.CategoryArtifacts]["Admiral's Hat"])
	assert.Equal(t, registry.EntityID(0x15), out.IDs[registry.CategoryArtifacts]["Helm of Chaos"])
	assert.Equal(t, registry.EntityID(0x39), out.IDs[registry.CategorySpells]["Titan's Lightning Bolt"])
	assert.Equal(t, 4, out.Stats["Helm of Chaos"].Knowledge)
	assert.Equal(t, 2, out.Valuables["Admiral's Hat"])
	assert.Equal(t, 1, out.Valuables["Skull Helmet"])

	// Inputs are untouched.
	assert.Len(t, base.Artifacts, 2)
	assert.Equal(t, 3, base.Stats["Helm of Chaos"].Knowledge)
	assert.NotContains(t, base.IDs[registry.CategoryArtifacts], "Admiral's Hat")
	assert.NotContains(t, base.IDs, registry.CategorySpells)

	assert.Equal(t, base.Artifacts, base.Extend(nil).Artifacts)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog *catalog.Catalog
		wantErr []string
	}{
		{
			name: "EmptySlotLayout",
			catalog: &catalog.Catalog{
				Artifacts: []string{"Helm of Chaos"},
				Slots:     catalog.SlotLayouts{"Helm of Chaos": {}},
			},
			wantErr: []string{`artifact "Helm of Chaos" has an empty layout`},
		},
		{
			name: "MissingSlotLayout",
			catalog: &catalog.Catalog{
				Artifacts: []string{"Helm of Chaos"},
			},
			wantErr: []string{`artifact "Helm of Chaos" has no layout`},
		},
		{
			name: "UnknownComboComponent",
			catalog: &catalog.Catalog{
				Artifacts: []string{"Angelic Alliance"},
				Slots:     catalog.SlotLayouts{"Angelic Alliance": {"weapon"}},
				Combos:    catalog.ComboSets{"Angelic Alliance": {"Sword of Judgement"}},
			},
			wantErr: []string{`"Angelic Alliance" lists unknown component "Sword of Judgement"`},
		},
		{
			name: "UnknownArtifactsInTables",
			catalog: &catalog.Catalog{
				Stats:     catalog.StatModifiers{"Ghost Helm": {Attack: 1}},
				Valuables: catalog.ValuableRanks{"Ghost Ring": 2},
			},
			wantErr: []string{
				`stats: unknown artifact "Ghost Helm"`,
				`valuables: unknown artifact "Ghost Ring"`,
			},
		},
		{
			name: "UnknownGrantedSpell",
			catalog: &catalog.Catalog{
				Artifacts:      []string{"Tome of Air"},
				Slots:          catalog.SlotLayouts{"Tome of Air": {"side"}},
				ArtifactSpells: catalog.SpellGrants{"Tome of Air": {"Haste"}},
			},
			wantErr: []string{`"Tome of Air" grants unknown spell "Haste"`},
		},
		{
			name: "DuplicateIDs",
			catalog: &catalog.Catalog{
				IDs: map[registry.Category]map[string]registry.EntityID{
					registry.CategoryCreatures: {"Pixie": 0x76, "Sprite": 0x76},
				},
			},
			wantErr: []string{"creatures ids: duplicate id 0x76"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}

	t.Run("SameCodeInDifferentNamespaces", func(t *testing.T) {
		c := &catalog.Catalog{
			IDs: map[registry.Category]map[string]registry.EntityID{
				registry.CategoryCreatures: {"Pikeman": 0x00},
				registry.CategorySpells:    {"Summon Boat": 0x00},
			},
		}
		assert.NoError(t, c.Validate())
	})
}

func TestRegister(t *testing.T) {
	reg := registry.New(zap.NewNop())
	require.NoError(t, catalog.Baseline().Register(reg, testVersion))
	reg.Freeze()

	t.Run("ArtifactViews", func(t *testing.T) {
		helms, err := reg.Names(registry.CategoryArtifacts, "test", "helm")
		require.NoError(t, err)
		assert.Contains(t, helms, "Helm of Chaos")
		assert.NotContains(t, helms, "Sword of Hellfire")

		side, err := reg.Names(registry.CategoryArtifacts, "test", "side")
		require.NoError(t, err)
		assert.Contains(t, side, "Spell Scroll: Bless")

		inventory, err := reg.Names(registry.CategoryInventory, "test")
		require.NoError(t, err)
		assert.Contains(t, inventory, "Spellbook")
		assert.Contains(t, inventory, "The Grail")

		scrolls, err := reg.Names(registry.CategoryArtifacts, "test", registry.SubScroll)
		require.NoError(t, err)
		assert.Contains(t, scrolls, "Spell Scroll: Magic Arrow")
	})

	t.Run("StructuredTables", func(t *testing.T) {
		stats, err := registry.ResolveAs[catalog.StatModifiers](reg, registry.CategoryArtifacts, "test", registry.SubStats)
		require.NoError(t, err)
		assert.Equal(t, catalog.StatModifier{Knowledge: 3}, stats["Helm of Chaos"])
		assert.Equal(t, catalog.StatModifier{Power: -2, Knowledge: 10}, stats["Thunder Helmet"])

		capacity, err := registry.ResolveAs[catalog.SlotCapacity](reg, registry.CategoryArtifacts, "test", registry.SubCapacity)
		require.NoError(t, err)
		assert.Equal(t, 5, capacity["side"])

		granted, err := reg.Names(registry.CategorySpells, "test", "Tome of Earth")
		require.NoError(t, err)
		assert.Contains(t, granted, "Town Portal")
	})

	t.Run("Lookups", func(t *testing.T) {
		name, err := reg.LookupName(registry.CategoryArtifacts, "test", 0x15)
		require.NoError(t, err)
		assert.Equal(t, "Helm of Chaos", name)

		name, err = reg.LookupName(registry.CategoryCreatures, "test", 0x00)
		require.NoError(t, err)
		assert.Equal(t, "Pikeman", name)

		id, err := reg.LookupID(registry.CategorySkills, "test", "Archery")
		require.NoError(t, err)
		assert.Equal(t, registry.EntityID(0x01), id)

		id, err = reg.LookupID(registry.CategoryArtifacts, "test", "Spell Scroll: Town Portal")
		require.NoError(t, err)
		assert.Equal(t, registry.EntityID(0x900000001), id)

		name, err = reg.LookupName(registry.CategoryArtifacts, "test", catalog.ScrollArtifactID)
		require.NoError(t, err)
		assert.Equal(t, "Spell Scroll: Summon Boat", name)

		levels, err := registry.ResolveAs[*registry.IDTable](reg, registry.CategorySkills, "test", registry.SubLevelIDs)
		require.NoError(t, err)
		assert.Equal(t, []string{"Basic", "Advanced", "Expert"}, levels.Names())
	})
}

func TestTables(t *testing.T) {
	slots := catalog.SlotLayouts{
		"Admiral's Hat": {"helm", "neck"},
		"Skull Helmet":  {"helm"},
		"Cornucopia":    {"side", "hand", "hand", "cloak"},
	}
	primary, ok := slots.Primary("Admiral's Hat")
	assert.True(t, ok)
	assert.Equal(t, "helm", primary)
	_, ok = slots.Primary("Unknown")
	assert.False(t, ok)
	assert.Equal(t, []string{"helm", "side"}, slots.Kinds())

	stats := catalog.StatModifiers{
		"Titan's Gladius":   {Attack: 12, Defense: -3},
		"Sentinel's Shield": {Attack: -3, Defense: 12},
	}
	assert.Equal(t, catalog.StatModifier{Attack: 9, Defense: 9}, stats.Total("Titan's Gladius", "Sentinel's Shield", "Unknown"))

	combos := catalog.ComboSets{"Elixir of Life": {"Ring of Life", "Ring of Vitality", "Vial of Lifeblood"}}
	combo, ok := combos.ComboOf("Ring of Vitality")
	assert.True(t, ok)
	assert.Equal(t, "Elixir of Life", combo)
	_, ok = combos.ComboOf("Helm of Chaos")
	assert.False(t, ok)
}
