package registry_test

import (
	"errors"
	"testing"

	"h3sed/core/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	base = registry.Version{Name: "base", Label: "Base game", Priority: 0}
	sod  = registry.Version{Name: "sod", Label: "Shadow of Death", Priority: 2}
	hota = registry.Version{Name: "hota", Label: "Horn of the Abyss", Priority: 1}
)

func newCreatureRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(zap.NewNop())
	ids, err := registry.NewIDTable(map[string]registry.EntityID{
		"Pixie":        0x76,
		"Sprite":       0x77,
		"Azure Dragon": 0x84,
	})
	require.NoError(t, err)
	require.NoError(t, reg.Register(registry.CategoryCreatures, sod, registry.NameList{"Pixie", "Sprite", "Azure Dragon"}))
	require.NoError(t, reg.Register(registry.CategoryCreatures, sod, ids, registry.SubIDs))
	return reg
}

func TestRegisterAndResolve(t *testing.T) {
	t.Run("ReturnsRegisteredTable", func(t *testing.T) {
		reg := newCreatureRegistry(t)

		table, err := reg.Resolve(registry.CategoryCreatures, "sod")
		require.NoError(t, err)
		assert.Equal(t, registry.NameList{"Pixie", "Sprite", "Azure Dragon"}, table)
	})

	t.Run("NoFallbackToOtherVersion", func(t *testing.T) {
		reg := newCreatureRegistry(t)

		_, err := reg.Resolve(registry.CategoryCreatures, "hota")
		require.Error(t, err)
		assert.True(t, errors.Is(err, registry.ErrUnknownCategory))

		var unknown *registry.UnknownCategoryError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, registry.Key{Category: registry.CategoryCreatures, Version: "hota"}, unknown.Key)
	})

	t.Run("MissingSubcategory", func(t *testing.T) {
		reg := newCreatureRegistry(t)

		_, err := reg.Resolve(registry.CategoryCreatures, "sod", registry.SubStats)
		assert.ErrorIs(t, err, registry.ErrUnknownCategory)
	})

	t.Run("LastWriterWinsWithWarning", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		reg := registry.New(zap.New(core))

		require.NoError(t, reg.Register(registry.CategorySpells, base, registry.NameList{"Bless"}))
		require.NoError(t, reg.Register(registry.CategorySpells, base, registry.NameList{"Curse"}))

		names, err := reg.Names(registry.CategorySpells, "base")
		require.NoError(t, err)
		assert.Equal(t, []string{"Curse"}, names)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "registry table replaced", entry.Message)
		assert.Equal(t, "spells", entry.ContextMap()["category"])
		assert.Equal(t, "base", entry.ContextMap()["version"])
	})

	t.Run("FrozenRejectsRegister", func(t *testing.T) {
		reg := newCreatureRegistry(t)
		reg.Freeze()
		assert.True(t, reg.Frozen())

		err := reg.Register(registry.CategorySkills, sod, registry.NameList{"Archery"})
		assert.ErrorIs(t, err, registry.ErrRegistryFrozen)

		_, err = reg.Resolve(registry.CategorySkills, "sod")
		assert.ErrorIs(t, err, registry.ErrUnknownCategory)
	})

	t.Run("RejectsInvalidInput", func(t *testing.T) {
		reg := registry.New(nil)

		assert.Error(t, reg.Register(registry.Category(42), sod, registry.NameList{}))
		assert.Error(t, reg.Register(registry.CategorySpells, registry.Version{}, registry.NameList{}))
		assert.Error(t, reg.Register(registry.CategorySpells, sod, nil))
		assert.Error(t, reg.Register(registry.CategorySpells, sod, registry.NameList{}, registry.SubIDs, registry.SubSlots))
	})

	t.Run("RejectsConflictingVersionProperties", func(t *testing.T) {
		reg := registry.New(nil)
		require.NoError(t, reg.Register(registry.CategorySpells, sod, registry.NameList{}))

		other := sod
		other.Priority = 9
		assert.Error(t, reg.Register(registry.CategorySkills, other, registry.NameList{}))
	})
}

func TestResolveAs(t *testing.T) {
	reg := newCreatureRegistry(t)

	ids, err := registry.ResolveAs[*registry.IDTable](reg, registry.CategoryCreatures, "sod", registry.SubIDs)
	require.NoError(t, err)
	assert.Equal(t, 3, ids.Len())

	_, err = registry.ResolveAs[*registry.IDTable](reg, registry.CategoryCreatures, "sod")
	assert.ErrorIs(t, err, registry.ErrTableType)

	_, err = registry.ResolveAs[registry.NameList](reg, registry.CategoryArmy, "sod")
	assert.ErrorIs(t, err, registry.ErrUnknownCategory)
}

func TestNames(t *testing.T) {
	reg := newCreatureRegistry(t)

	names, err := reg.Names(registry.CategoryCreatures, "sod", registry.SubIDs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pixie", "Sprite", "Azure Dragon"}, names)

	// Returned slices are copies.
	names[0] = "Changed"
	again, err := reg.Names(registry.CategoryCreatures, "sod")
	require.NoError(t, err)
	assert.Equal(t, "Pixie", again[0])
}

func TestVersions(t *testing.T) {
	reg := registry.New(nil)
	require.NoError(t, reg.Register(registry.CategorySpells, sod, registry.NameList{"Bless"}))
	require.NoError(t, reg.Register(registry.CategorySpells, base, registry.NameList{"Bless"}))
	require.NoError(t, reg.Register(registry.CategorySpells, hota, registry.NameList{"Bless"}))
	require.NoError(t, reg.Register(registry.CategorySkills, hota, registry.NameList{"Interference"}))
	require.NoError(t, reg.Register(registry.CategoryCreatures, sod, registry.NameList{}, registry.SubIDs))

	assert.Equal(t, []registry.Version{base, hota, sod}, reg.AllVersionsFor(registry.CategorySpells))
	assert.Equal(t, []registry.Version{hota}, reg.AllVersionsFor(registry.CategorySkills))
	assert.Equal(t, []registry.Version{sod}, reg.AllVersionsFor(registry.CategoryCreatures))
	assert.Empty(t, reg.AllVersionsFor(registry.CategoryDevices))
	assert.Equal(t, []registry.Version{base, hota, sod}, reg.Versions())

	v, ok := reg.Version("hota")
	assert.True(t, ok)
	assert.Equal(t, hota, v)
}

func TestLookup(t *testing.T) {
	reg := newCreatureRegistry(t)
	reg.Freeze()

	t.Run("NameByID", func(t *testing.T) {
		name, err := reg.LookupName(registry.CategoryCreatures, "sod", 0x84)
		require.NoError(t, err)
		assert.Equal(t, "Azure Dragon", name)
	})

	t.Run("IDByName", func(t *testing.T) {
		id, err := reg.LookupID(registry.CategoryCreatures, "sod", "Sprite")
		require.NoError(t, err)
		assert.Equal(t, registry.EntityID(0x77), id)
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := reg.LookupName(registry.CategoryCreatures, "sod", 0x99)
		assert.ErrorIs(t, err, registry.ErrUnknownID)
		assert.Contains(t, err.Error(), "0x99")
	})

	t.Run("UnknownNameWithSuggestion", func(t *testing.T) {
		_, err := reg.LookupID(registry.CategoryCreatures, "sod", "Pixy")
		require.ErrorIs(t, err, registry.ErrUnknownName)

		var unknown *registry.UnknownNameError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, []string{"Pixie"}, unknown.Suggestions)
		assert.Contains(t, err.Error(), `did you mean "Pixie"?`)
	})

	t.Run("CaseMismatchIsSuggested", func(t *testing.T) {
		_, err := reg.LookupID(registry.CategoryCreatures, "sod", "azure dragon")

		var unknown *registry.UnknownNameError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, []string{"Azure Dragon"}, unknown.Suggestions)
	})

	t.Run("NothingClose", func(t *testing.T) {
		_, err := reg.LookupID(registry.CategoryCreatures, "sod", "Behemoth")

		var unknown *registry.UnknownNameError
		require.ErrorAs(t, err, &unknown)
		assert.Empty(t, unknown.Suggestions)
	})

	t.Run("UnknownVersion", func(t *testing.T) {
		_, err := reg.LookupName(registry.CategoryCreatures, "base", 0x76)
		assert.ErrorIs(t, err, registry.ErrUnknownCategory)
	})
}
