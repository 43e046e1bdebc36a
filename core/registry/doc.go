// Package registry provides the version-scoped entity registry.
//
// Game releases disagree on which numeric code denotes which artifact, creature or
// spell, and newer releases add entities of their own. The registry holds one typed
// table per composite key and answers name and code lookups scoped to a single
// detected version.
//
// # Keys
//
// A table is addressed by Key: a Category from the closed enumeration (artifacts,
// creatures, spells, skills, army, inventory, devices), a version name and an
// optional Subcategory. Subcategories name structured tables (SubIDs, SubSlots,
// SubStats, ...) or filtered views such as the artifacts worn in one slot kind.
//
// # Lifecycle
//
// Version plugins register their tables once at startup, after which the caller
// invokes Freeze. Registering the same key twice replaces the previous table and logs
// a warning; tables are never merged. After Freeze the registry is read-only, so
// concurrent readers need no locking.
//
// # Resolution
//
// Resolve never falls back to another version: a missing key is an UnknownCategoryError
// even when the same category is registered for an older release. Version plugins that
// want baseline data exposed must register it themselves.
//
// # Usage
//
//	reg := registry.New(logger)
//	_ = reg.Register(registry.CategoryCreatures, sod, registry.NameList{"Pixie"})
//	reg.Freeze()
//
//	name, err := reg.LookupName(registry.CategoryArtifacts, "sod", 0x81)
//	if errors.Is(err, registry.ErrUnknownID) {
//	    // display the raw code
//	}
package registry
