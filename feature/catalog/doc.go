// Package catalog holds the entity data of Heroes of Might and Magic III releases.
//
// A Catalog carries everything one game version knows about its entities: name lists
// for artifacts, creatures, spells and skills, the savefile code of each entity, and
// the structured artifact tables (slot layouts, attribute modifiers, granted spells,
// combination sets, importance ranks and slot capacity).
//
// # Composition
//
// Baseline returns the base game data. A release that adds or renumbers entities
// describes only its differences and composes them explicitly:
//
//	sod := catalog.Baseline().Extend(overlay)
//	if err := sod.Validate(); err != nil {
//	    return err
//	}
//	return sod.Register(reg, version)
//
// Extend never mutates its inputs, so the baseline can be reused by every release.
//
// # Registration
//
// Register derives the tables the editor resolves at runtime, such as the artifacts
// worn in each slot kind and the spells granted by each artifact, and stores them in
// a registry.Registry under one version.
package catalog
