// Package version provides the game version plugins and their loading system.
//
// Each supported release implements the Plugin interface, which describes the
// version, the savefile signature that identifies it and the entity catalog it
// uses.
//
// # Plugin Interface
//
//	type Plugin interface {
//	    Props() registry.Version
//	    Signature() detect.Signature
//	    Catalog() (*catalog.Catalog, error)
//	}
//
// # Manager
//
// The Manager holds the available plugins. It handles:
//   - Registration of plugins via Register()
//   - Validation and registration of every plugin catalog via LoadAll()
//   - Detection candidates for the savefile loader via Candidates()
//
// Shadow of Death is built in. Further releases are described in YAML files placed
// in the configured plugin directory and loaded with LoadYAMLPlugins.
package version
