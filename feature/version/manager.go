package version

import (
	"fmt"
	"sort"

	"h3sed/core/detect"
	"h3sed/core/registry"
	"h3sed/feature/catalog"

	"go.uber.org/zap"
)

// Plugin describes one supported game version.
type Plugin interface {
	// Props returns the version identity and detection priority.
	Props() registry.Version
	// Signature returns the byte ranges that identify savefiles of this version.
	Signature() detect.Signature
	// Catalog returns the complete entity data of this version.
	Catalog() (*catalog.Catalog, error)
}

// Manager handles registration and loading of version plugins.
type Manager struct {
	plugins []Plugin
	byName  map[string]Plugin
	logger  *zap.Logger
}

// NewManager creates a new plugin manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		byName: make(map[string]Plugin),
		logger: logger,
	}
}

// Default creates a manager holding the built-in plugins and the YAML plugins
// found in cfg.PluginDir.
func Default(cfg Config, logger *zap.Logger) (*Manager, error) {
	m := NewManager(logger)
	if err := m.Register(SoD{}); err != nil {
		return nil, err
	}
	if cfg.PluginDir == "" {
		return m, nil
	}
	plugins, err := LoadYAMLPlugins(cfg.PluginDir)
	if err != nil {
		return nil, err
	}
	for _, p := range plugins {
		if err := m.Register(p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register adds a plugin. Plugin names must be unique.
func (m *Manager) Register(p Plugin) error {
	name := p.Props().Name
	if name == "" {
		return fmt.Errorf("plugin has no name")
	}
	if _, exists := m.byName[name]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}
	m.plugins = append(m.plugins, p)
	m.byName[name] = p
	return nil
}

// LoadAll builds, validates and registers the catalog of every plugin, then
// freezes the registry.
func (m *Manager) LoadAll(reg *registry.Registry) error {
	for _, p := range m.ordered() {
		props := p.Props()
		cat, err := p.Catalog()
		if err != nil {
			return fmt.Errorf("failed to build catalog for version %s: %w", props.Name, err)
		}
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("invalid catalog for version %s: %w", props.Name, err)
		}
		if err := cat.Register(reg, props); err != nil {
			return fmt.Errorf("failed to register version %s: %w", props.Name, err)
		}
		m.logger.Info("Loaded version",
			zap.String("version", props.Name),
			zap.String("label", props.Label),
			zap.Int("priority", props.Priority),
			zap.Int("artifacts", len(cat.Artifacts)),
			zap.Int("creatures", len(cat.Creatures)),
		)
	}
	reg.Freeze()
	return nil
}

// Candidates returns the detection candidates of all plugins in priority order.
func (m *Manager) Candidates() []detect.Candidate {
	plugins := m.ordered()
	out := make([]detect.Candidate, len(plugins))
	for i, p := range plugins {
		out[i] = detect.Candidate{Version: p.Props(), Signature: p.Signature()}
	}
	return out
}

// Plugin returns the plugin with the given version name.
func (m *Manager) Plugin(name string) (Plugin, bool) {
	p, ok := m.byName[name]
	return p, ok
}

// Plugins returns all plugins in priority order.
func (m *Manager) Plugins() []Plugin {
	return m.ordered()
}

func (m *Manager) ordered() []Plugin {
	out := append([]Plugin(nil), m.plugins...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Props().Priority < out[j].Props().Priority
	})
	return out
}
