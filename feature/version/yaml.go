package version

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"h3sed/core/detect"
	"h3sed/core/registry"
	"h3sed/feature/catalog"

	"gopkg.in/yaml.v3"
)

// yamlFile is the on-disk layout of an external version plugin.
type yamlFile struct {
	Name      string                                  `yaml:"name"`
	Label     string                                  `yaml:"label"`
	Priority  int                                     `yaml:"priority"`
	Signature detect.Signature                        `yaml:"signature"`
	IDs       map[string]map[string]registry.EntityID `yaml:"ids"`
	Catalog   catalog.Catalog                         `yaml:"catalog"`
}

// yamlPlugin is a version described by a YAML file, layered over the baseline.
type yamlPlugin struct {
	props     registry.Version
	signature detect.Signature
	overlay   *catalog.Catalog
}

func (p *yamlPlugin) Props() registry.Version { return p.props }

func (p *yamlPlugin) Signature() detect.Signature { return p.signature }

func (p *yamlPlugin) Catalog() (*catalog.Catalog, error) {
	return catalog.Baseline().Extend(p.overlay), nil
}

// ParseYAMLPlugin decodes a version plugin. Unknown keys are rejected.
func ParseYAMLPlugin(data []byte) (Plugin, error) {
	var f yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty plugin file")
		}
		return nil, err
	}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return nil, fmt.Errorf("plugin name is required")
	}
	if len(f.Signature) == 0 {
		return nil, fmt.Errorf("plugin %s: signature is required", f.Name)
	}
	if f.Label == "" {
		f.Label = f.Name
	}

	overlay := f.Catalog
	if len(f.IDs) > 0 {
		overlay.IDs = make(map[registry.Category]map[string]registry.EntityID, len(f.IDs))
		for name, ids := range f.IDs {
			category, err := registry.ParseCategory(name)
			if err != nil {
				return nil, fmt.Errorf("plugin %s: %w", f.Name, err)
			}
			overlay.IDs[category] = ids
		}
	}

	return &yamlPlugin{
		props:     registry.Version{Name: f.Name, Label: f.Label, Priority: f.Priority},
		signature: f.Signature,
		overlay:   &overlay,
	}, nil
}

// LoadYAMLPlugins parses every .yaml and .yml file in dir, in file name order.
func LoadYAMLPlugins(dir string) ([]Plugin, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	plugins := make([]Plugin, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read plugin %s: %w", name, err)
		}
		p, err := ParseYAMLPlugin(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse plugin %s: %w", name, err)
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}
