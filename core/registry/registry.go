package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// maxSuggestions bounds the alternatives attached to an UnknownNameError.
const maxSuggestions = 3

// Registry stores entity tables keyed by category, version and subcategory.
type Registry struct {
	mu       sync.RWMutex
	tables   map[Key]Table
	versions map[string]Version
	frozen   bool
	logger   *zap.Logger
}

// New creates an empty registry. A nil logger disables logging.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		tables:   make(map[Key]Table),
		versions: make(map[string]Version),
		logger:   logger,
	}
}

// Register stores table under the given key. An existing table for the same key is
// replaced and a warning is logged. At most one subcategory may be given.
func (r *Registry) Register(category Category, version Version, table Table, sub ...Subcategory) error {
	if !category.Valid() {
		return fmt.Errorf("register: invalid %s", category)
	}
	if version.Name == "" {
		return fmt.Errorf("register %s: empty version name", category)
	}
	if table == nil {
		return fmt.Errorf("register %s/%s: nil table", category, version.Name)
	}
	key, err := makeKey(category, version.Name, sub)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("register %s: %w", key, ErrRegistryFrozen)
	}
	if prev, ok := r.versions[version.Name]; ok && prev != version {
		return fmt.Errorf("register %s: version %q already registered with different properties", key, version.Name)
	}
	if _, exists := r.tables[key]; exists {
		r.logger.Warn("registry table replaced",
			zap.String("category", category.String()),
			zap.String("version", version.Name),
			zap.String("subcategory", string(key.Subcategory)),
		)
	}
	r.tables[key] = table
	r.versions[version.Name] = version
	r.logger.Debug("registry table registered",
		zap.String("key", key.String()),
		zap.String("kind", table.TableKind()),
	)
	return nil
}

// Freeze makes the registry read-only. Subsequent Register calls fail.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Resolve returns the table registered under the exact key. No other version is
// consulted when the key is missing.
func (r *Registry) Resolve(category Category, version string, sub ...Subcategory) (Table, error) {
	key, err := makeKey(category, version, sub)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	table, ok := r.tables[key]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownCategoryError{Key: key}
	}
	return table, nil
}

// ResolveAs resolves a table and asserts its concrete type.
func ResolveAs[T Table](r *Registry, category Category, version string, sub ...Subcategory) (T, error) {
	var zero T
	table, err := r.Resolve(category, version, sub...)
	if err != nil {
		return zero, err
	}
	typed, ok := table.(T)
	if !ok {
		key, _ := makeKey(category, version, sub)
		return zero, fmt.Errorf("%s holds %s table: %w", key, table.TableKind(), ErrTableType)
	}
	return typed, nil
}

// Names returns the names held by a NameList or IDTable.
func (r *Registry) Names(category Category, version string, sub ...Subcategory) ([]string, error) {
	table, err := r.Resolve(category, version, sub...)
	if err != nil {
		return nil, err
	}
	switch t := table.(type) {
	case NameList:
		return append([]string(nil), t...), nil
	case *IDTable:
		return t.Names(), nil
	default:
		return nil, fmt.Errorf("%s table has no names: %w", table.TableKind(), ErrTableType)
	}
}

// AllVersionsFor returns every version with at least one table in category,
// subcategory tables included, ordered by priority and then by name.
func (r *Registry) AllVersionsFor(category Category) []Version {
	r.mu.RLock()
	seen := make(map[string]bool)
	var out []Version
	for key := range r.tables {
		if key.Category != category || seen[key.Version] {
			continue
		}
		seen[key.Version] = true
		out = append(out, r.versions[key.Version])
	}
	r.mu.RUnlock()
	sortVersions(out)
	return out
}

// Versions returns every version that registered at least one table.
func (r *Registry) Versions() []Version {
	r.mu.RLock()
	out := make([]Version, 0, len(r.versions))
	for _, v := range r.versions {
		out = append(out, v)
	}
	r.mu.RUnlock()
	sortVersions(out)
	return out
}

// Version returns the registered version with the given name.
func (r *Registry) Version(name string) (Version, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.versions[name]
	return v, ok
}

// LookupName maps a savefile code to an entity name.
func (r *Registry) LookupName(category Category, version string, id EntityID) (string, error) {
	ids, err := ResolveAs[*IDTable](r, category, version, SubIDs)
	if err != nil {
		return "", err
	}
	name, ok := ids.Name(id)
	if !ok {
		return "", &UnknownIDError{Category: category, Version: version, ID: id}
	}
	return name, nil
}

// LookupID maps an entity name to its savefile code. When the name is unknown the
// error carries the closest known names.
func (r *Registry) LookupID(category Category, version string, name string) (EntityID, error) {
	ids, err := ResolveAs[*IDTable](r, category, version, SubIDs)
	if err != nil {
		return 0, err
	}
	if id, ok := ids.ID(name); ok {
		return id, nil
	}
	return 0, &UnknownNameError{
		Category:    category,
		Version:     version,
		Name:        name,
		Suggestions: suggest(name, ids.Names()),
	}
}

func makeKey(category Category, version string, sub []Subcategory) (Key, error) {
	key := Key{Category: category, Version: version}
	switch len(sub) {
	case 0:
	case 1:
		key.Subcategory = sub[0]
	default:
		return key, fmt.Errorf("%s/%s: at most one subcategory allowed, got %d", category, version, len(sub))
	}
	return key, nil
}

func sortVersions(vs []Version) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].Priority != vs[j].Priority {
			return vs[i].Priority < vs[j].Priority
		}
		return vs[i].Name < vs[j].Name
	})
}

// suggest returns known names within an edit distance scaled to their length.
func suggest(name string, known []string) []string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, cand := range known {
		lower := strings.ToLower(cand)
		if lower == needle {
			hits = append(hits, scored{cand, 0})
			continue
		}
		dist := levenshtein.ComputeDistance(needle, lower)
		if dist > distanceLimit(len(lower)) {
			continue
		}
		hits = append(hits, scored{cand, dist})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > maxSuggestions {
		hits = hits[:maxSuggestions]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
