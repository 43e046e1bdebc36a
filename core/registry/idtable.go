package registry

import (
	"fmt"
	"sort"
)

// IDTable is a bijective mapping between entity names and savefile codes.
// Iteration follows code order so that listings are stable.
type IDTable struct {
	byName map[string]EntityID
	byID   map[EntityID]string
	order  []string
}

// NewIDTable builds a table from a name to code map.
// It fails when two names share a code.
func NewIDTable(ids map[string]EntityID) (*IDTable, error) {
	t := &IDTable{
		byName: make(map[string]EntityID, len(ids)),
		byID:   make(map[EntityID]string, len(ids)),
		order:  make([]string, 0, len(ids)),
	}
	for name, id := range ids {
		if prev, ok := t.byID[id]; ok {
			a, b := prev, name
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("duplicate id %s for %q and %q", id, a, b)
		}
		t.byName[name] = id
		t.byID[id] = name
		t.order = append(t.order, name)
	}
	sort.Slice(t.order, func(i, j int) bool {
		return t.byName[t.order[i]] < t.byName[t.order[j]]
	})
	return t, nil
}

// TableKind implements Table.
func (*IDTable) TableKind() string { return "ids" }

// ID returns the code registered for name.
func (t *IDTable) ID(name string) (EntityID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Name returns the name registered for id.
func (t *IDTable) Name(id EntityID) (string, bool) {
	name, ok := t.byID[id]
	return name, ok
}

// Names returns all names ordered by code.
func (t *IDTable) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of entries.
func (t *IDTable) Len() int {
	return len(t.order)
}

// Map returns a copy of the name to code mapping.
func (t *IDTable) Map() map[string]EntityID {
	out := make(map[string]EntityID, len(t.byName))
	for k, v := range t.byName {
		out[k] = v
	}
	return out
}
