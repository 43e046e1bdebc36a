package registry

import "fmt"

// EntityID is the numeric code of an entity as stored in a savefile.
// Spell scroll artifacts carry the spell code in the upper 32 bits.
type EntityID uint64

// String formats the code in hexadecimal, the way savefile dumps show it.
func (id EntityID) String() string {
	return fmt.Sprintf("0x%02X", uint64(id))
}

// Version identifies one game release for which entity tables are registered.
// It is compared by value; two Versions with the same Name are the same release.
type Version struct {
	// Name is the short unique identifier, e.g. "sod".
	Name string `json:"name" yaml:"name"`

	// Label is the human-readable title, e.g. "Shadow of Death".
	Label string `json:"label" yaml:"label"`

	// Priority orders detection attempts; lower values are tried first.
	Priority int `json:"priority" yaml:"priority"`
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v == Version{}
}

// String returns the version name.
func (v Version) String() string {
	return v.Name
}

// Key addresses one registered table.
type Key struct {
	// Category is the entity class.
	Category Category

	// Version is the release name.
	Version string

	// Subcategory narrows the table; SubNone is the main table.
	Subcategory Subcategory
}

// String renders the key as category/version[/subcategory].
func (k Key) String() string {
	if k.Subcategory == SubNone {
		return fmt.Sprintf("%s/%s", k.Category, k.Version)
	}
	return fmt.Sprintf("%s/%s/%s", k.Category, k.Version, k.Subcategory)
}

// Table is a value stored in the registry. Implementations are plain data types
// such as NameList and IDTable, or structured tables defined by the catalog.
type Table interface {
	// TableKind names the table type for diagnostics.
	TableKind() string
}

// NameList is an ordered list of entity names.
type NameList []string

// TableKind implements Table.
func (NameList) TableKind() string { return "names" }

// Contains reports whether name is in the list.
func (l NameList) Contains(name string) bool {
	for _, n := range l {
		if n == name {
			return true
		}
	}
	return false
}
