package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCategory is returned when no table is registered under a key.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownID is returned when a code has no name in the resolved table.
	ErrUnknownID = errors.New("unknown id")
	// ErrUnknownName is returned when a name has no code in the resolved table.
	ErrUnknownName = errors.New("unknown name")
	// ErrRegistryFrozen is returned by Register after Freeze.
	ErrRegistryFrozen = errors.New("registry is frozen")
	// ErrTableType is returned when a resolved table has an unexpected type.
	ErrTableType = errors.New("unexpected table type")
)

// UnknownCategoryError reports a key with no registered table.
type UnknownCategoryError struct {
	Key Key
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no table registered for %s", e.Key)
}

// Is matches ErrUnknownCategory.
func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}

// UnknownIDError reports a code with no entity in a version.
type UnknownIDError struct {
	Category Category
	Version  string
	ID       EntityID
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown %s id %s in version %s", e.Category, e.ID, e.Version)
}

// Is matches ErrUnknownID.
func (e *UnknownIDError) Is(target error) bool {
	return target == ErrUnknownID
}

// UnknownNameError reports a name with no code in a version.
// Suggestions lists the closest known names, best first.
type UnknownNameError struct {
	Category    Category
	Version     string
	Name        string
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	msg := fmt.Sprintf("unknown %s name %q in version %s", e.Category, e.Name, e.Version)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(e.Suggestions), ", "))
	}
	return msg
}

// Is matches ErrUnknownName.
func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
