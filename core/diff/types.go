package diff

// Kind classifies one aligned pair of lines.
type Kind int

const (
	// KindSame marks a line present unchanged on both sides.
	KindSame Kind = iota
	// KindRemoved marks a line present only before.
	KindRemoved
	// KindAdded marks a line present only after.
	KindAdded
	// KindChanged marks a line replaced by another.
	KindChanged
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindSame:
		return "same"
	case KindRemoved:
		return "removed"
	case KindAdded:
		return "added"
	case KindChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// Entry is one aligned pair of lines. The absent side of a removal or an addition is
// empty; Kind tells such an entry apart from a pair of blank lines.
type Entry struct {
	// Old is the line before the change.
	Old string `json:"old"`

	// New is the line after the change.
	New string `json:"new"`

	// Kind classifies the pair.
	Kind Kind `json:"kind"`
}

// Mirror returns the entry as seen from a diff with the sides swapped.
func (e Entry) Mirror() Entry {
	m := Entry{Old: e.New, New: e.Old, Kind: e.Kind}
	switch e.Kind {
	case KindRemoved:
		m.Kind = KindAdded
	case KindAdded:
		m.Kind = KindRemoved
	}
	return m
}

// Summary counts entries per kind.
type Summary struct {
	Same    int `json:"same"`
	Removed int `json:"removed"`
	Added   int `json:"added"`
	Changed int `json:"changed"`
}

// Total returns the number of entries counted.
func (s Summary) Total() int {
	return s.Same + s.Removed + s.Added + s.Changed
}

// HasChanges reports whether any entry differs between the sides.
func (s Summary) HasChanges() bool {
	return s.Removed+s.Added+s.Changed > 0
}

// Summarize counts the entries per kind.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Kind {
		case KindSame:
			s.Same++
		case KindRemoved:
			s.Removed++
		case KindAdded:
			s.Added++
		case KindChanged:
			s.Changed++
		}
	}
	return s
}
