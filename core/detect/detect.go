package detect

import (
	"sort"

	"h3sed/core/registry"
)

// ByteRange is an inclusive range of byte values. A negative bound leaves that side
// unbounded.
type ByteRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether b lies within the range.
func (r ByteRange) Contains(b byte) bool {
	if r.Min >= 0 && int(b) < r.Min {
		return false
	}
	if r.Max >= 0 && int(b) > r.Max {
		return false
	}
	return true
}

// Signature maps position labels to the byte range expected there.
type Signature map[string]ByteRange

// Positions maps position labels to offsets in the decompressed savefile.
type Positions map[string]int

// Candidate is a version together with the signature that identifies it.
type Candidate struct {
	Version   registry.Version
	Signature Signature
}

// Match reports whether buf satisfies every range in sig. An empty signature, a
// label missing from positions and an offset outside buf all fail the match.
func Match(buf []byte, positions Positions, sig Signature) bool {
	if len(sig) == 0 {
		return false
	}
	for label, want := range sig {
		pos, ok := positions[label]
		if !ok || pos < 0 || pos >= len(buf) {
			return false
		}
		if !want.Contains(buf[pos]) {
			return false
		}
	}
	return true
}

// Detect returns the first candidate, by priority, whose signature matches buf.
// The boolean is false when no candidate matches.
func Detect(buf []byte, positions Positions, candidates []Candidate) (registry.Version, bool) {
	ordered := append([]Candidate(nil), candidates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Version.Priority < ordered[j].Version.Priority
	})
	for _, c := range ordered {
		if Match(buf, positions, c.Signature) {
			return c.Version, true
		}
	}
	return registry.Version{}, false
}
