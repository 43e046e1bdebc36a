package catalog

import "sort"

// SlotLayouts maps an artifact to the slot kinds it occupies when worn.
// The first slot is the primary one; combination artifacts list the slots
// their components lock.
type SlotLayouts map[string][]string

// TableKind implements registry.Table.
func (SlotLayouts) TableKind() string { return "slots" }

// Primary returns the primary slot kind of artifact.
func (s SlotLayouts) Primary(artifact string) (string, bool) {
	slots, ok := s[artifact]
	if !ok || len(slots) == 0 {
		return "", false
	}
	return slots[0], true
}

// Kinds returns the distinct primary slot kinds, sorted.
func (s SlotLayouts) Kinds() []string {
	seen := make(map[string]bool)
	for _, slots := range s {
		if len(slots) > 0 {
			seen[slots[0]] = true
		}
	}
	return sortedKeys(seen)
}

// StatModifier is the change an artifact applies to the primary attributes.
// Values are deltas on top of the hero's own attributes.
type StatModifier struct {
	Attack    int `json:"attack" yaml:"attack"`
	Defense   int `json:"defense" yaml:"defense"`
	Power     int `json:"power" yaml:"power"`
	Knowledge int `json:"knowledge" yaml:"knowledge"`
}

// Add returns the sum of two modifiers.
func (m StatModifier) Add(o StatModifier) StatModifier {
	return StatModifier{
		Attack:    m.Attack + o.Attack,
		Defense:   m.Defense + o.Defense,
		Power:     m.Power + o.Power,
		Knowledge: m.Knowledge + o.Knowledge,
	}
}

// StatModifiers maps artifacts to their attribute modifiers.
type StatModifiers map[string]StatModifier

// TableKind implements registry.Table.
func (StatModifiers) TableKind() string { return "stats" }

// Total sums the modifiers of the given artifacts, ignoring unknown ones.
func (s StatModifiers) Total(artifacts ...string) StatModifier {
	var total StatModifier
	for _, a := range artifacts {
		total = total.Add(s[a])
	}
	return total
}

// SpellGrants maps artifacts to the spells they make available.
type SpellGrants map[string][]string

// TableKind implements registry.Table.
func (SpellGrants) TableKind() string { return "spell_grants" }

// ComboSets maps combination artifacts to their component artifacts.
type ComboSets map[string][]string

// TableKind implements registry.Table.
func (ComboSets) TableKind() string { return "combos" }

// ComboOf returns the combination artifact that component belongs to.
func (c ComboSets) ComboOf(component string) (string, bool) {
	for _, combo := range sortedKeys(c) {
		for _, part := range c[combo] {
			if part == component {
				return combo, true
			}
		}
	}
	return "", false
}

// ValuableRanks maps artifacts to an importance rank. Higher is more valuable;
// artifacts not listed rank zero.
type ValuableRanks map[string]int

// TableKind implements registry.Table.
func (ValuableRanks) TableKind() string { return "valuables" }

// SlotCapacity maps slot kinds to the number of artifacts they hold.
type SlotCapacity map[string]int

// TableKind implements registry.Table.
func (SlotCapacity) TableKind() string { return "capacity" }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
