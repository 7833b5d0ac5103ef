package snapshot

import (
	"sort"

	"github.com/singlehead/singlehead/internal/niri"
)

// Output is one display output known to the compositor at query time.
type Output struct {
	Name   string
	Active bool
}

// Snapshot is a point-in-time view of all outputs, ordered lexicographically
// by name. The order is part of the contract: cycling relies on a stable
// "next" relation, so the provider's map order must never leak through.
type Snapshot struct {
	outputs []Output
}

// New builds a snapshot from the given outputs. Names are unique within a
// snapshot; duplicates collapse to the last entry seen.
func New(outputs []Output) Snapshot {
	byName := make(map[string]Output, len(outputs))
	for _, out := range outputs {
		byName[out.Name] = out
	}

	uniq := make([]Output, 0, len(byName))
	for _, out := range byName {
		uniq = append(uniq, out)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i].Name < uniq[j].Name })

	return Snapshot{outputs: uniq}
}

// FromNiri builds a snapshot from the compositor's outputs reply. An output
// is active when it has an assigned mode.
func FromNiri(outputs map[string]niri.Output) Snapshot {
	list := make([]Output, 0, len(outputs))
	for name, out := range outputs {
		list = append(list, Output{Name: name, Active: out.Active()})
	}
	return New(list)
}

// Len returns the number of outputs in the snapshot.
func (s Snapshot) Len() int {
	return len(s.outputs)
}

// Outputs returns the outputs in lexicographic name order.
func (s Snapshot) Outputs() []Output {
	return append([]Output(nil), s.outputs...)
}

// Contains reports whether an output with the given name is present.
func (s Snapshot) Contains(name string) bool {
	for _, out := range s.outputs {
		if out.Name == name {
			return true
		}
	}
	return false
}

// firstActive returns the index of the first active output in order. With
// more than one output reporting active, the lexicographically first wins;
// activation normalizes the set back to a single active output anyway.
func (s Snapshot) firstActive() (int, bool) {
	for i, out := range s.outputs {
		if out.Active {
			return i, true
		}
	}
	return 0, false
}
