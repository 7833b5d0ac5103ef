package snapshot

import (
	apperrors "github.com/singlehead/singlehead/pkg/errors"
)

// RestoreOrFirst chooses the output to activate at session start: the
// persisted name if it still exists, else the first active output, else the
// first output overall. An empty persisted name means no prior state.
func RestoreOrFirst(snap Snapshot, persisted string) (string, error) {
	if snap.Len() == 0 {
		return "", apperrors.NewEmptySnapshotError()
	}

	if persisted != "" && snap.Contains(persisted) {
		return persisted, nil
	}
	if idx, ok := snap.firstActive(); ok {
		return snap.outputs[idx].Name, nil
	}
	return snap.outputs[0].Name, nil
}

// AdvanceToNext chooses the output after the currently active one, wrapping
// at the end of the order. With no active output the first output is chosen.
// Persisted state is deliberately not consulted: "next" is defined relative
// to what is observably active right now.
func AdvanceToNext(snap Snapshot) (string, error) {
	if snap.Len() == 0 {
		return "", apperrors.NewEmptySnapshotError()
	}

	idx, ok := snap.firstActive()
	if !ok {
		return snap.outputs[0].Name, nil
	}
	return snap.outputs[(idx+1)%len(snap.outputs)].Name, nil
}
