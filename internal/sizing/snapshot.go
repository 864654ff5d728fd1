package sizing

import "solar-sizing/internal/model"

// Snapshot is a read-only view of one sizing session: the inputs and
// the result derived from them. The recommendation collaborator
// consumes snapshots; it never mutates them, and nothing here parses
// what it returns.
type Snapshot struct {
	Loads  []model.LoadEntry
	Config model.SystemConfig
	Result model.SizingResult
}

// TakeSnapshot sizes the system and bundles inputs with the result.
func TakeSnapshot(loads []model.LoadEntry, cfg model.SystemConfig) (Snapshot, error) {
	res, err := Size(loads, cfg)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Loads:  make([]model.LoadEntry, len(loads)),
		Config: cfg,
		Result: res,
	}
	copy(snap.Loads, loads)
	return snap, nil
}
