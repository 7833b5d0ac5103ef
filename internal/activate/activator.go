package activate

import (
	"github.com/singlehead/singlehead/internal/logger"
	"github.com/singlehead/singlehead/internal/niri"
	"github.com/singlehead/singlehead/internal/snapshot"
	"github.com/singlehead/singlehead/internal/state"
)

// Activator turns the chosen output on and every other output off, then
// records the choice in the state store.
type Activator struct {
	client niri.Client
	store  *state.Store
	log    *logger.Logger
}

// New constructs an Activator over the given compositor client and store.
func New(client niri.Client, store *state.Store, log *logger.Logger) *Activator {
	return &Activator{client: client, store: store, log: log}
}

// Apply fans one command per output out to the compositor: On for chosen,
// Off for the rest. The first command failure aborts the run; commands
// already sent are not rolled back, the operator repairs by re-running.
// The state write happens only after every command succeeded. A failed write
// leaves the compositor switched but the persisted name stale, which is
// surfaced as fatal.
func (a *Activator) Apply(snap snapshot.Snapshot, chosen string) error {
	for _, out := range snap.Outputs() {
		action := niri.OutputOff
		if out.Name == chosen {
			action = niri.OutputOn
		}

		a.log.WithFields(map[string]any{
			"output": out.Name,
			"action": string(action),
		}).Debug("sending output command")

		if err := a.client.SetOutput(out.Name, action); err != nil {
			return err
		}
	}

	if err := a.store.Write(chosen); err != nil {
		return err
	}

	a.log.WithFields(map[string]any{"output": chosen}).Info("active output set")
	return nil
}
