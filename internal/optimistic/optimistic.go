// Package optimistic implements the apply-then-confirm mutation protocol used
// for like, vote and follow toggles: the local state change is applied before
// the backing store confirms it, and rolled back to the exact pre-action
// snapshot if the store reports failure.
package optimistic

// Apply performs an optimistic mutation of state. It snapshots *state by
// value, runs apply to produce the new local state, then runs send. If send
// returns an error, *state is restored to the snapshot — not re-toggled —
// so that rapid successive actions cannot corrupt the state, and the error
// is returned to the caller. Mutations are never retried.
//
// S must be a plain value type: the snapshot is a shallow copy, so any
// pointer, slice or map fields would be shared between the snapshot and
// the live state.
func Apply[S any](state *S, apply func(*S), send func() error) error {
	snapshot := *state
	apply(state)
	err := send()
	if err != nil {
		*state = snapshot
		return err
	}
	return nil
}
