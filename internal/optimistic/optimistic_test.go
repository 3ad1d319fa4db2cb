package optimistic

import (
	"errors"
	"testing"
)

type counter struct {
	Value   int
	Touched bool
}

func TestApply(t *testing.T) {
	t.Run("successful send keeps the applied state", func(t *testing.T) {
		state := counter{Value: 5}
		err := Apply(&state,
			func(s *counter) {
				s.Value++
				s.Touched = true
			},
			func() error { return nil },
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Value != 6 || !state.Touched {
			t.Errorf("got %+v", state)
		}
	})

	t.Run("failed send restores the snapshot exactly", func(t *testing.T) {
		sendErr := errors.New("write failed")
		state := counter{Value: 5}
		err := Apply(&state,
			func(s *counter) {
				s.Value = 99
				s.Touched = true
			},
			func() error { return sendErr },
		)
		if !errors.Is(err, sendErr) {
			t.Fatalf("expected the send error back; got %v", err)
		}
		if state.Value != 5 || state.Touched {
			t.Errorf("state not rolled back: got %+v", state)
		}
	})

	t.Run("send observes the applied state", func(t *testing.T) {
		state := counter{Value: 1}
		var observed int
		err := Apply(&state,
			func(s *counter) { s.Value = 2 },
			func() error {
				observed = state.Value
				return nil
			},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if observed != 2 {
			t.Errorf("send saw value %d; expected 2", observed)
		}
	})

	t.Run("rollback then retry starts from the snapshot", func(t *testing.T) {
		state := counter{Value: 5}
		attempt := 0
		apply := func(s *counter) { s.Value++ }
		send := func() error {
			attempt++
			if attempt == 1 {
				return errors.New("transient")
			}
			return nil
		}
		if err := Apply(&state, apply, send); err == nil {
			t.Fatal("expected first attempt to fail")
		}
		if err := Apply(&state, apply, send); err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
		// One increment total: the failed attempt left no residue
		if state.Value != 6 {
			t.Errorf("expected 6; got %d", state.Value)
		}
	})
}
