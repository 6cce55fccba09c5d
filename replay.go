package storex

import (
	"context"
	"sync"
)

// Replay applies actions to initial in order and returns the final state.
// With a pure reducer the result is deterministic for a given sequence.
func Replay[S, A any](initial S, reducer Reducer[S, A], actions []A) S {
	state := initial
	for _, action := range actions {
		state = reducer(state, action)
	}
	return state
}

// Recorder is a Publisher that journals applied actions in application
// order, so a session can be inspected or replayed from a known initial
// state. Wire it with WithPublisher.
type Recorder[S, A any] struct {
	mu      sync.Mutex
	actions []A
}

// NewRecorder creates an empty Recorder.
func NewRecorder[S, A any]() *Recorder[S, A] {
	return &Recorder[S, A]{}
}

func (r *Recorder[S, A]) Publish(ctx context.Context, note Notification[S, A]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, note.Action)
	return nil
}

func (r *Recorder[S, A]) Close() error { return nil }

// Actions returns a copy of the journal.
func (r *Recorder[S, A]) Actions() []A {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]A, len(r.actions))
	copy(actions, r.actions)
	return actions
}

// Replay re-applies the journal to initial with reducer.
func (r *Recorder[S, A]) Replay(initial S, reducer Reducer[S, A]) S {
	return Replay(initial, reducer, r.Actions())
}
