// Package storex provides a reducer-driven state container: a single
// immutable state value, a pure transition function, and synchronous
// subscriber notification after every applied transition.
//
//go:generate go test ./... -race
package storex

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Reducer is the pure transition function mapping (state, action) to the
// next state. It must not mutate its arguments and must be total: actions
// it does not recognize return the state unchanged.
type Reducer[S, A any] func(S, A) S

// Listener receives the new state after every applied transition.
type Listener[S any] func(S)

// Store owns a single state value and applies transitions to it.
// Thread-safe for concurrent Dispatch/State/Subscribe from multiple
// goroutines; concurrent dispatch rounds serialize, and each caller returns
// only after its own action has settled. Listeners run outside the lock; a
// Dispatch issued from inside a listener callback is queued and drained by
// the outer Dispatch rather than applied reentrantly.
type Store[S, A any] struct {
	mu        sync.Mutex
	state     S
	reducer   Reducer[S, A]
	seq       uint64
	listeners []*subscription[S]
	queue     []A
	draining  bool
	drainer   uint64 // goroutine running the current dispatch round

	// dispatchMu serializes whole dispatch rounds (apply + notify + drain)
	// so a concurrent Dispatch blocks until its own action has settled.
	dispatchMu sync.Mutex

	id        string
	publisher Publisher[S, A]
	logger    *slog.Logger
}

type subscription[S any] struct {
	fn      Listener[S]
	removed bool
}

// New creates a Store holding initial and applying transitions with reducer.
func New[S, A any](initial S, reducer Reducer[S, A], opts ...Option[S, A]) (*Store[S, A], error) {
	if reducer == nil {
		return nil, errors.New("nil reducer")
	}

	s := &Store[S, A]{
		state:   initial,
		reducer: reducer,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = newStoreID()
	}
	return s, nil
}

// ID returns the store identifier.
func (s *Store[S, A]) ID() string { return s.id }

// State returns the current snapshot. No side effects.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Seq returns the number of transitions applied so far.
func (s *Store[S, A]) Seq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Subscribe registers fn to be invoked synchronously after every applied
// transition, in registration order. The returned function unsubscribes;
// it is idempotent and safe to call concurrently.
func (s *Store[S, A]) Subscribe(fn Listener[S]) (unsubscribe func()) {
	sub := &subscription[S]{fn: fn}

	s.mu.Lock()
	s.listeners = append(s.listeners, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub.removed {
			return
		}
		sub.removed = true
		for i, cur := range s.listeners {
			if cur == sub {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch applies one transition and notifies all subscribers before
// returning. It never fails. Concurrent Dispatch calls from other
// goroutines block until their own action has been applied. A Dispatch
// issued from inside a listener callback is the exception: it is enqueued
// and applied after the current notification round completes, and its
// returned state predates the queued action.
func (s *Store[S, A]) Dispatch(action A) S {
	gid := goroutineID()

	s.mu.Lock()
	if s.draining && s.drainer == gid {
		// Reentrant call from a listener: queue for the outer drain.
		// Blocking on dispatchMu here would deadlock.
		s.queue = append(s.queue, action)
		cur := s.state
		s.mu.Unlock()
		return cur
	}
	s.mu.Unlock()

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.draining = true
	s.drainer = gid
	s.mu.Unlock()

	next := s.apply(action)
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.drainer = 0
			s.mu.Unlock()
			return next
		}
		queued := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
		next = s.apply(queued)
	}
}

// goroutineID returns the current goroutine's ID, used to tell a listener's
// reentrant Dispatch apart from contention between goroutines.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// First line is "goroutine <id> [<state>]:".
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// apply runs a single transition: reduce, swap, notify, publish.
func (s *Store[S, A]) apply(action A) S {
	s.mu.Lock()
	next := s.reducer(s.state, action)
	s.state = next
	s.seq++
	seq := s.seq
	subs := make([]*subscription[S], len(s.listeners))
	copy(subs, s.listeners)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("transition applied", "store", s.id, "seq", seq)
	}

	for _, sub := range subs {
		s.mu.Lock()
		skip := sub.removed
		s.mu.Unlock()
		if skip {
			// Unsubscribed by an earlier listener in this round.
			continue
		}
		sub.fn(next)
	}

	if s.publisher != nil {
		note := Notification[S, A]{
			Action: action,
			State:  next,
			Meta: Metadata{
				StoreID:   s.id,
				Seq:       seq,
				Timestamp: time.Now(),
			},
		}
		if err := s.publisher.Publish(context.Background(), note); err != nil && s.logger != nil {
			s.logger.Warn("publish failed", "store", s.id, "seq", seq, "err", err)
		}
	}

	return next
}
