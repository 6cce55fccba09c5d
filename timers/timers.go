// Package timers holds the timer-list action vocabulary and its reducer.
//
// State is a value type replaced wholesale on every transition; consumers
// never observe partial mutation. The item sequence is append-only.
package timers

import (
	"time"

	"github.com/comalice/storex"
)

// Item is a single timer entry. Immutable once appended.
type Item struct {
	Name     string        `json:"name" yaml:"name"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// State is the timer-list snapshot: a run flag plus the ordered item
// sequence.
type State struct {
	Running bool   `json:"running" yaml:"running"`
	Items   []Item `json:"items" yaml:"items"`
}

// Action is the tagged variant dispatched to the timers reducer.
type Action interface {
	isAction()
}

// Start sets the run flag.
type Start struct{}

// Stop clears the run flag.
type Stop struct{}

// AddItem appends one item to the sequence.
type AddItem struct {
	Item Item
}

func (Start) isAction()   {}
func (Stop) isAction()    {}
func (AddItem) isAction() {}

// Reduce is the timers transition function. Pure and total: actions it
// does not recognize return the state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Start:
		s.Running = true
		return s
	case Stop:
		s.Running = false
		return s
	case AddItem:
		// Copy on append so earlier snapshots never alias the new backing array.
		items := make([]Item, len(s.Items), len(s.Items)+1)
		copy(items, s.Items)
		s.Items = append(items, a.Item)
		return s
	default:
		return s
	}
}

// New creates a store over the timers reducer.
func New(initial State, opts ...storex.Option[State, Action]) (*storex.Store[State, Action], error) {
	return storex.New(initial, Reduce, opts...)
}
