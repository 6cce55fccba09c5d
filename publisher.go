package storex

import (
	"context"
	"time"
)

// Metadata identifies one applied transition for publishing.
type Metadata struct {
	StoreID   string    `json:"storeID" yaml:"storeID"`
	Seq       uint64    `json:"seq" yaml:"seq"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Notification bundles an applied action with the resulting state and its
// transition metadata.
type Notification[S, A any] struct {
	Action A
	State  S
	Meta   Metadata
}

// Publisher receives a Notification after every applied transition.
type Publisher[S, A any] interface {
	Publish(ctx context.Context, note Notification[S, A]) error
	Close() error
}

// ChannelPublisher forwards notifications to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher[S, A any] struct {
	ch chan<- Notification[S, A]
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher[S, A any](ch chan<- Notification[S, A]) *ChannelPublisher[S, A] {
	return &ChannelPublisher[S, A]{ch: ch}
}

func (p *ChannelPublisher[S, A]) Publish(ctx context.Context, note Notification[S, A]) error {
	select {
	case p.ch <- note:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher[S, A]) Close() error {
	close(p.ch)
	return nil
}
