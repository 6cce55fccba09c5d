// Options for configuring Store instances via the functional options pattern.
package storex

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option applies configuration to a Store.
type Option[S, A any] func(*Store[S, A])

// WithID sets a stable store identifier used in notification metadata and
// log lines. The default is a generated UUID.
func WithID[S, A any](id string) Option[S, A] {
	return func(s *Store[S, A]) {
		s.id = id
	}
}

// WithPublisher configures a sink that receives a Notification after every
// applied transition.
func WithPublisher[S, A any](p Publisher[S, A]) Option[S, A] {
	return func(s *Store[S, A]) {
		s.publisher = p
	}
}

// WithLogger enables debug logging of applied transitions.
func WithLogger[S, A any](l *slog.Logger) Option[S, A] {
	return func(s *Store[S, A]) {
		s.logger = l
	}
}

func newStoreID() string {
	return uuid.NewString()
}
