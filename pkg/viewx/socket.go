package viewx

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Socket represents one live connection to a view. A socket starts in the
// pre-stabilized state covering the initial static render; once the client
// completes the handshake and the connection goes live it is marked
// connected and stays connected for its lifetime.
type Socket struct {
	// ID uniquely identifies the connection
	ID string

	// View is the configuration of the owning view type
	View Config

	// Component optionally names the nested component handling an event
	Component string

	connected atomic.Bool
	parent    *Socket
}

// NewSocket creates a pre-stabilized socket for the given view.
func NewSocket(view Config) *Socket {
	return &Socket{
		ID:   uuid.New().String(),
		View: view,
	}
}

// Connected reports whether the connection has completed its initial
// handshake and is live.
func (s *Socket) Connected() bool {
	if s.parent != nil {
		return s.parent.Connected()
	}
	return s.connected.Load()
}

// MarkConnected transitions the socket into its stabilized state.
// Safe to call from the connection goroutine at any time.
func (s *Socket) MarkConnected() {
	if s.parent != nil {
		s.parent.MarkConnected()
		return
	}
	s.connected.Store(true)
}

// ForComponent returns a socket scoped to a nested component.
// The returned socket shares the connection state of the receiver.
func (s *Socket) ForComponent(component string) *Socket {
	root := s
	if s.parent != nil {
		root = s.parent
	}
	return &Socket{
		ID:        s.ID,
		View:      s.View,
		Component: component,
		parent:    root,
	}
}
