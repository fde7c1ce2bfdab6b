// Package state tracks where the HTTP server is in its lifecycle so the
// health endpoint can stop advertising readiness during shutdown.
package state

import "sync/atomic"

type ServerState int32

const (
	ServerStateStarting ServerState = iota
	ServerStateReady
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

func (s ServerState) String() string {
	switch s {
	case ServerStateStarting:
		return "starting"
	case ServerStateReady:
		return "ready"
	case ServerStateInGracePeriod:
		return "grace period"
	case ServerStateInCleanupPeriod:
		return "cleanup period"
	default:
		return "unknown"
	}
}

type Lifecycle struct {
	current atomic.Int32
}

func New() *Lifecycle {
	return &Lifecycle{}
}

func (l *Lifecycle) Set(s ServerState) {
	l.current.Store(int32(s))
}

func (l *Lifecycle) Get() ServerState {
	return ServerState(l.current.Load())
}

// ShuttingDown reports whether a termination signal has been received.
func (l *Lifecycle) ShuttingDown() bool {
	return l.Get() >= ServerStateInGracePeriod
}
