package state_test

import (
	"testing"
	"todos/transport/http/state"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle(t *testing.T) {
	lifecycle := state.New()

	assert.Equal(t, state.ServerStateStarting, lifecycle.Get())
	assert.False(t, lifecycle.ShuttingDown())

	lifecycle.Set(state.ServerStateReady)
	assert.Equal(t, "ready", lifecycle.Get().String())
	assert.False(t, lifecycle.ShuttingDown())

	lifecycle.Set(state.ServerStateInGracePeriod)
	assert.True(t, lifecycle.ShuttingDown())

	lifecycle.Set(state.ServerStateInCleanupPeriod)
	assert.True(t, lifecycle.ShuttingDown())
	assert.Equal(t, "cleanup period", lifecycle.Get().String())
}

func TestServerState_StringUnknown(t *testing.T) {
	assert.Equal(t, "unknown", state.ServerState(42).String())
}
