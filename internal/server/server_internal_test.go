package server

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_ServeFailureSkipsStopping(t *testing.T) {
	// Arrange.
	console := new(bytes.Buffer)
	s, err := New(NewOptions(zap.NewNop(), "Pallet Town", "127.0.0.1:0", 1, func(*echo.Echo) {}, console))
	require.NoError(t, err)

	var (
		mu     sync.Mutex
		states []State
	)
	s.stateHook = func(st State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, st)
	}

	require.NoError(t, s.Listen())
	require.NoError(t, s.ln.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Action.
	err = s.Run(ctx)

	// Assert.
	require.Error(t, err)
	assert.Equal(t, StateStopped, s.State())
	assert.NotContains(t, console.String(), "Server stopped.")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateBound, StateServing, StateStopped}, states)
}

func TestRun_InterruptPassesThroughStopping(t *testing.T) {
	s, err := New(NewOptions(zap.NewNop(), "Pallet Town", "127.0.0.1:0", 1, func(*echo.Echo) {}, new(bytes.Buffer)))
	require.NoError(t, err)

	var (
		mu     sync.Mutex
		states []State
	)
	s.stateHook = func(st State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, st)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateBound, StateServing, StateStopping, StateStopped}, states)
}
