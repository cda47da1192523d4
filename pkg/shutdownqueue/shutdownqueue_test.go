package shutdownqueue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	mu.Lock()
	defer mu.Unlock()

	tasks = nil
	closed = false
}

func TestShutdown_LIFOOrder(t *testing.T) {
	reset()

	var order []int

	for i := 1; i <= 3; i++ {
		Add(func(context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, Shutdown(context.Background()))
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestShutdown_Idempotent(t *testing.T) {
	reset()

	runs := 0

	Add(func(context.Context) error {
		runs++
		return nil
	})

	require.NoError(t, Shutdown(context.Background()))
	require.NoError(t, Shutdown(context.Background()))
	assert.Equal(t, 1, runs)

	// Late registration after shutdown is dropped.
	Add(func(context.Context) error {
		runs++
		return nil
	})
	require.NoError(t, Shutdown(context.Background()))
	assert.Equal(t, 1, runs)
}

func TestShutdown_JoinsErrors(t *testing.T) {
	reset()

	errA := errors.New("a failed")
	errB := errors.New("b failed")

	Add(func(context.Context) error { return errA })
	Add(func(context.Context) error { return nil })
	Add(func(context.Context) error { return errB })

	err := Shutdown(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestShutdown_CanceledContextStopsDrain(t *testing.T) {
	reset()

	ran := false

	Add(func(context.Context) error {
		ran = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Shutdown(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}
