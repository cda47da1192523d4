// Package shutdownqueue drains registered cleanup tasks in LIFO order
// at process exit: HTTP server first, then session checkpointing, then
// the store.
package shutdownqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Task is a shutdown function. It should honor ctx.
type Task func(ctx context.Context) error

var (
	mu     sync.Mutex
	tasks  []Task
	closed bool
)

// Add registers a task to run on Shutdown. Registration after shutdown
// has started is ignored.
func Add(t Task) {
	if t == nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	if closed {
		return
	}

	tasks = append(tasks, t)
}

// Shutdown runs all registered tasks in reverse registration order and
// returns their errors joined. It is idempotent; a canceled ctx stops
// the drain early.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	drained := tasks
	tasks = nil
	closed = true
	mu.Unlock()

	var errs []error

	for i := len(drained) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			errs = append(errs, fmt.Errorf("shutdown canceled: %w", ctx.Err()))
			break
		}

		err := drained[i](ctx)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
