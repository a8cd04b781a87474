// Package scheduler runs delayed one-shot tasks tied to an owner's lifetime.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// OneShot runs a function once after a delay unless it is stopped first.
// Once Stop returns, the function is guaranteed not to start.
type OneShot struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	fired   bool
	done    chan struct{}
}

// Schedule arms fn to run after delay. Cancelling ctx has the same effect as Stop.
func Schedule(ctx context.Context, delay time.Duration, fn func()) *OneShot {
	o := &OneShot{done: make(chan struct{})}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.timer = time.AfterFunc(delay, func() {
		o.mu.Lock()
		if o.stopped {
			o.mu.Unlock()
			return
		}
		o.fired = true
		close(o.done)
		o.mu.Unlock()

		fn()
	})

	go func() {
		select {
		case <-ctx.Done():
			o.Stop()
		case <-o.done:
		}
	}()

	return o
}

// Stop cancels the task. It reports whether the call prevented the task
// from running; false means it had already fired or was already stopped.
func (o *OneShot) Stop() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.stopped || o.fired {
		return false
	}
	o.stopped = true
	o.timer.Stop()
	close(o.done)
	return true
}

// Done is closed once the task has either fired or been stopped
func (o *OneShot) Done() <-chan struct{} {
	return o.done
}
