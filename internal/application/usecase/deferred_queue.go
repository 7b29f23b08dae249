package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
)

// QueuedFunc is widget work that should only run once the widget is on screen.
type QueuedFunc func(args ...any)

type queuedEntry struct {
	fn   QueuedFunc
	args []any
}

// DeferredQueue holds widget work until the player reports the widget as
// visible. It has two states: not visible (buffering) and visible (pass
// through). The transition is one way.
//
// A nil function is reported on the diagnostic channel (the context logger)
// and still recorded, matching the lenient behaviour widget authors rely on.
// It is skipped when the buffer is drained.
type DeferredQueue struct {
	mu      sync.Mutex
	visible bool
	entries []queuedEntry
}

// NewDeferredQueue creates a queue in the given initial state.
func NewDeferredQueue(visible bool) *DeferredQueue {
	return &DeferredQueue{visible: visible}
}

// IsVisible reports whether the queue is in pass-through mode.
func (q *DeferredQueue) IsVisible() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.visible
}

// Len returns the number of buffered entries.
func (q *DeferredQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Enqueue buffers fn with its arguments while the widget is hidden, or runs
// it immediately once the widget is visible. It reports whether fn was
// buffered.
func (q *DeferredQueue) Enqueue(ctx context.Context, fn QueuedFunc, args ...any) bool {
	if fn == nil {
		log := logging.FromContext(ctx).With().Str("component", "deferred-queue").Logger()
		log.Error().Err(entity.ErrInvalidCallback).Int("args", len(args)).Msg("invalid callback function")
	}

	q.mu.Lock()
	if !q.visible {
		q.entries = append(q.entries, queuedEntry{fn: fn, args: append([]any(nil), args...)})
		q.mu.Unlock()
		return true
	}
	q.mu.Unlock()

	q.run(ctx, []queuedEntry{{fn: fn, args: args}})
	return false
}

// MarkVisible switches the queue to pass-through and drains the buffer in
// submission order. The buffer is empty when MarkVisible returns; callbacks
// that enqueue more work see the visible state and run immediately instead
// of joining the current pass.
func (q *DeferredQueue) MarkVisible(ctx context.Context) int {
	q.mu.Lock()
	q.visible = true
	pending := q.entries
	q.entries = nil
	q.mu.Unlock()

	return q.run(ctx, pending)
}

// Flush drains the buffer without changing visibility.
func (q *DeferredQueue) Flush(ctx context.Context) int {
	q.mu.Lock()
	pending := q.entries
	q.entries = nil
	q.mu.Unlock()

	return q.run(ctx, pending)
}

// run invokes entries in order and returns how many ran without failing.
func (q *DeferredQueue) run(ctx context.Context, entries []queuedEntry) int {
	if len(entries) == 0 {
		return 0
	}
	log := logging.FromContext(ctx).With().Str("component", "deferred-queue").Logger()

	ran := 0
	for i, entry := range entries {
		if entry.fn == nil {
			log.Error().Err(entity.ErrInvalidCallback).Int("index", i).Msg("skipping queued entry")
			continue
		}
		if err := invokeQueued(entry); err != nil {
			log.Error().Err(err).Int("index", i).Msg("queued callback failed")
			continue
		}
		ran++
	}
	log.Debug().Int("entries", len(entries)).Int("ran", ran).Msg("queue drained")
	return ran
}

func invokeQueued(entry queuedEntry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("callback panicked: %v", r)
		}
	}()
	entry.fn(entry.args...)
	return nil
}
