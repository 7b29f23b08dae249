package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/xiboic/internal/application/usecase"
)

func TestDeferredQueue_BuffersUntilVisible(t *testing.T) {
	ctx := testContext()
	q := usecase.NewDeferredQueue(false)

	var order []string
	record := func(args ...any) {
		order = append(order, args[0].(string))
	}

	assert.True(t, q.Enqueue(ctx, record, "a"))
	assert.True(t, q.Enqueue(ctx, record, "b"))
	assert.True(t, q.Enqueue(ctx, record, "c"))
	assert.Empty(t, order, "nothing runs while hidden")
	assert.Equal(t, 3, q.Len())

	ran := q.MarkVisible(ctx)

	assert.Equal(t, 3, ran)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.IsVisible())
}

func TestDeferredQueue_PassThroughWhenVisible(t *testing.T) {
	ctx := testContext()
	q := usecase.NewDeferredQueue(true)

	var got []any
	buffered := q.Enqueue(ctx, func(args ...any) { got = args }, 1, "two")

	assert.False(t, buffered)
	assert.Equal(t, []any{1, "two"}, got)
	assert.Equal(t, 0, q.Len())
}

func TestDeferredQueue_MarkVisibleTwiceRunsOnce(t *testing.T) {
	ctx := testContext()
	q := usecase.NewDeferredQueue(false)

	calls := 0
	q.Enqueue(ctx, func(...any) { calls++ })

	q.MarkVisible(ctx)
	q.MarkVisible(ctx)

	assert.Equal(t, 1, calls)
}

func TestDeferredQueue_ReentrantEnqueueRunsImmediately(t *testing.T) {
	ctx := testContext()
	q := usecase.NewDeferredQueue(false)

	var order []string
	q.Enqueue(ctx, func(...any) {
		order = append(order, "outer")
		buffered := q.Enqueue(ctx, func(...any) { order = append(order, "inner") })
		assert.False(t, buffered)
	})
	q.Enqueue(ctx, func(...any) { order = append(order, "last") })

	q.MarkVisible(ctx)

	assert.Equal(t, []string{"outer", "inner", "last"}, order)
	assert.Equal(t, 0, q.Len())
}

func TestDeferredQueue_InvalidAndFailingEntries(t *testing.T) {
	ctx := testContext()
	q := usecase.NewDeferredQueue(false)

	var order []string
	q.Enqueue(ctx, func(...any) { order = append(order, "first") })
	assert.True(t, q.Enqueue(ctx, nil, "ignored"), "nil callbacks are still recorded")
	q.Enqueue(ctx, func(...any) { panic("widget bug") })
	q.Enqueue(ctx, func(...any) { order = append(order, "last") })
	require.Equal(t, 4, q.Len())

	ran := q.MarkVisible(ctx)

	assert.Equal(t, 2, ran)
	assert.Equal(t, []string{"first", "last"}, order)
}

func TestDeferredQueue_FlushKeepsVisibility(t *testing.T) {
	ctx := testContext()
	q := usecase.NewDeferredQueue(false)

	calls := 0
	q.Enqueue(ctx, func(...any) { calls++ })

	assert.Equal(t, 1, q.Flush(ctx))
	assert.Equal(t, 1, calls)
	assert.False(t, q.IsVisible())

	assert.True(t, q.Enqueue(ctx, func(...any) { calls++ }))
	assert.Equal(t, 1, calls)
}

func TestDeferredQueue_HiddenStartupScenario(t *testing.T) {
	ctx := testContext()
	visible := usecase.DetectVisibility("http://localhost/widget.html?visible=0")
	q := usecase.NewDeferredQueue(visible)

	started := false
	q.Enqueue(ctx, func(...any) { started = true })
	assert.False(t, started)

	q.MarkVisible(ctx)
	assert.True(t, started)
}
