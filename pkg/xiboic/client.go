package xiboic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/xiboic/internal/application/port"
	"github.com/bnema/xiboic/internal/application/usecase"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/infrastructure/transport"
	"github.com/bnema/xiboic/internal/logging"
)

// ErrNoDocument is returned by the lock methods when no WidgetDocument was set.
var ErrNoDocument = errors.New("no widget document configured")

// Client is the widget side of the player protocol. It is safe for
// concurrent use, except for the lock methods which share one document.
type Client struct {
	mu       sync.RWMutex
	preview  bool
	explicit bool
	host     port.HostContext
	live     *transport.HTTPHost
	player   *usecase.ControlPlayerUseCase

	queue    *usecase.DeferredQueue
	detector *usecase.DetectContextUseCase
	locks    *usecase.LockInteractionsUseCase

	previewHandler PreviewHandler
	probe          HostProbe
	location       string
	targetID       TargetID
	logger         *zerolog.Logger
}

// New builds a client and runs context detection once: visibility from the
// location's visible parameter, preview from the host probe.
func New(opts ...Option) *Client {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		detector:       usecase.NewDetectContextUseCase(),
		previewHandler: o.previewHandler,
		probe:          o.probe,
		location:       o.location,
		targetID:       o.targetID,
		logger:         o.logger,
	}
	if o.document != nil {
		c.locks = usecase.NewLockInteractionsUseCase(o.document)
	}

	var httpOpts []transport.HTTPOption
	if o.httpDoer != nil {
		httpOpts = append(httpOpts, transport.WithHTTPDoer(o.httpDoer))
	}
	c.live = transport.NewHTTPHost(o.connection, httpOpts...)

	ctx := c.context(context.Background())
	detected := c.detector.Execute(ctx, usecase.DetectContextInput{
		LocationURL: o.location,
		Probe:       o.probe,
	})
	c.queue = usecase.NewDeferredQueue(detected.Visible)

	if o.host != nil {
		c.explicit = true
		c.host = o.host
		c.preview = o.host.Kind() == entity.HostPreview
	} else {
		c.preview = detected.Preview
		c.host = c.selectHost()
	}
	c.player = usecase.NewControlPlayerUseCase(c.host, c.targetID)
	return c
}

func (c *Client) selectHost() port.HostContext {
	if c.preview {
		return transport.NewPreviewHost(c.previewHandler)
	}
	return c.live
}

func (c *Client) context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.logger != nil {
		ctx = logging.WithContext(ctx, *c.logger)
	}
	return ctx
}

func (c *Client) controller() *usecase.ControlPlayerUseCase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.player
}

// Config merges update into the live connection settings. Empty fields
// keep their current value; a non-nil header list replaces the current one.
func (c *Client) Config(update ConnectionConfig) {
	c.mu.RLock()
	host := c.host
	c.mu.RUnlock()

	if cfg, ok := host.(port.ConnectionConfigurer); ok && host != port.HostContext(c.live) {
		cfg.Configure(update)
	}
	c.live.Configure(update)
}

// Connection returns the current live connection settings.
func (c *Client) Connection() ConnectionConfig {
	return c.live.Connection()
}

// CheckVisible re-reads the visible parameter of the location. A visible
// result switches the queue to pass-through and runs what it buffered;
// visibility never goes back to hidden.
func (c *Client) CheckVisible(ctx context.Context) bool {
	ctx = c.context(ctx)
	if usecase.DetectVisibility(c.location) {
		c.queue.MarkVisible(ctx)
	}
	return c.queue.IsVisible()
}

// CheckIsPreview probes the host again. Once detected, preview mode is
// permanent for the client; a client built with WithHostContext never
// changes its strategy.
func (c *Client) CheckIsPreview(ctx context.Context) bool {
	ctx = c.context(ctx)

	c.mu.RLock()
	already, explicit := c.preview, c.explicit
	c.mu.RUnlock()
	if already || explicit {
		return already
	}

	if !usecase.DetectPreview(ctx, c.probe) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.preview {
		c.preview = true
		c.host = c.selectHost()
		c.player = usecase.NewControlPlayerUseCase(c.host, c.targetID)
	}
	return true
}

// IsVisible reports the current visibility flag.
func (c *Client) IsVisible() bool {
	return c.queue.IsVisible()
}

// IsPreview reports whether actions go to the preview handler.
func (c *Client) IsPreview() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preview
}

// TargetID returns the default target identifier.
func (c *Client) TargetID() TargetID {
	return c.targetID
}

// Info requests player information.
func (c *Client) Info(ctx context.Context, opts ...ActionOption) {
	c.controller().Info(c.context(ctx), buildActionOptions(opts))
}

// Trigger fires a trigger code.
func (c *Client) Trigger(ctx context.Context, code string, opts ...ActionOption) {
	c.controller().Trigger(c.context(ctx), code, buildActionOptions(opts))
}

// ExpireNow ends the widget.
func (c *Client) ExpireNow(ctx context.Context, opts ...ActionOption) {
	c.controller().ExpireNow(c.context(ctx), buildActionOptions(opts))
}

// ExtendWidgetDuration adds seconds to the widget duration.
func (c *Client) ExtendWidgetDuration(ctx context.Context, seconds int, opts ...ActionOption) {
	c.controller().ExtendWidgetDuration(c.context(ctx), seconds, buildActionOptions(opts))
}

// SetWidgetDuration replaces the widget duration, in seconds.
func (c *Client) SetWidgetDuration(ctx context.Context, seconds int, opts ...ActionOption) {
	c.controller().SetWidgetDuration(c.context(ctx), seconds, buildActionOptions(opts))
}

// Do runs an action and waits for its outcome or for ctx to end. Any
// OnSuccess/OnError options are replaced by the wait. Calls on a host other
// than the live player are bounded by the connection timeout, since a
// preview handler may never report back. A preview host without a handler
// fails at once with ErrPreviewHandlerMissing.
func (c *Client) Do(ctx context.Context, action Action, code string, seconds int, opts ...ActionOption) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c.mu.RLock()
	host, player := c.host, c.player
	c.mu.RUnlock()

	if h, ok := host.(interface{ HasHandler() bool }); ok && !h.HasHandler() {
		return nil, ErrPreviewHandlerMissing
	}

	cb, results := usecase.ResultChannel()
	ao := buildActionOptions(opts)
	ao.Callback = cb

	args := usecase.ActionArgs{Code: code, Duration: seconds}
	if err := player.Dispatch(c.context(ctx), action, args, ao); err != nil {
		return nil, err
	}
	if host == port.HostContext(c.live) {
		return usecase.Await(ctx, results)
	}

	timeout := c.live.Connection().EffectiveTimeout()
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	resp, err := usecase.Await(waitCtx, results)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: no response from %s host within %s", ErrTimeout, host.Kind(), timeout)
	}
	return resp, err
}

// Wait blocks until every live call started so far has completed.
func (c *Client) Wait() {
	c.live.Wait()
}

// AddToQueue runs fn now if the widget is visible, otherwise buffers it
// until SetVisible. It reports whether fn was buffered.
func (c *Client) AddToQueue(ctx context.Context, fn QueuedFunc, args ...any) bool {
	return c.queue.Enqueue(c.context(ctx), fn, args...)
}

// RunQueue runs and clears the buffer without changing visibility.
func (c *Client) RunQueue(ctx context.Context) int {
	return c.queue.Flush(c.context(ctx))
}

// SetVisible marks the widget visible and runs the buffer in order.
func (c *Client) SetVisible(ctx context.Context) int {
	return c.queue.MarkVisible(c.context(ctx))
}

// QueueLen returns the number of buffered functions.
func (c *Client) QueueLen() int {
	return c.queue.Len()
}

// LockTextSelection disables (or re-enables) text selection.
func (c *Client) LockTextSelection(ctx context.Context, lock bool) error {
	if c.locks == nil {
		return ErrNoDocument
	}
	return c.locks.LockTextSelection(c.context(ctx), lock)
}

// LockContextMenu disables (or re-enables) the context menu.
func (c *Client) LockContextMenu(ctx context.Context, lock bool) error {
	if c.locks == nil {
		return ErrNoDocument
	}
	return c.locks.LockContextMenu(c.context(ctx), lock)
}

// LockPinchZoom disables (or re-enables) pinch zoom.
func (c *Client) LockPinchZoom(ctx context.Context, lock bool) error {
	if c.locks == nil {
		return ErrNoDocument
	}
	return c.locks.LockPinchZoom(c.context(ctx), lock)
}

// LockAllInteractions applies every lock in order: text selection,
// context menu, pinch zoom.
func (c *Client) LockAllInteractions(ctx context.Context, lock bool) error {
	if c.locks == nil {
		return ErrNoDocument
	}
	return c.locks.LockAll(c.context(ctx), lock)
}
