package port

import (
	"context"

	"github.com/bnema/xiboic/internal/domain/entity"
)

// PreviewHandler receives actions while the widget is rendered by an
// authoring tool instead of a player. data is the request body before any
// encoding (nil for GET actions). done may be nil when the caller did not
// ask for a success continuation.
type PreviewHandler interface {
	HandleAction(ctx context.Context, path string, data any, done func(*entity.Response))
}

// PreviewHandlerFunc adapts a function to the PreviewHandler interface.
type PreviewHandlerFunc func(ctx context.Context, path string, data any, done func(*entity.Response))

// HandleAction calls f(ctx, path, data, done).
func (f PreviewHandlerFunc) HandleAction(ctx context.Context, path string, data any, done func(*entity.Response)) {
	f(ctx, path, data, done)
}

// HostProbe inspects the hosting environment for an authoring tool.
// Implementations may fail when the environment cannot be inspected;
// callers treat any error as "not a preview".
type HostProbe interface {
	IsPreviewHost(ctx context.Context) (bool, error)
}

// HostProbeFunc adapts a function to the HostProbe interface.
type HostProbeFunc func(ctx context.Context) (bool, error)

// IsPreviewHost calls f(ctx).
func (f HostProbeFunc) IsPreviewHost(ctx context.Context) (bool, error) {
	return f(ctx)
}
