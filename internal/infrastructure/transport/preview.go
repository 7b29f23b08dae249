package transport

import (
	"context"

	"github.com/bnema/xiboic/internal/application/port"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
)

// PreviewHost routes every call to an in-process preview handler and never
// touches the network. The error continuation is never used: a preview
// handler only reports success.
type PreviewHost struct {
	handler port.PreviewHandler
}

// NewPreviewHost creates a preview host. A nil handler is allowed; calls are
// then dropped with a warning.
func NewPreviewHost(handler port.PreviewHandler) *PreviewHost {
	return &PreviewHost{handler: handler}
}

// Kind implements port.HostContext.
func (p *PreviewHost) Kind() entity.HostKind {
	return entity.HostPreview
}

// HasHandler reports whether calls reach a handler or are dropped.
func (p *PreviewHost) HasHandler() bool {
	return p.handler != nil
}

// Send hands the path and the unencoded body to the preview handler.
func (p *PreviewHost) Send(ctx context.Context, req entity.Request, cb entity.ResponseCallback) {
	log := logging.FromContext(ctx).With().
		Str("component", "preview-transport").
		Str("path", req.Path).
		Logger()

	if p.handler == nil {
		log.Warn().Err(entity.ErrPreviewHandlerMissing).Msg("preview call dropped")
		return
	}

	var done func(*entity.Response)
	if cb.OnSuccess != nil {
		done = cb.Once().OnSuccess
	}

	log.Debug().Msg("routing call to preview handler")
	p.handler.HandleAction(ctx, req.Path, req.Body, done)
}
