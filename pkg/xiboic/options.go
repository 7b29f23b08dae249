package xiboic

import (
	"github.com/rs/zerolog"

	"github.com/bnema/xiboic/internal/application/usecase"
	"github.com/bnema/xiboic/internal/infrastructure/transport"
)

type options struct {
	host           HostContext
	previewHandler PreviewHandler
	probe          HostProbe
	location       string
	targetID       TargetID
	document       WidgetDocument
	logger         *zerolog.Logger
	httpDoer       transport.HTTPDoer
	connection     ConnectionConfig
}

// Option configures a Client.
type Option func(*options)

// WithHostContext selects the routing strategy explicitly. Detection still
// runs for visibility, but the preview flag then follows the host's kind.
func WithHostContext(host HostContext) Option {
	return func(o *options) { o.host = host }
}

// WithPreviewHandler sets the handler used when the widget is in preview.
func WithPreviewHandler(handler PreviewHandler) Option {
	return func(o *options) { o.previewHandler = handler }
}

// WithHostProbe sets how the client detects an authoring tool.
// Without a probe the client assumes a live player.
func WithHostProbe(probe HostProbe) Option {
	return func(o *options) { o.probe = probe }
}

// WithLocation sets the widget URL used for visibility detection.
func WithLocation(rawURL string) Option {
	return func(o *options) { o.location = rawURL }
}

// WithTargetID sets the default target identifier.
func WithTargetID(id TargetID) Option {
	return func(o *options) { o.targetID = id }
}

// WithDocument sets the page the interaction locks edit.
func WithDocument(doc WidgetDocument) Option {
	return func(o *options) { o.document = doc }
}

// WithLogger attaches a logger to every operation.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = &logger }
}

// WithHTTPClient replaces the HTTP client of the live host.
func WithHTTPClient(doer transport.HTTPDoer) Option {
	return func(o *options) { o.httpDoer = doer }
}

// WithConnection sets the initial player connection.
func WithConnection(conn ConnectionConfig) Option {
	return func(o *options) { o.connection = conn }
}

// ActionOption adjusts a single action call.
type ActionOption func(*usecase.ActionOptions)

// Target overrides the default target identifier for one call.
func Target(id TargetID) ActionOption {
	return func(o *usecase.ActionOptions) { o.TargetID = id.Ptr() }
}

// OnSuccess sets the success continuation.
func OnSuccess(fn func(*Response)) ActionOption {
	return func(o *usecase.ActionOptions) { o.Callback.OnSuccess = fn }
}

// OnError sets the error continuation.
func OnError(fn func(error)) ActionOption {
	return func(o *usecase.ActionOptions) { o.Callback.OnError = fn }
}

func buildActionOptions(opts []ActionOption) usecase.ActionOptions {
	var ao usecase.ActionOptions
	for _, opt := range opts {
		opt(&ao)
	}
	return ao
}
