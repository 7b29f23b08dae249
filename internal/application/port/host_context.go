package port

import (
	"context"

	"github.com/bnema/xiboic/internal/domain/entity"
)

// HostContext is the environment a widget runs in. The live implementation
// talks to the player over HTTP, the preview implementation hands every
// call to the authoring tool and never reaches the network.
type HostContext interface {
	// Kind reports which routing strategy this host uses.
	Kind() entity.HostKind

	// Send issues one call and returns without waiting for it to complete.
	// Exactly one of the callback continuations fires later, at most once,
	// and only if it is set.
	Send(ctx context.Context, req entity.Request, cb entity.ResponseCallback)
}

// ConnectionConfigurer is implemented by hosts whose connection settings
// can be updated after construction.
type ConnectionConfigurer interface {
	// Configure merges update into the current connection settings.
	Configure(update entity.ConnectionConfig)

	// Connection returns a copy of the current settings.
	Connection() entity.ConnectionConfig
}
