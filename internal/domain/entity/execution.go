package entity

// HostKind selects where actions are routed.
type HostKind int

const (
	// HostLive sends actions to the player over HTTP.
	HostLive HostKind = iota
	// HostPreview hands actions to the authoring tool in-process.
	HostPreview
)

// String returns a lowercase name for logs.
func (k HostKind) String() string {
	switch k {
	case HostLive:
		return "live"
	case HostPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// ExecutionContext holds the flags computed once at startup.
// Visible can later flip to true; Preview never changes after detection.
type ExecutionContext struct {
	Visible bool
	Preview bool
}

// HostKind maps the preview flag to a routing strategy.
func (c ExecutionContext) HostKind() HostKind {
	if c.Preview {
		return HostPreview
	}
	return HostLive
}
