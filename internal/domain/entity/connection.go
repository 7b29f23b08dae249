package entity

import "time"

// DefaultRequestTimeout bounds every outbound player call.
const DefaultRequestTimeout = 5 * time.Second

// Header is a single request header. Order is preserved when sent.
type Header struct {
	Key   string `json:"key" mapstructure:"key" toml:"key"`
	Value string `json:"value" mapstructure:"value" toml:"value"`
}

// ConnectionConfig describes how to reach the player.
type ConnectionConfig struct {
	Protocol string
	HostName string
	Port     string
	Headers  []Header
	Timeout  time.Duration
}

// DefaultConnectionConfig returns an empty origin with the default timeout.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		Headers: []Header{},
		Timeout: DefaultRequestTimeout,
	}
}

// Origin returns protocol://hostName[:port], or "" when protocol or host is missing.
// An empty origin is not an error here: requests built from it are malformed
// and fail at the transport.
func (c ConnectionConfig) Origin() string {
	if c.Protocol == "" || c.HostName == "" {
		return ""
	}
	origin := c.Protocol + "://" + c.HostName
	if c.Port != "" {
		origin += ":" + c.Port
	}
	return origin
}

// URL joins the origin and a request path.
func (c ConnectionConfig) URL(path string) string {
	return c.Origin() + path
}

// EffectiveTimeout returns Timeout, falling back to DefaultRequestTimeout.
func (c ConnectionConfig) EffectiveTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.Timeout
}

// Merge applies an update the way the configure operation does:
// empty strings and a zero timeout keep the current value, a non-nil
// header slice replaces the current set wholesale (even when empty).
func (c ConnectionConfig) Merge(update ConnectionConfig) ConnectionConfig {
	merged := c
	if update.Protocol != "" {
		merged.Protocol = update.Protocol
	}
	if update.HostName != "" {
		merged.HostName = update.HostName
	}
	if update.Port != "" {
		merged.Port = update.Port
	}
	if update.Headers != nil {
		merged.Headers = CloneHeaders(update.Headers)
	}
	if update.Timeout > 0 {
		merged.Timeout = update.Timeout
	}
	return merged
}

// CloneHeaders copies a header slice, preserving nil.
func CloneHeaders(headers []Header) []Header {
	if headers == nil {
		return nil
	}
	out := make([]Header, len(headers))
	copy(out, headers)
	return out
}
