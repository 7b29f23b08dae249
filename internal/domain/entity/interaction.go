package entity

import (
	"fmt"
	"strings"
)

// DocumentElement names the widget document elements the lock façade touches.
type DocumentElement int

const (
	// ElementBody is the document <body>.
	ElementBody DocumentElement = iota
	// ElementViewport is <meta name="viewport"> inside <head>.
	ElementViewport
)

// String returns the element name for logs.
func (e DocumentElement) String() string {
	switch e {
	case ElementBody:
		return "body"
	case ElementViewport:
		return "viewport"
	default:
		return "unknown"
	}
}

// InteractionLock is a set of input behaviours that can be disabled together.
type InteractionLock uint8

const (
	// LockTextSelection disables text selection through an injected style rule.
	LockTextSelection InteractionLock = 1 << iota
	// LockContextMenu suppresses the context menu on the body.
	LockContextMenu
	// LockPinchZoom restricts zoom through the viewport meta tag.
	LockPinchZoom

	// AllInteractions is every lock, applied in declaration order.
	AllInteractions = LockTextSelection | LockContextMenu | LockPinchZoom
)

var interactionNames = map[string]InteractionLock{
	"text":         LockTextSelection,
	"selection":    LockTextSelection,
	"context":      LockContextMenu,
	"contextmenu":  LockContextMenu,
	"zoom":         LockPinchZoom,
	"pinch":        LockPinchZoom,
	"all":          AllInteractions,
	"text-select":  LockTextSelection,
	"context-menu": LockContextMenu,
	"pinch-zoom":   LockPinchZoom,
}

// Has reports whether l includes every lock in other.
func (l InteractionLock) Has(other InteractionLock) bool {
	return l&other == other && other != 0
}

// String lists the locks as a comma separated set.
func (l InteractionLock) String() string {
	var parts []string
	if l.Has(LockTextSelection) {
		parts = append(parts, "text")
	}
	if l.Has(LockContextMenu) {
		parts = append(parts, "context")
	}
	if l.Has(LockPinchZoom) {
		parts = append(parts, "zoom")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParseInteractionLocks parses "text,context,zoom" style lists.
// An empty string selects all locks.
func ParseInteractionLocks(s string) (InteractionLock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllInteractions, nil
	}
	var out InteractionLock
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		lock, ok := interactionNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown interaction %q (want text, context, zoom or all)", part)
		}
		out |= lock
	}
	return out, nil
}
