package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/xiboic/internal/domain/entity"
)

// LockRenderer renders the interaction lock summary.
type LockRenderer struct {
	theme *Theme
}

// NewLockRenderer creates a new LockRenderer.
func NewLockRenderer(theme *Theme) *LockRenderer {
	return &LockRenderer{theme: theme}
}

// Render lists each applied lock and where the document was written.
func (r *LockRenderer) Render(locks entity.InteractionLock, lock bool, output string) string {
	icon, verb := IconLock, "locked"
	if !lock {
		icon, verb = IconUnlock, "unlocked"
	}

	names := []struct {
		lock entity.InteractionLock
		name string
	}{
		{entity.LockTextSelection, "text selection"},
		{entity.LockContextMenu, "context menu"},
		{entity.LockPinchZoom, "pinch zoom"},
	}

	lines := make([]string, 0, len(names)+1)
	for _, n := range names {
		if !locks.Has(n.lock) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.theme.Highlight.Render(icon),
			r.theme.Normal.Render(n.name),
			r.theme.Subtle.Render(verb),
		))
	}
	if output != "" {
		lines = append(lines, r.theme.Subtle.Render(IconArrow+" "+output))
	}
	return strings.Join(lines, "\n")
}
