package styles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/xiboic/internal/domain/entity"
)

const maxBodyPreview = 160

// ActionRenderer renders the outcome of player actions.
type ActionRenderer struct {
	theme *Theme
}

// NewActionRenderer creates a new ActionRenderer.
func NewActionRenderer(theme *Theme) *ActionRenderer {
	return &ActionRenderer{theme: theme}
}

// RenderResult renders one completed action on a single line.
func (r *ActionRenderer) RenderResult(label string, resp *entity.Response, err error) string {
	if err != nil {
		var statusErr *entity.StatusError
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("%s %s  %s  %s",
				r.theme.ErrorStyle.Render(IconX),
				r.theme.Title.Render(label),
				r.theme.ErrorStyle.Render(fmt.Sprintf("HTTP %d", statusErr.StatusCode())),
				r.theme.Subtle.Render(previewBody(statusErr.Response.Body)),
			)
		}
		return fmt.Sprintf("%s %s  %s",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Title.Render(label),
			r.theme.ErrorStyle.Render(err.Error()),
		)
	}

	status := "done"
	var body string
	if resp != nil {
		status = fmt.Sprintf("HTTP %d", resp.StatusCode)
		body = previewBody(resp.Body)
	}
	line := fmt.Sprintf("%s %s  %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Title.Render(label),
		r.theme.SuccessStyle.Render(status),
	)
	if body != "" {
		line += "  " + r.theme.Subtle.Render(body)
	}
	return line
}

// RenderContext summarises where actions will be routed.
func (r *ActionRenderer) RenderContext(ec entity.ExecutionContext, target entity.TargetID, origin string) string {
	host := r.theme.AccentBadge(IconPlay + " " + ec.HostKind().String())

	visibility := r.theme.MutedBadge(IconEye + " hidden")
	if ec.Visible {
		visibility = r.theme.AccentBadge(IconEye + " visible")
	}

	targetText := "unset"
	if target.IsSet() {
		targetText = target.String()
	}

	parts := []string{host, visibility, r.theme.Subtle.Render("target " + targetText)}
	if ec.HostKind() == entity.HostLive {
		if origin == "" {
			origin = "no origin"
		}
		parts = append(parts, r.theme.Subtle.Render(IconArrow+" "+origin))
	}
	return strings.Join(parts, " ")
}

// previewBody compacts JSON and truncates long bodies.
func previewBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var buf bytes.Buffer
	text := string(body)
	if json.Valid(body) && json.Compact(&buf, body) == nil {
		text = buf.String()
	}
	text = strings.TrimSpace(text)
	if len(text) > maxBodyPreview {
		text = text[:maxBodyPreview] + "..."
	}
	return text
}
