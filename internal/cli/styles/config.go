package styles

import (
	"fmt"
	"strings"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderSource shows which file the configuration came from.
func (r *ConfigRenderer) RenderSource(path string) string {
	if path == "" {
		return fmt.Sprintf("%s %s",
			r.theme.MutedBadge(IconConfig+" defaults"),
			r.theme.Subtle.Render("no config file found, run 'xiboic config init'"),
		)
	}
	return fmt.Sprintf("%s %s",
		r.theme.AccentBadge(IconConfig+" config"),
		r.theme.Normal.Render(path),
	)
}

// RenderTOML prints the effective configuration.
func (r *ConfigRenderer) RenderTOML(content string) string {
	return r.theme.Box.Render(strings.TrimRight(content, "\n"))
}

// RenderWritten confirms a file was written.
func (r *ConfigRenderer) RenderWritten(kind, path string) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(kind+" written to"),
		r.theme.Highlight.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
