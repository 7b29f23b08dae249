// Package styles provides reusable lipgloss-based CLI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher
	IconArrow     = "" // arrow right

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconConfig  = "" // config

	IconPlay   = "" // play (live player)
	IconEye    = "" // eye (visible)
	IconLock   = "" // lock
	IconUnlock = "" // unlock
	IconClock  = "" // clock
)
