package entity

import (
	"fmt"
	"net/http"
	"strings"
)

// Action is one of the logical operations a widget can ask the player to perform.
type Action string

const (
	// ActionInfo requests player information.
	ActionInfo Action = "info"
	// ActionTrigger fires a predefined trigger code on the player.
	ActionTrigger Action = "trigger"
	// ActionExpire ends the widget immediately.
	ActionExpire Action = "expire"
	// ActionExtend extends the widget duration by a number of seconds.
	ActionExtend Action = "extend"
	// ActionSetDuration replaces the widget duration.
	ActionSetDuration Action = "set-duration"
)

// Player endpoint paths.
const (
	PathInfo           = "/info"
	PathTrigger        = "/trigger"
	PathDurationExpire = "/duration/expire"
	PathDurationExtend = "/duration/extend"
	PathDurationSet    = "/duration/set"
)

// AllActions lists every action in a stable order.
func AllActions() []Action {
	return []Action{ActionInfo, ActionTrigger, ActionExpire, ActionExtend, ActionSetDuration}
}

// Path returns the player endpoint for the action.
func (a Action) Path() string {
	switch a {
	case ActionInfo:
		return PathInfo
	case ActionTrigger:
		return PathTrigger
	case ActionExpire:
		return PathDurationExpire
	case ActionExtend:
		return PathDurationExtend
	case ActionSetDuration:
		return PathDurationSet
	default:
		return ""
	}
}

// Method returns the HTTP method used for the action.
func (a Action) Method() string {
	if a == ActionInfo {
		return http.MethodGet
	}
	return http.MethodPost
}

// ParseAction maps a name to an Action.
func ParseAction(name string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, a := range AllActions() {
		if string(a) == normalized {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", name)
}

// ActionPayload is the JSON body sent for POST actions.
// Unset fields are omitted from the wire format.
type ActionPayload struct {
	ID       *TargetID `json:"id,omitempty"`
	Trigger  *string   `json:"trigger,omitempty"`
	Duration *int      `json:"duration,omitempty"`
}

// NewTriggerPayload builds the body for /trigger.
func NewTriggerPayload(id TargetID, code string) ActionPayload {
	return ActionPayload{ID: id.Ptr(), Trigger: &code}
}

// NewExpirePayload builds the body for /duration/expire.
func NewExpirePayload(id TargetID) ActionPayload {
	return ActionPayload{ID: id.Ptr()}
}

// NewDurationPayload builds the body for /duration/extend and /duration/set.
func NewDurationPayload(id TargetID, seconds int) ActionPayload {
	return ActionPayload{ID: id.Ptr(), Duration: &seconds}
}
