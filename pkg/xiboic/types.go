package xiboic

import (
	"github.com/bnema/xiboic/internal/application/port"
	"github.com/bnema/xiboic/internal/application/usecase"
	"github.com/bnema/xiboic/internal/domain/entity"
)

type (
	// TargetID identifies the widget or region an action applies to.
	TargetID = entity.TargetID
	// Header is a single request header.
	Header = entity.Header
	// ConnectionConfig describes how to reach the player.
	ConnectionConfig = entity.ConnectionConfig
	// Response is a completed player (or preview) response.
	Response = entity.Response
	// StatusError is returned for non-2xx player responses.
	StatusError = entity.StatusError
	// Action names a player action.
	Action = entity.Action
	// InteractionLock selects input behaviours to lock.
	InteractionLock = entity.InteractionLock
	// QueuedFunc is work deferred until the widget is visible.
	QueuedFunc = usecase.QueuedFunc

	// HostContext routes actions to a player or a preview handler.
	HostContext = port.HostContext
	// PreviewHandler receives actions in preview mode.
	PreviewHandler = port.PreviewHandler
	// PreviewHandlerFunc adapts a function to PreviewHandler.
	PreviewHandlerFunc = port.PreviewHandlerFunc
	// HostProbe detects an authoring tool.
	HostProbe = port.HostProbe
	// HostProbeFunc adapts a function to HostProbe.
	HostProbeFunc = port.HostProbeFunc
	// WidgetDocument is the page the interaction locks edit.
	WidgetDocument = port.WidgetDocument
)

// Actions.
const (
	ActionInfo        = entity.ActionInfo
	ActionTrigger     = entity.ActionTrigger
	ActionExpire      = entity.ActionExpire
	ActionExtend      = entity.ActionExtend
	ActionSetDuration = entity.ActionSetDuration
)

// Interaction locks.
const (
	LockTextSelection = entity.LockTextSelection
	LockContextMenu   = entity.LockContextMenu
	LockPinchZoom     = entity.LockPinchZoom
	AllInteractions   = entity.AllInteractions
)

// Errors reported through OnError or returned by blocking calls.
var (
	ErrTransport = entity.ErrTransport
	ErrTimeout   = entity.ErrTimeout
	// ErrPreviewHandlerMissing is returned by Do in preview mode when no
	// handler was configured.
	ErrPreviewHandlerMissing = entity.ErrPreviewHandlerMissing
)

// TargetIDFromInt returns a numeric target identifier.
func TargetIDFromInt(id int64) TargetID { return entity.TargetIDFromInt(id) }

// TargetIDFromString returns a string target identifier.
func TargetIDFromString(id string) TargetID { return entity.TargetIDFromString(id) }

// ParseTargetID treats all-digit strings as numeric identifiers.
func ParseTargetID(s string) TargetID { return entity.ParseTargetID(s) }
