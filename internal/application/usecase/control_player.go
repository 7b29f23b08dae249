package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/xiboic/internal/application/port"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
)

// ActionOptions are the per-call options shared by every player action.
type ActionOptions struct {
	// TargetID overrides the default target identifier when set.
	TargetID *entity.TargetID
	// Callback receives the outcome. Missing continuations are ignored.
	Callback entity.ResponseCallback
}

// ActionArgs carries the action specific arguments for Dispatch.
type ActionArgs struct {
	Code     string
	Duration int
}

// ControlPlayerUseCase turns logical widget actions into requests on the
// current host. It never validates trigger codes or durations: the player
// (or preview handler) is the only judge of those values.
type ControlPlayerUseCase struct {
	host          port.HostContext
	defaultTarget entity.TargetID
}

// NewControlPlayerUseCase creates the action façade.
// defaultTarget is the identifier captured from the hosting page at startup.
func NewControlPlayerUseCase(host port.HostContext, defaultTarget entity.TargetID) *ControlPlayerUseCase {
	return &ControlPlayerUseCase{
		host:          host,
		defaultTarget: defaultTarget,
	}
}

// DefaultTargetID returns the identifier used when a call does not name one.
func (uc *ControlPlayerUseCase) DefaultTargetID() entity.TargetID {
	return uc.defaultTarget
}

// Host returns the host context actions are routed to.
func (uc *ControlPlayerUseCase) Host() port.HostContext {
	return uc.host
}

// Info requests player information with GET /info.
func (uc *ControlPlayerUseCase) Info(ctx context.Context, opts ActionOptions) {
	uc.send(ctx, entity.ActionInfo, entity.TargetID{}, nil, opts)
}

// Trigger fires a predefined trigger code with POST /trigger.
func (uc *ControlPlayerUseCase) Trigger(ctx context.Context, code string, opts ActionOptions) {
	id := entity.ResolveTargetID(opts.TargetID, uc.defaultTarget)
	uc.send(ctx, entity.ActionTrigger, id, entity.NewTriggerPayload(id, code), opts)
}

// ExpireNow ends the widget with POST /duration/expire.
func (uc *ControlPlayerUseCase) ExpireNow(ctx context.Context, opts ActionOptions) {
	id := entity.ResolveTargetID(opts.TargetID, uc.defaultTarget)
	uc.send(ctx, entity.ActionExpire, id, entity.NewExpirePayload(id), opts)
}

// ExtendWidgetDuration adds seconds to the widget duration with POST /duration/extend.
func (uc *ControlPlayerUseCase) ExtendWidgetDuration(ctx context.Context, seconds int, opts ActionOptions) {
	id := entity.ResolveTargetID(opts.TargetID, uc.defaultTarget)
	uc.send(ctx, entity.ActionExtend, id, entity.NewDurationPayload(id, seconds), opts)
}

// SetWidgetDuration replaces the widget duration with POST /duration/set.
func (uc *ControlPlayerUseCase) SetWidgetDuration(ctx context.Context, seconds int, opts ActionOptions) {
	id := entity.ResolveTargetID(opts.TargetID, uc.defaultTarget)
	uc.send(ctx, entity.ActionSetDuration, id, entity.NewDurationPayload(id, seconds), opts)
}

// Dispatch runs an action selected at runtime (CLI, config driven callers).
func (uc *ControlPlayerUseCase) Dispatch(ctx context.Context, action entity.Action, args ActionArgs, opts ActionOptions) error {
	switch action {
	case entity.ActionInfo:
		uc.Info(ctx, opts)
	case entity.ActionTrigger:
		uc.Trigger(ctx, args.Code, opts)
	case entity.ActionExpire:
		uc.ExpireNow(ctx, opts)
	case entity.ActionExtend:
		uc.ExtendWidgetDuration(ctx, args.Duration, opts)
	case entity.ActionSetDuration:
		uc.SetWidgetDuration(ctx, args.Duration, opts)
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
	return nil
}

func (uc *ControlPlayerUseCase) send(ctx context.Context, action entity.Action, id entity.TargetID, body any, opts ActionOptions) {
	if id.IsSet() {
		ctx = logging.WithTargetID(ctx, id.String())
	}
	log := logging.FromContext(ctx).With().
		Str("component", "control-player").
		Str("action", string(action)).
		Str("host", uc.host.Kind().String()).
		Logger()

	req := entity.NewActionRequest(action, body)
	log.Debug().Str("path", req.Path).Str("method", req.Method).Msg("sending action")

	uc.host.Send(ctx, req, opts.Callback)
}
