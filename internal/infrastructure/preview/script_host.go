// Package preview runs an authoring-tool environment script in an embedded
// JavaScript runtime. The script plays the part of the pages surrounding a
// widget in preview: it decides whether the preview marker is reachable and
// receives the actions the widget would otherwise send to a player.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"

	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
)

// DefaultEvalTimeout bounds every call into the script.
const DefaultEvalTimeout = 2 * time.Second

// prelude gives the script a browser-like global: window is the global
// object and, like a top level page, is its own parent until the script
// says otherwise.
const prelude = `
var window = globalThis;
var self = globalThis;
window.parent = window;
`

// probeScript checks the parent and grandparent windows for the authoring
// marker. Any access failure counts as "absent".
const probeScript = `(function () {
	try { if (typeof window.parent.lD !== 'undefined') return true; } catch (e) {}
	try { if (typeof window.parent.parent.lD !== 'undefined') return true; } catch (e) {}
	return false;
})()`

// handlerScript resolves the preview action handler on the parent window.
const handlerScript = `(function () {
	try {
		if (typeof parent.previewActionTrigger === 'function') {
			return [parent, parent.previewActionTrigger];
		}
	} catch (e) {}
	return undefined;
})()`

// ErrScriptTimeout is returned when the script exceeds the evaluation timeout.
var ErrScriptTimeout = errors.New("preview script timed out")

// ScriptHost implements port.HostProbe and port.PreviewHandler on top of a
// sobek runtime. The runtime is not goroutine safe, so every call holds mu.
type ScriptHost struct {
	mu      sync.Mutex
	vm      *sobek.Runtime
	name    string
	timeout time.Duration
}

// ScriptOption configures a ScriptHost.
type ScriptOption func(*ScriptHost)

// WithEvalTimeout overrides DefaultEvalTimeout.
func WithEvalTimeout(d time.Duration) ScriptOption {
	return func(h *ScriptHost) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewScriptHost evaluates src (named name in stack traces) after the
// browser prelude. console.log/warn/error are forwarded to the context logger.
func NewScriptHost(ctx context.Context, name, src string, opts ...ScriptOption) (*ScriptHost, error) {
	h := &ScriptHost{
		vm:      sobek.New(),
		name:    name,
		timeout: DefaultEvalTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.vm.SetFieldNameMapper(sobek.TagFieldNameMapper("json", true))

	log := logging.FromContext(ctx).With().
		Str("component", "preview-script").
		Str("script", name).
		Logger()
	if err := h.installConsole(log); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.run(ctx, "prelude.js", prelude); err != nil {
		return nil, fmt.Errorf("preview prelude: %w", err)
	}
	if _, err := h.run(ctx, name, src); err != nil {
		return nil, fmt.Errorf("load preview script %s: %w", name, err)
	}
	log.Debug().Msg("preview script loaded")
	return h, nil
}

// LoadScriptHost reads and evaluates a preview script from disk.
func LoadScriptHost(ctx context.Context, path string, opts ...ScriptOption) (*ScriptHost, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preview script: %w", err)
	}
	return NewScriptHost(ctx, filepath.Base(path), string(src), opts...)
}

// IsPreviewHost implements port.HostProbe.
func (h *ScriptHost) IsPreviewHost(ctx context.Context) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	v, err := h.run(ctx, "probe.js", probeScript)
	if err != nil {
		return false, err
	}
	return v.ToBoolean(), nil
}

// HandleAction implements port.PreviewHandler. The script handler is called
// as parent.previewActionTrigger(path, data, done). Values passed to done
// become the JSON body of a 200 response. done continuations run after the
// script returns, outside the runtime lock.
func (h *ScriptHost) HandleAction(ctx context.Context, path string, data any, done func(*entity.Response)) {
	log := logging.FromContext(ctx).With().
		Str("component", "preview-script").
		Str("script", h.name).
		Str("path", path).
		Logger()

	responses, err := h.invoke(ctx, path, data, done != nil)
	if err != nil {
		log.Warn().Err(err).Msg("preview handler failed")
		return
	}
	for _, resp := range responses {
		done(resp)
	}
}

func (h *ScriptHost) invoke(ctx context.Context, path string, data any, wantDone bool) ([]*entity.Response, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	resolved, err := h.run(ctx, "handler.js", handlerScript)
	if err != nil {
		return nil, err
	}
	if sobek.IsUndefined(resolved) || sobek.IsNull(resolved) {
		return nil, entity.ErrPreviewHandlerMissing
	}
	pair := resolved.ToObject(h.vm)
	this := pair.Get("0")
	fn, ok := sobek.AssertFunction(pair.Get("1"))
	if !ok {
		return nil, entity.ErrPreviewHandlerMissing
	}

	dataVal, err := h.toJS(data)
	if err != nil {
		return nil, err
	}

	var responses []*entity.Response
	doneVal := sobek.Undefined()
	if wantDone {
		doneVal = h.vm.ToValue(func(call sobek.FunctionCall) sobek.Value {
			resp, convErr := toResponse(call.Argument(0))
			if convErr != nil {
				panic(h.vm.NewGoError(convErr))
			}
			responses = append(responses, resp)
			return sobek.Undefined()
		})
	}

	stop := h.arm(ctx)
	defer stop()
	if _, err := fn(this, h.vm.ToValue(path), dataVal, doneVal); err != nil {
		return nil, h.wrap(err)
	}
	return responses, nil
}

// toJS passes data through JSON so the script sees the same shape the
// player would receive on the wire.
func (h *ScriptHost) toJS(data any) (sobek.Value, error) {
	if data == nil {
		return sobek.Undefined(), nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode preview data: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode preview data: %w", err)
	}
	return h.vm.ToValue(decoded), nil
}

func toResponse(v sobek.Value) (*entity.Response, error) {
	resp := &entity.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
	if v == nil || sobek.IsUndefined(v) || sobek.IsNull(v) {
		return resp, nil
	}
	body, err := json.Marshal(v.Export())
	if err != nil {
		return nil, fmt.Errorf("encode preview response: %w", err)
	}
	resp.Body = body
	return resp, nil
}

func (h *ScriptHost) installConsole(log zerolog.Logger) error {
	console := h.vm.NewObject()
	emit := func(level zerolog.Level) func(sobek.FunctionCall) sobek.Value {
		return func(call sobek.FunctionCall) sobek.Value {
			parts := make([]string, 0, len(call.Arguments))
			for _, arg := range call.Arguments {
				parts = append(parts, arg.String())
			}
			log.WithLevel(level).Msg(strings.Join(parts, " "))
			return sobek.Undefined()
		}
	}
	for name, level := range map[string]zerolog.Level{
		"log":   zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	} {
		if err := console.Set(name, emit(level)); err != nil {
			return err
		}
	}
	return h.vm.Set("console", console)
}

// run evaluates src under the timeout. Callers hold mu.
func (h *ScriptHost) run(ctx context.Context, name, src string) (sobek.Value, error) {
	stop := h.arm(ctx)
	defer stop()
	v, err := h.vm.RunScript(name, src)
	if err != nil {
		return nil, h.wrap(err)
	}
	return v, nil
}

// arm interrupts the runtime when the timeout elapses or ctx is cancelled.
func (h *ScriptHost) arm(ctx context.Context) func() {
	timer := time.AfterFunc(h.timeout, func() { h.vm.Interrupt(ErrScriptTimeout) })
	stopCtx := context.AfterFunc(ctx, func() { h.vm.Interrupt(ctx.Err()) })
	return func() {
		timer.Stop()
		stopCtx()
		h.vm.ClearInterrupt()
	}
}

func (h *ScriptHost) wrap(err error) error {
	var interrupted *sobek.InterruptedError
	if errors.As(err, &interrupted) {
		if cause, ok := interrupted.Value().(error); ok {
			return fmt.Errorf("%s: %w", h.name, cause)
		}
	}
	return fmt.Errorf("%s: %w", h.name, err)
}
