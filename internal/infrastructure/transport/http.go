// Package transport implements the two HostContext strategies: live calls
// to the player over HTTP and in-process calls to a preview handler.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
)

// ContentTypeJSON is sent with every POST.
const ContentTypeJSON = "application/json;charset=UTF-8"

// maxResponseBody caps how much of a player response is buffered.
const maxResponseBody = 4 << 20

// HTTPHost sends actions to the player's local HTTP surface.
// Calls are asynchronous and independent: there is no ordering between
// two in-flight calls and no retry.
type HTTPHost struct {
	mu     sync.RWMutex
	conn   entity.ConnectionConfig
	client HTTPDoer

	inflight sync.WaitGroup
}

// HTTPOption configures an HTTPHost.
type HTTPOption func(*HTTPHost)

// WithHTTPDoer replaces the HTTP client. The per-call timeout is applied
// through the request context either way.
func WithHTTPDoer(doer HTTPDoer) HTTPOption {
	return func(h *HTTPHost) {
		if doer != nil {
			h.client = doer
		}
	}
}

// NewHTTPHost creates a live host. conn is merged over the default
// connection settings.
func NewHTTPHost(conn entity.ConnectionConfig, opts ...HTTPOption) *HTTPHost {
	h := &HTTPHost{
		conn: entity.DefaultConnectionConfig().Merge(conn),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.client == nil {
		h.client = &http.Client{}
	}
	return h
}

// Kind implements port.HostContext.
func (h *HTTPHost) Kind() entity.HostKind {
	return entity.HostLive
}

// Configure merges update into the current settings. Calls already in
// flight keep the settings they started with.
func (h *HTTPHost) Configure(update entity.ConnectionConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conn = h.conn.Merge(update)
}

// Connection returns a copy of the current settings.
func (h *HTTPHost) Connection() entity.ConnectionConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	conn := h.conn
	conn.Headers = entity.CloneHeaders(h.conn.Headers)
	return conn
}

// Send implements port.HostContext. It returns immediately; the callback
// fires from another goroutine once the call completes or times out.
// Cancelling ctx does not abort the call, only the timeout does.
func (h *HTTPHost) Send(ctx context.Context, req entity.Request, cb entity.ResponseCallback) {
	conn := h.Connection()
	cb = cb.Once()

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		h.roundTrip(context.WithoutCancel(ctx), conn, req, cb)
	}()
}

// Wait blocks until every call started so far has delivered its outcome.
func (h *HTTPHost) Wait() {
	h.inflight.Wait()
}

func (h *HTTPHost) roundTrip(ctx context.Context, conn entity.ConnectionConfig, req entity.Request, cb entity.ResponseCallback) {
	log := logging.FromContext(ctx).With().
		Str("component", "player-transport").
		Str("method", req.Method).
		Str("path", req.Path).
		Logger()

	ctx, cancel := context.WithTimeout(ctx, conn.EffectiveTimeout())
	defer cancel()

	httpReq, err := buildRequest(ctx, conn, req)
	if err != nil {
		log.Debug().Err(err).Msg("request could not be built")
		cb.Fail(fmt.Errorf("%w: %w", entity.ErrTransport, err))
		return
	}

	httpResp, err := h.client.Do(httpReq)
	if err != nil {
		err = classify(ctx, err)
		log.Debug().Err(err).Msg("player call failed")
		cb.Fail(err)
		return
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		err = classify(ctx, err)
		log.Debug().Err(err).Msg("player response could not be read")
		cb.Fail(err)
		return
	}

	resp := &entity.Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header.Clone(),
		Body:       body,
	}
	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("player responded")

	if !resp.Success() {
		cb.Fail(&entity.StatusError{Response: resp})
		return
	}
	cb.Succeed(resp)
}

func buildRequest(ctx context.Context, conn entity.ConnectionConfig, req entity.Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, conn.URL(req.Path), body)
	if err != nil {
		return nil, err
	}

	if method == http.MethodPost {
		httpReq.Header.Set("Content-Type", ContentTypeJSON)
	}

	headers := conn.Headers
	if req.Headers != nil {
		headers = req.Headers
	}
	for _, hdr := range headers {
		if hdr.Key == "" {
			continue
		}
		httpReq.Header.Add(hdr.Key, hdr.Value)
	}
	return httpReq, nil
}

// encodeBody sends strings and byte slices verbatim and JSON-encodes every
// other value, scalars included. A nil body sends nothing.
func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return bytes.NewReader(data), nil
}

func classify(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", entity.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", entity.ErrTransport, err)
}
