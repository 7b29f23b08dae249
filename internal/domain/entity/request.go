package entity

import (
	"encoding/json"
	"net/http"
	"sync"
)

// Request is the per-call descriptor handed to a HostContext.
type Request struct {
	Path   string
	Method string
	// Headers overrides the configured header set when non-nil.
	Headers []Header
	// Body is sent as-is when it is a string or byte slice. Any other
	// value, numbers and booleans included, is JSON-encoded. Nil sends
	// no body.
	Body any
}

// NewActionRequest builds the request for an action and its payload.
func NewActionRequest(action Action, body any) Request {
	return Request{
		Path:   action.Path(),
		Method: action.Method(),
		Body:   body,
	}
}

// Response is the outcome of a completed call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode <= 299
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// ResponseCallback carries the two continuations of a call.
// Either may be nil, in which case that outcome is silently dropped.
type ResponseCallback struct {
	OnSuccess func(*Response)
	OnError   func(error)
}

// Succeed invokes OnSuccess when set.
func (cb ResponseCallback) Succeed(resp *Response) {
	if cb.OnSuccess != nil {
		cb.OnSuccess(resp)
	}
}

// Fail invokes OnError when set.
func (cb ResponseCallback) Fail(err error) {
	if cb.OnError != nil {
		cb.OnError(err)
	}
}

// Once returns a callback where at most one continuation fires, at most once,
// across both fields and any number of goroutines.
func (cb ResponseCallback) Once() ResponseCallback {
	var once sync.Once
	out := ResponseCallback{}
	if cb.OnSuccess != nil {
		out.OnSuccess = func(resp *Response) {
			once.Do(func() { cb.OnSuccess(resp) })
		}
	} else {
		out.OnSuccess = func(*Response) { once.Do(func() {}) }
	}
	if cb.OnError != nil {
		out.OnError = func(err error) {
			once.Do(func() { cb.OnError(err) })
		}
	} else {
		out.OnError = func(error) { once.Do(func() {}) }
	}
	return out
}

// Result is the channel form of a completed call: exactly one of the fields is set.
type Result struct {
	Response *Response
	Err      error
}
