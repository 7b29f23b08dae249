package transport_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/xiboic/internal/application/usecase"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/infrastructure/transport"
	mock_transport "github.com/bnema/xiboic/internal/infrastructure/transport/mocks"
	"github.com/bnema/xiboic/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

type recorded struct {
	method  string
	path    string
	body    string
	headers http.Header
}

func newPlayer(t *testing.T, status int, reply string) (*httptest.Server, <-chan recorded) {
	t.Helper()
	calls := make(chan recorded, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		calls <- recorded{method: r.Method, path: r.URL.Path, body: string(data), headers: r.Header.Clone()}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func connectionFor(t *testing.T, srv *httptest.Server) entity.ConnectionConfig {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return entity.ConnectionConfig{
		Protocol: u.Scheme,
		HostName: u.Hostname(),
		Port:     u.Port(),
	}
}

func send(t *testing.T, host *transport.HTTPHost, req entity.Request) (*entity.Response, error) {
	t.Helper()
	cb, results := usecase.ResultChannel()
	host.Send(testContext(), req, cb)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return usecase.Await(ctx, results)
}

func TestHTTPHost_PostCarriesJSONAndHeaders(t *testing.T) {
	srv, calls := newPlayer(t, http.StatusOK, `{"ok":true}`)
	conn := connectionFor(t, srv)
	conn.Headers = []entity.Header{{Key: "X-Widget", Value: "clock"}, {Key: "X-Trace", Value: "1"}}
	host := transport.NewHTTPHost(conn)

	id := entity.TargetIDFromInt(42)
	resp, err := send(t, host, entity.NewActionRequest(entity.ActionExpire, entity.NewExpirePayload(id)))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))

	call := <-calls
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/duration/expire", call.path)
	assert.JSONEq(t, `{"id":42}`, call.body)
	assert.Equal(t, transport.ContentTypeJSON, call.headers.Get("Content-Type"))
	assert.Equal(t, "clock", call.headers.Get("X-Widget"))
	assert.Equal(t, "1", call.headers.Get("X-Trace"))
}

func TestHTTPHost_GetSendsNoBody(t *testing.T) {
	srv, calls := newPlayer(t, http.StatusOK, `{}`)
	host := transport.NewHTTPHost(connectionFor(t, srv))

	_, err := send(t, host, entity.NewActionRequest(entity.ActionInfo, nil))
	require.NoError(t, err)

	call := <-calls
	assert.Equal(t, http.MethodGet, call.method)
	assert.Equal(t, "/info", call.path)
	assert.Empty(t, call.body)
	assert.Empty(t, call.headers.Get("Content-Type"))
}

func TestHTTPHost_PerCallHeadersReplaceConfigured(t *testing.T) {
	srv, calls := newPlayer(t, http.StatusOK, `{}`)
	conn := connectionFor(t, srv)
	conn.Headers = []entity.Header{{Key: "X-Configured", Value: "yes"}}
	host := transport.NewHTTPHost(conn)

	req := entity.NewActionRequest(entity.ActionInfo, nil)
	req.Headers = []entity.Header{{Key: "X-Override", Value: "1"}}
	_, err := send(t, host, req)
	require.NoError(t, err)

	call := <-calls
	assert.Empty(t, call.headers.Get("X-Configured"))
	assert.Equal(t, "1", call.headers.Get("X-Override"))
}

func TestHTTPHost_ConfiguredContentTypeKeepsJSON(t *testing.T) {
	srv, calls := newPlayer(t, http.StatusOK, `{}`)
	conn := connectionFor(t, srv)
	conn.Headers = []entity.Header{{Key: "Content-Type", Value: "text/plain"}}
	host := transport.NewHTTPHost(conn)

	_, err := send(t, host, entity.NewActionRequest(entity.ActionExpire, entity.NewExpirePayload(entity.TargetIDFromInt(1))))
	require.NoError(t, err)

	call := <-calls
	assert.Equal(t, []string{transport.ContentTypeJSON, "text/plain"}, call.headers.Values("Content-Type"))
}

func TestHTTPHost_ScalarBodiesAreJSONEncoded(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{name: "number", body: 5, want: "5"},
		{name: "bool", body: true, want: "true"},
		{name: "string verbatim", body: "raw", want: "raw"},
		{name: "bytes verbatim", body: []byte(`{"id":1}`), want: `{"id":1}`},
		{name: "nil", body: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := newPlayer(t, http.StatusOK, `{}`)
			host := transport.NewHTTPHost(connectionFor(t, srv))

			_, err := send(t, host, entity.Request{Path: "/duration/set", Method: http.MethodPost, Body: tt.body})
			require.NoError(t, err)

			call := <-calls
			assert.Equal(t, tt.want, call.body)
		})
	}
}

func TestHTTPHost_NonSuccessStatusGoesToError(t *testing.T) {
	for _, status := range []int{http.StatusMovedPermanently, http.StatusBadRequest, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv, _ := newPlayer(t, status, `{"error":"nope"}`)
			host := transport.NewHTTPHost(connectionFor(t, srv))

			resp, err := send(t, host, entity.NewActionRequest(entity.ActionTrigger, entity.NewTriggerPayload(entity.TargetIDFromInt(1), "x")))

			assert.Nil(t, resp)
			var statusErr *entity.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, status, statusErr.StatusCode())
			assert.JSONEq(t, `{"error":"nope"}`, string(statusErr.Response.Body))
		})
	}
}

func TestHTTPHost_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	conn := connectionFor(t, srv)
	conn.Timeout = 50 * time.Millisecond
	host := transport.NewHTTPHost(conn)

	_, err := send(t, host, entity.NewActionRequest(entity.ActionInfo, nil))

	require.ErrorIs(t, err, entity.ErrTimeout)
}

func TestHTTPHost_MissingOriginFailsAsTransportError(t *testing.T) {
	host := transport.NewHTTPHost(entity.ConnectionConfig{})

	_, err := send(t, host, entity.NewActionRequest(entity.ActionInfo, nil))

	require.ErrorIs(t, err, entity.ErrTransport)
}

func TestHTTPHost_ConfigureMerges(t *testing.T) {
	host := transport.NewHTTPHost(entity.ConnectionConfig{Protocol: "http", HostName: "localhost", Port: "9696"})

	host.Configure(entity.ConnectionConfig{Port: "9797"})
	conn := host.Connection()
	assert.Equal(t, "http://localhost:9797", conn.Origin())

	host.Configure(entity.ConnectionConfig{Headers: []entity.Header{{Key: "A", Value: "1"}}})
	host.Configure(entity.ConnectionConfig{Headers: []entity.Header{{Key: "B", Value: "2"}}})
	assert.Equal(t, []entity.Header{{Key: "B", Value: "2"}}, host.Connection().Headers)
	assert.Equal(t, entity.DefaultRequestTimeout, host.Connection().Timeout)
}

func TestHTTPHost_MissingCallbacksAreIgnored(t *testing.T) {
	srv, calls := newPlayer(t, http.StatusInternalServerError, ``)
	host := transport.NewHTTPHost(connectionFor(t, srv))

	host.Send(testContext(), entity.NewActionRequest(entity.ActionInfo, nil), entity.ResponseCallback{})
	host.Wait()

	assert.Len(t, calls, 1)
}

func TestHTTPHost_ConcurrentCallsAreIndependent(t *testing.T) {
	srv, _ := newPlayer(t, http.StatusOK, `{}`)
	host := transport.NewHTTPHost(connectionFor(t, srv))

	var mu sync.Mutex
	successes := 0
	for i := 0; i < 10; i++ {
		host.Send(testContext(), entity.NewActionRequest(entity.ActionInfo, nil), entity.ResponseCallback{
			OnSuccess: func(*entity.Response) {
				mu.Lock()
				successes++
				mu.Unlock()
			},
		})
	}
	host.Wait()

	assert.Equal(t, 10, successes)
}

func TestHTTPHost_WithHTTPDoer(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_transport.NewMockHTTPDoer(ctrl)

	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "http://player.local:9696/duration/set", req.URL.String())
		data, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"abc","duration":60}`, string(data))
		return &http.Response{
			StatusCode: http.StatusNoContent,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil
	})

	host := transport.NewHTTPHost(
		entity.ConnectionConfig{Protocol: "http", HostName: "player.local", Port: "9696"},
		transport.WithHTTPDoer(doer),
	)

	resp, err := send(t, host, entity.NewActionRequest(entity.ActionSetDuration,
		entity.NewDurationPayload(entity.TargetIDFromString("abc"), 60)))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHTTPHost_DoerErrorIsTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_transport.NewMockHTTPDoer(ctrl)
	doer.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

	host := transport.NewHTTPHost(
		entity.ConnectionConfig{Protocol: "http", HostName: "localhost"},
		transport.WithHTTPDoer(doer),
	)

	_, err := send(t, host, entity.NewActionRequest(entity.ActionInfo, nil))

	require.ErrorIs(t, err, entity.ErrTransport)
	assert.NotErrorIs(t, err, entity.ErrTimeout)
}
