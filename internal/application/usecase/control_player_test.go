package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/xiboic/internal/application/port/mocks"
	"github.com/bnema/xiboic/internal/application/usecase"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
)

func newControlPlayer(t *testing.T, defaultTarget entity.TargetID) (*usecase.ControlPlayerUseCase, *mocks.MockHostContext) {
	t.Helper()
	host := mocks.NewMockHostContext(t)
	host.EXPECT().Kind().Return(entity.HostLive).Maybe()
	return usecase.NewControlPlayerUseCase(host, defaultTarget), host
}

func captureRequest(host *mocks.MockHostContext) *entity.Request {
	var captured entity.Request
	host.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, req entity.Request, _ entity.ResponseCallback) {
			captured = req
		}).
		Once()
	return &captured
}

func bodyJSON(t *testing.T, req *entity.Request) string {
	t.Helper()
	if req.Body == nil {
		return ""
	}
	data, err := json.Marshal(req.Body)
	require.NoError(t, err)
	return string(data)
}

func TestControlPlayerUseCase_Info(t *testing.T) {
	uc, host := newControlPlayer(t, entity.TargetIDFromInt(7))
	req := captureRequest(host)

	uc.Info(testContext(), usecase.ActionOptions{})

	assert.Equal(t, "/info", req.Path)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Nil(t, req.Body)
}

func TestControlPlayerUseCase_ExpireNowWithExplicitTarget(t *testing.T) {
	uc, host := newControlPlayer(t, entity.TargetIDFromInt(7))
	req := captureRequest(host)

	id := entity.TargetIDFromInt(42)
	uc.ExpireNow(testContext(), usecase.ActionOptions{TargetID: &id})

	assert.Equal(t, "/duration/expire", req.Path)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.JSONEq(t, `{"id":42}`, bodyJSON(t, req))
}

func TestControlPlayerUseCase_DefaultTarget(t *testing.T) {
	tests := []struct {
		name     string
		fallback entity.TargetID
		call     func(uc *usecase.ControlPlayerUseCase, ctx context.Context)
		path     string
		body     string
	}{
		{
			name:     "trigger uses default id",
			fallback: entity.TargetIDFromString("widget-1"),
			call: func(uc *usecase.ControlPlayerUseCase, ctx context.Context) {
				uc.Trigger(ctx, "next", usecase.ActionOptions{})
			},
			path: "/trigger",
			body: `{"id":"widget-1","trigger":"next"}`,
		},
		{
			name:     "extend sends duration",
			fallback: entity.TargetIDFromInt(3),
			call: func(uc *usecase.ControlPlayerUseCase, ctx context.Context) {
				uc.ExtendWidgetDuration(ctx, 30, usecase.ActionOptions{})
			},
			path: "/duration/extend",
			body: `{"id":3,"duration":30}`,
		},
		{
			name:     "set duration sends duration",
			fallback: entity.TargetIDFromInt(3),
			call: func(uc *usecase.ControlPlayerUseCase, ctx context.Context) {
				uc.SetWidgetDuration(ctx, 120, usecase.ActionOptions{})
			},
			path: "/duration/set",
			body: `{"id":3,"duration":120}`,
		},
		{
			name: "unset id is omitted",
			call: func(uc *usecase.ControlPlayerUseCase, ctx context.Context) {
				uc.ExpireNow(ctx, usecase.ActionOptions{})
			},
			path: "/duration/expire",
			body: `{}`,
		},
		{
			name:     "zero duration is passed through",
			fallback: entity.TargetIDFromInt(1),
			call: func(uc *usecase.ControlPlayerUseCase, ctx context.Context) {
				uc.SetWidgetDuration(ctx, 0, usecase.ActionOptions{})
			},
			path: "/duration/set",
			body: `{"id":1,"duration":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, host := newControlPlayer(t, tt.fallback)
			req := captureRequest(host)

			tt.call(uc, testContext())

			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, http.MethodPost, req.Method)
			assert.JSONEq(t, tt.body, bodyJSON(t, req))
		})
	}
}

func TestControlPlayerUseCase_LogsResolvedTarget(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))

	uc, host := newControlPlayer(t, entity.TargetIDFromInt(7))
	host.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(sendCtx context.Context, _ entity.Request, _ entity.ResponseCallback) {
			logging.FromContext(sendCtx).Info().Msg("delivered")
		}).
		Once()

	uc.ExtendWidgetDuration(ctx, 5, usecase.ActionOptions{})

	assert.Contains(t, buf.String(), `"target_id":"7"`)
	assert.Contains(t, buf.String(), `"message":"delivered"`)
}

func TestControlPlayerUseCase_CallbackIsForwarded(t *testing.T) {
	uc, host := newControlPlayer(t, entity.TargetIDFromInt(1))

	host.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ entity.Request, cb entity.ResponseCallback) {
			cb.Fail(errors.New("boom"))
		}).
		Once()

	var got error
	uc.Trigger(testContext(), "a", usecase.ActionOptions{
		Callback: entity.ResponseCallback{OnError: func(err error) { got = err }},
	})

	require.Error(t, got)
	assert.Equal(t, "boom", got.Error())
}

func TestControlPlayerUseCase_Dispatch(t *testing.T) {
	t.Run("routes known actions", func(t *testing.T) {
		uc, host := newControlPlayer(t, entity.TargetIDFromInt(5))
		req := captureRequest(host)

		err := uc.Dispatch(testContext(), entity.ActionTrigger, usecase.ActionArgs{Code: "go"}, usecase.ActionOptions{})

		require.NoError(t, err)
		assert.Equal(t, "/trigger", req.Path)
		assert.JSONEq(t, `{"id":5,"trigger":"go"}`, bodyJSON(t, req))
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		uc, host := newControlPlayer(t, entity.TargetID{})

		err := uc.Dispatch(testContext(), entity.Action("reboot"), usecase.ActionArgs{}, usecase.ActionOptions{})

		require.Error(t, err)
		host.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestControlPlayerUseCase_ResultChannel(t *testing.T) {
	uc, host := newControlPlayer(t, entity.TargetIDFromInt(1))
	host.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ entity.Request, cb entity.ResponseCallback) {
			go func() {
				cb.Succeed(&entity.Response{StatusCode: http.StatusOK, Body: []byte(`{"ok":true}`)})
				cb.Fail(errors.New("late"))
			}()
		}).
		Once()

	cb, results := usecase.ResultChannel()
	uc.Info(testContext(), usecase.ActionOptions{Callback: cb})

	resp, err := usecase.Await(context.Background(), results)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
