package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/xiboic/internal/application/port"
	"github.com/bnema/xiboic/internal/application/port/mocks"
	"github.com/bnema/xiboic/internal/application/usecase"
	"github.com/bnema/xiboic/internal/domain/entity"
)

func TestDetectVisibility(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"no query", "http://localhost/index.html", true},
		{"empty url", "", true},
		{"visible one", "http://localhost/index.html?visible=1", true},
		{"visible zero", "http://localhost/index.html?visible=0", false},
		{"visible numeric one", "http://localhost/index.html?a=b&visible=1.0", true},
		{"visible empty", "http://localhost/index.html?visible=", true},
		{"visible text", "http://localhost/index.html?visible=true", false},
		{"visible before fragment", "http://localhost/index.html?visible=0#top", false},
		{"other params only", "http://localhost/index.html?preview=1", true},
		{"relative", "/widget?visible=0", false},
		{"unparseable", "http://[::1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.DetectVisibility(tt.url))
		})
	}
}

func TestDetectPreview(t *testing.T) {
	t.Run("nil probe is live", func(t *testing.T) {
		assert.False(t, usecase.DetectPreview(testContext(), nil))
	})

	t.Run("probe reports preview", func(t *testing.T) {
		probe := mocks.NewMockHostProbe(t)
		probe.EXPECT().IsPreviewHost(mock.Anything).Return(true, nil).Once()

		assert.True(t, usecase.DetectPreview(testContext(), probe))
	})

	t.Run("probe error is live", func(t *testing.T) {
		probe := mocks.NewMockHostProbe(t)
		probe.EXPECT().IsPreviewHost(mock.Anything).Return(true, errors.New("cross origin")).Once()

		assert.False(t, usecase.DetectPreview(testContext(), probe))
	})

	t.Run("probe panic is live", func(t *testing.T) {
		probe := port.HostProbeFunc(func(context.Context) (bool, error) {
			panic("inaccessible parent")
		})

		assert.False(t, usecase.DetectPreview(testContext(), probe))
	})
}

func TestDetectContextUseCase_Execute(t *testing.T) {
	probe := port.HostProbeFunc(func(context.Context) (bool, error) { return true, nil })

	got := usecase.NewDetectContextUseCase().Execute(testContext(), usecase.DetectContextInput{
		LocationURL: "http://localhost/index.html?visible=0",
		Probe:       probe,
	})

	assert.Equal(t, entity.ExecutionContext{Visible: false, Preview: true}, got)
	assert.Equal(t, entity.HostPreview, got.HostKind())
}
