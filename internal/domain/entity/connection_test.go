package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestConnectionConfig_Origin(t *testing.T) {
	tests := []struct {
		name string
		cfg  entity.ConnectionConfig
		want string
	}{
		{name: "with port", cfg: entity.ConnectionConfig{Protocol: "http", HostName: "127.0.0.1", Port: "9590"}, want: "http://127.0.0.1:9590"},
		{name: "without port", cfg: entity.ConnectionConfig{Protocol: "https", HostName: "player.local"}, want: "https://player.local"},
		{name: "missing protocol", cfg: entity.ConnectionConfig{HostName: "player.local", Port: "80"}, want: ""},
		{name: "missing host", cfg: entity.ConnectionConfig{Protocol: "http", Port: "80"}, want: ""},
		{name: "empty", cfg: entity.ConnectionConfig{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Origin())
		})
	}
}

func TestConnectionConfig_URLWithEmptyOriginIsBarePath(t *testing.T) {
	assert.Equal(t, "/info", entity.ConnectionConfig{}.URL("/info"))
}

func TestConnectionConfig_Merge(t *testing.T) {
	base := entity.ConnectionConfig{
		Protocol: "http",
		HostName: "127.0.0.1",
		Port:     "9590",
		Headers:  []entity.Header{{Key: "X-A", Value: "1"}},
		Timeout:  entity.DefaultRequestTimeout,
	}

	t.Run("empty update keeps everything", func(t *testing.T) {
		assert.Equal(t, base, base.Merge(entity.ConnectionConfig{}))
	})

	t.Run("fields override", func(t *testing.T) {
		merged := base.Merge(entity.ConnectionConfig{HostName: "player", Timeout: time.Second})
		assert.Equal(t, "player", merged.HostName)
		assert.Equal(t, "9590", merged.Port)
		assert.Equal(t, time.Second, merged.Timeout)
	})

	t.Run("headers replace wholesale", func(t *testing.T) {
		merged := base.Merge(entity.ConnectionConfig{Headers: []entity.Header{{Key: "X-B", Value: "2"}}})
		assert.Equal(t, []entity.Header{{Key: "X-B", Value: "2"}}, merged.Headers)
	})

	t.Run("empty non-nil headers clear the set", func(t *testing.T) {
		merged := base.Merge(entity.ConnectionConfig{Headers: []entity.Header{}})
		assert.Empty(t, merged.Headers)
		assert.NotNil(t, merged.Headers)
	})
}

func TestConnectionConfig_EffectiveTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, entity.ConnectionConfig{}.EffectiveTimeout())
	assert.Equal(t, time.Second, entity.ConnectionConfig{Timeout: time.Second}.EffectiveTimeout())
}

func TestConfigKeyInfo_EnvVar(t *testing.T) {
	assert.Equal(t, "XIBOIC_PLAYER_HOST_NAME", entity.ConfigKeyInfo{Key: "player.host_name"}.EnvVar())
	assert.Equal(t, "XIBOIC_WIDGET_TARGET_ID", entity.ConfigKeyInfo{Key: "widget.target_id"}.EnvVar())
}
