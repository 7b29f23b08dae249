package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/xiboic/internal/domain/entity"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty origin is allowed", mutate: func(c *Config) {
			c.Player.Protocol, c.Player.HostName, c.Player.Port = "", "", ""
		}},
		{name: "https", mutate: func(c *Config) { c.Player.Protocol = "https" }},
		{name: "bad protocol", mutate: func(c *Config) { c.Player.Protocol = "ws" }, wantErr: "player.protocol"},
		{name: "host with scheme", mutate: func(c *Config) { c.Player.HostName = "http://x" }, wantErr: "player.host_name"},
		{name: "port not numeric", mutate: func(c *Config) { c.Player.Port = "http" }, wantErr: "player.port"},
		{name: "port out of range", mutate: func(c *Config) { c.Player.Port = "70000" }, wantErr: "player.port"},
		{name: "negative timeout", mutate: func(c *Config) { c.Player.TimeoutMs = -1 }, wantErr: "player.timeout_ms"},
		{name: "empty header key", mutate: func(c *Config) {
			c.Player.Headers = []entity.Header{{Key: " ", Value: "x"}}
		}, wantErr: "player.headers[0].key"},
		{name: "negative eval timeout", mutate: func(c *Config) { c.Preview.EvalTimeoutMs = -5 }, wantErr: "preview.eval_timeout_ms"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "log file without size", mutate: func(c *Config) { c.Logging.File = "/tmp/x.log"; c.Logging.MaxSizeMB = 0 }, wantErr: "logging.max_size_mb"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.MaxBackups = -1 }, wantErr: "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Protocol = "ws"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player.protocol")
	assert.Contains(t, err.Error(), "logging.format")
}
