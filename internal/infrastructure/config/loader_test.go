package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/xiboic/internal/domain/entity"
)

const sampleConfig = `
[player]
protocol = "HTTP"
host_name = " player.local "
port = "9797"
timeout_ms = 1500

[[player.headers]]
key = "X-Widget"
value = "clock"

[[player.headers]]
key = "X-Trace"
value = "1"

[widget]
target_id = "42"
location = "http://localhost/widget.html?visible=0"

[logging]
level = "DEBUG"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "http", mgr.viper.GetString("player.protocol"))
	assert.Equal(t, "localhost", mgr.viper.GetString("player.host_name"))
	assert.Equal(t, 5000, mgr.viper.GetInt("player.timeout_ms"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestManager_LoadFile(t *testing.T) {
	mgr, err := NewManager(WithConfigFile(writeConfig(t, sampleConfig)))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "http", cfg.Player.Protocol)
	assert.Equal(t, "player.local", cfg.Player.HostName)
	assert.Equal(t, []entity.Header{{Key: "X-Widget", Value: "clock"}, {Key: "X-Trace", Value: "1"}}, cfg.Player.Headers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	conn := cfg.Connection()
	assert.Equal(t, "http://player.local:9797", conn.Origin())
	assert.Equal(t, 1500*time.Millisecond, conn.Timeout)

	id := cfg.DefaultTargetID()
	assert.True(t, id.IsNumeric())
	assert.Equal(t, "42", id.String())
}

func TestManager_MissingFileUsesDefaults(t *testing.T) {
	mgr, err := NewManager(WithConfigDir(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_MissingExplicitFileFails(t *testing.T) {
	mgr, err := NewManager(WithConfigFile(filepath.Join(t.TempDir(), "nope.toml")))
	require.NoError(t, err)

	require.Error(t, mgr.Load())
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	t.Setenv("XIBOIC_PLAYER_HOST_NAME", "10.0.0.5")
	t.Setenv("XIBOIC_WIDGET_TARGET_ID", "abc")
	t.Setenv("XIBOIC_LOG_LEVEL", "warn")

	mgr, err := NewManager(WithConfigDir(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "10.0.0.5", cfg.Player.HostName)
	assert.Equal(t, "abc", cfg.Widget.TargetID)
	assert.False(t, cfg.DefaultTargetID().IsNumeric())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_InvalidFile(t *testing.T) {
	mgr, err := NewManager(WithConfigFile(writeConfig(t, "[player]\nprotocol = \"ftp\"\n")))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player.protocol")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr, err := NewManager(WithConfigFile(writeConfig(t, sampleConfig)))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Player.Headers[0].Value = "changed"
	cfg.Player.HostName = "changed"

	again := mgr.Get()
	assert.Equal(t, "clock", again.Player.Headers[0].Value)
	assert.Equal(t, "player.local", again.Player.HostName)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{}
	normalizeConfig(cfg)

	assert.NotNil(t, cfg.Player.Headers)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}
