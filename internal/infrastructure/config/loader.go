// Package config loads, validates, watches and writes the xiboic
// configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/xiboic/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

type managerOptions struct {
	file string
	dir  string
}

// ManagerOption configures where the Manager looks for its file.
type ManagerOption func(*managerOptions)

// WithConfigFile uses path instead of searching the config directories.
// A missing explicit file is an error.
func WithConfigFile(path string) ManagerOption {
	return func(o *managerOptions) { o.file = path }
}

// WithConfigDir searches dir instead of the XDG config directory.
func WithConfigDir(dir string) ManagerOption {
	return func(o *managerOptions) { o.dir = dir }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetConfigType("toml")

	if o.file != "" {
		v.SetConfigFile(o.file)
	} else {
		dir := o.dir
		if dir == "" {
			configDir, err := GetConfigDir()
			if err != nil {
				return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
			}
			dir = configDir
		}
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		v.AddConfigPath(".")
	}

	// XIBOIC_PLAYER_HOST_NAME, XIBOIC_WIDGET_TARGET_ID, ...
	v.SetEnvPrefix("XIBOIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "XIBOIC_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind XIBOIC_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "XIBOIC_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind XIBOIC_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  o.file != "",
	}, nil
}

// Load loads the configuration from file and environment variables.
// Without a config file the defaults (plus environment) apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !m.explicit {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Player.Protocol = strings.ToLower(strings.TrimSpace(config.Player.Protocol))
	config.Player.HostName = strings.TrimSpace(config.Player.HostName)
	config.Player.Port = strings.TrimSpace(config.Player.Port)
	if config.Player.Headers == nil {
		config.Player.Headers = []entity.Header{}
	}

	config.Widget.TargetID = strings.TrimSpace(config.Widget.TargetID)
	config.Preview.Script = strings.TrimSpace(config.Preview.Script)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Player.Headers = entity.CloneHeaders(m.config.Player.Headers)
	return &configCopy
}

// ConfigFileUsed returns the file the configuration was read from, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setPlayerDefaults(defaults)
	m.setWidgetDefaults(defaults)
	m.setPreviewDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setPlayerDefaults(defaults *Config) {
	m.viper.SetDefault("player.protocol", defaults.Player.Protocol)
	m.viper.SetDefault("player.host_name", defaults.Player.HostName)
	m.viper.SetDefault("player.port", defaults.Player.Port)
	m.viper.SetDefault("player.timeout_ms", defaults.Player.TimeoutMs)
	m.viper.SetDefault("player.headers", defaults.Player.Headers)
}

func (m *Manager) setWidgetDefaults(defaults *Config) {
	m.viper.SetDefault("widget.target_id", defaults.Widget.TargetID)
	m.viper.SetDefault("widget.location", defaults.Widget.Location)
}

func (m *Manager) setPreviewDefaults(defaults *Config) {
	m.viper.SetDefault("preview.enabled", defaults.Preview.Enabled)
	m.viper.SetDefault("preview.script", defaults.Preview.Script)
	m.viper.SetDefault("preview.eval_timeout_ms", defaults.Preview.EvalTimeoutMs)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
