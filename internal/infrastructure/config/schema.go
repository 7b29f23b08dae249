package config

import (
	"time"

	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
)

// Config represents the complete configuration for xiboic.
type Config struct {
	// Player describes how to reach the player's local HTTP surface.
	Player PlayerConfig `mapstructure:"player" toml:"player" json:"player"`
	// Widget holds values the hosting page would normally provide.
	Widget WidgetConfig `mapstructure:"widget" toml:"widget" json:"widget"`
	// Preview selects the authoring-tool strategy instead of the live player.
	Preview PreviewConfig `mapstructure:"preview" toml:"preview" json:"preview"`
	// Logging controls log verbosity and output format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// PlayerConfig is the connection to the player.
type PlayerConfig struct {
	Protocol  string          `mapstructure:"protocol" toml:"protocol" json:"protocol"`
	HostName  string          `mapstructure:"host_name" toml:"host_name" json:"host_name"`
	Port      string          `mapstructure:"port" toml:"port" json:"port"`
	TimeoutMs int             `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=0"`
	Headers   []entity.Header `mapstructure:"headers" toml:"headers" json:"headers"`
}

// WidgetConfig describes the widget as the player would load it.
type WidgetConfig struct {
	// TargetID is the default target identifier. Digits are sent as a number.
	TargetID string `mapstructure:"target_id" toml:"target_id" json:"target_id"`
	// Location is the widget URL; its visible parameter sets initial visibility.
	Location string `mapstructure:"location" toml:"location" json:"location"`
}

// PreviewConfig selects and configures the preview strategy.
type PreviewConfig struct {
	// Enabled forces preview mode without probing.
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Script is the path of the authoring environment script. When set, the
	// script is probed and, if it exposes the editor, receives every action.
	Script string `mapstructure:"script" toml:"script" json:"script"`
	// EvalTimeoutMs bounds each call into the script.
	EvalTimeoutMs int `mapstructure:"eval_timeout_ms" toml:"eval_timeout_ms" json:"eval_timeout_ms" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=text,enum=json"`
	// File also writes JSON log lines to this path. Empty disables it.
	File       string `mapstructure:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// Connection converts the player section to connection settings.
func (c *Config) Connection() entity.ConnectionConfig {
	return entity.ConnectionConfig{
		Protocol: c.Player.Protocol,
		HostName: c.Player.HostName,
		Port:     c.Player.Port,
		Headers:  entity.CloneHeaders(c.Player.Headers),
		Timeout:  time.Duration(c.Player.TimeoutMs) * time.Millisecond,
	}
}

// DefaultTargetID parses widget.target_id.
func (c *Config) DefaultTargetID() entity.TargetID {
	return entity.ParseTargetID(c.Widget.TargetID)
}

// LogFile converts the logging section to rotating file settings.
func (c *Config) LogFile() logging.FileConfig {
	return logging.FileConfig{
		Path:       c.Logging.File,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
		Compress:   c.Logging.Compress,
	}
}

// PreviewEvalTimeout returns preview.eval_timeout_ms as a duration.
func (c *Config) PreviewEvalTimeout() time.Duration {
	return time.Duration(c.Preview.EvalTimeoutMs) * time.Millisecond
}
