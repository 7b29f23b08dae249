package config

import (
	"strconv"

	"github.com/bnema/xiboic/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionPlayer  = "Player"
	SectionWidget  = "Widget"
	SectionPreview = "Preview"
	SectionLogging = "Logging"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getPlayerKeys(defaults)...)
	keys = append(keys, p.getWidgetKeys(defaults)...)
	keys = append(keys, p.getPreviewKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getPlayerKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "player.protocol",
			Type:        "string",
			Default:     defaults.Player.Protocol,
			Description: "Scheme of the player's local HTTP surface",
			Values:      []string{"http", "https"},
			Section:     SectionPlayer,
		},
		{
			Key:         "player.host_name",
			Type:        "string",
			Default:     defaults.Player.HostName,
			Description: "Player host name; an empty value leaves the origin unset",
			Section:     SectionPlayer,
		},
		{
			Key:         "player.port",
			Type:        "string",
			Default:     defaults.Player.Port,
			Description: "Player port, omitted from the origin when empty",
			Range:       "1-65535",
			Section:     SectionPlayer,
		},
		{
			Key:         "player.timeout_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Player.TimeoutMs),
			Description: "Per-request timeout in milliseconds (0 uses the default)",
			Range:       ">=0",
			Section:     SectionPlayer,
		},
		{
			Key:         "player.headers",
			Type:        "[]{key,value}",
			Default:     "[]",
			Description: "Headers added to every request, in order",
			Section:     SectionPlayer,
		},
	}
}

func (*SchemaProvider) getWidgetKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "widget.target_id",
			Type:        "string",
			Default:     defaults.Widget.TargetID,
			Description: "Default target identifier; digits are sent as a number",
			Section:     SectionWidget,
		},
		{
			Key:         "widget.location",
			Type:        "string",
			Default:     defaults.Widget.Location,
			Description: "Widget URL; visible=0 starts the widget hidden",
			Section:     SectionWidget,
		},
	}
}

func (*SchemaProvider) getPreviewKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "preview.enabled",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Preview.Enabled),
			Description: "Force preview mode without probing",
			Section:     SectionPreview,
		},
		{
			Key:         "preview.script",
			Type:        "string",
			Default:     defaults.Preview.Script,
			Description: "Authoring environment script probed for preview mode",
			Section:     SectionPreview,
		},
		{
			Key:         "preview.eval_timeout_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Preview.EvalTimeoutMs),
			Description: "Time limit for each call into the preview script",
			Range:       ">=0",
			Section:     SectionPreview,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "text", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "string",
			Default:     defaults.Logging.File,
			Description: "Also write JSON log lines to this file (empty disables)",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file past this size",
			Range:       ">=1",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep (0 keeps all)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age_days",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxAgeDays),
			Description: "Remove rotated log files older than this (0 keeps all)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.Compress),
			Description: "Gzip rotated log files",
			Section:     SectionLogging,
		},
	}
}
